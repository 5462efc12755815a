// Package ui renders command results as rich terminal output, plain text
// or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/ui/json"
	"github.com/arthur-debert/sawkit/pkg/ui/terminal"
	"github.com/arthur-debert/sawkit/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result. Results control their own
	// text and terminal layout by implementing text.Renderable and
	// terminal.Renderable; JSON uses their struct tags.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a message that may contain style markup
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
