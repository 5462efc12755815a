// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/errors"
	"github.com/arthur-debert/sawkit/pkg/style"
)

// Renderable is implemented by results with a plain text layout
type Renderable interface {
	RenderText() string
}

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case nil:
		return nil
	case Renderable:
		return r.write(v.RenderText())
	case fmt.Stringer:
		return r.write(v.String())
	case string:
		return r.write(v)
	case []string:
		return r.write(strings.Join(v, "\n"))
	default:
		return r.write(fmt.Sprintf("%+v", v))
	}
}

// RenderError renders an error message
func (r *Renderer) RenderError(err error) error {
	return r.write("Error: " + Message(err))
}

// RenderMessage renders a message with markup tags removed
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(style.Strip(msg))
}

func (r *Renderer) write(s string) error {
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(r.output, s)
	return err
}

// Message returns the user-facing message of err: the outermost message
// without the error code prefix
func Message(err error) string {
	if sawErr, ok := err.(*errors.SawkitError); ok {
		if sawErr.Wrapped != nil {
			return sawErr.Message + ": " + Message(sawErr.Wrapped)
		}
		return sawErr.Message
	}
	return err.Error()
}
