// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/style"
	"github.com/arthur-debert/sawkit/pkg/ui/text"
)

// Renderable is implemented by results with a styled layout
type Renderable interface {
	RenderTerminal() string
}

// Renderer provides styled terminal output. Results without a styled
// layout fall back to their plain text one.
type Renderer struct {
	output io.Writer
	plain  *text.Renderer
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	plain, err := text.New(output)
	if err != nil {
		return nil, err
	}
	return &Renderer{output: output, plain: plain}, nil
}

// RenderResult renders a result with styling
func (r *Renderer) RenderResult(result interface{}) error {
	if v, ok := result.(Renderable); ok {
		return r.write(v.RenderTerminal())
	}
	return r.plain.RenderResult(result)
}

// RenderError renders an error with the error style
func (r *Renderer) RenderError(err error) error {
	return r.write(style.ErrorStyle.Render("Error:") + " " + text.Message(err))
}

// RenderMessage renders a message, expanding markup tags
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(style.Render(msg))
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
