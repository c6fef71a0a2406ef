// Package text writes the plain text of chat lines, dropping every style.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/muesli/reflow/wordwrap"
)

// Renderer writes one output line per chat line.
type Renderer struct {
	output io.Writer
	width  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth word-wraps lines at width columns; zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// New creates a text renderer writing to output.
func New(output io.Writer, opts ...Option) (*Renderer, error) {
	r := &Renderer{output: output}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Renderer) writeLine(s string) error {
	if r.width > 0 {
		s = wordwrap.String(s, r.width)
	}
	if _, err := fmt.Fprintln(r.output, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write text output")
	}
	return nil
}

// RenderLines writes the plain text of every line.
func (r *Renderer) RenderLines(lines []*component.Styled) error {
	for _, line := range lines {
		if err := r.writeLine(component.PlainText(line)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError writes err prefixed with "Error:".
func (r *Renderer) RenderError(err error) error {
	return r.writeLine("Error: " + err.Error())
}

// RenderMessage writes msg on its own line.
func (r *Renderer) RenderMessage(msg string) error {
	return r.writeLine(msg)
}
