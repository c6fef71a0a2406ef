// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Renderer previews chat lines in a terminal: chat colors become
// true-color foregrounds, flags map onto SGR attributes and open_url
// clicks become OSC 8 hyperlinks.
type Renderer struct {
	output     io.Writer
	renderer   *lipgloss.Renderer
	width      int
	hyperlinks bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth word-wraps every line at width cells. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// WithHyperlinks toggles OSC 8 hyperlinks for open_url clicks.
func WithHyperlinks(enabled bool) Option {
	return func(r *Renderer) { r.hyperlinks = enabled }
}

// WithColorProfile pins the color profile instead of detecting it from
// the output.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.renderer.SetColorProfile(p) }
}

// New creates a new terminal renderer
func New(w io.Writer, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		output:     w,
		renderer:   lipgloss.NewRenderer(w),
		hyperlinks: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Style maps a chat style onto a lipgloss style.
func (r *Renderer) Style(s component.Style) lipgloss.Style {
	st := r.renderer.NewStyle()
	if hex := s.Color.Hex(); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	for _, f := range s.SetFlags() {
		switch f {
		case component.Bold:
			st = st.Bold(true)
		case component.Italic:
			st = st.Italic(true)
		case component.Underlined:
			st = st.Underline(true)
		case component.Strikethrough:
			st = st.Strikethrough(true)
		case component.Obfuscated:
			st = st.Blink(true)
		}
	}
	return st
}

func (r *Renderer) plain() bool {
	return r.renderer.ColorProfile() == termenv.Ascii
}

// RenderLine renders one line to a string without a trailing newline.
func (r *Renderer) RenderLine(line component.Component) string {
	var sb strings.Builder
	plain := r.plain()
	component.Walk(line, func(run component.Run) {
		text := run.Text
		if !plain {
			text = r.Style(run.Style).Render(text)
			if url, ok := r.link(run.Events); ok {
				text = hyperlink(url, text)
			}
		}
		sb.WriteString(text)
	})

	out := sb.String()
	if r.width > 0 {
		out = wordwrap.String(out, r.width)
	}
	return out
}

func (r *Renderer) link(events component.Events) (string, bool) {
	if !r.hyperlinks {
		return "", false
	}
	e, ok := events.Find(component.Click)
	if !ok || e.Action.Kind != component.OpenURL {
		return "", false
	}
	url, ok := e.Action.Value.(component.StringValue)
	return string(url), ok && url != ""
}

func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// RenderLines writes every line followed by a newline
func (r *Renderer) RenderLines(lines []*component.Styled) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, r.RenderLine(line)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := "Error: " + err.Error()
	if !r.plain() {
		msg = r.renderer.NewStyle().Foreground(lipgloss.Color(component.Red.Hex())).Bold(true).Render(msg)
	}
	_, werr := fmt.Fprintln(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	if !r.plain() {
		msg = r.renderer.NewStyle().Foreground(lipgloss.Color(component.Gray.Hex())).Render(msg)
	}
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
