// Package legacy serializes component trees into section-sign formatted
// strings, the pre-JSON chat format still accepted by most servers.
package legacy

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/markup"
)

// SectionSign introduces every formatting code.
const SectionSign = '§'

// ToLegacy flattens c into a legacy string. Events have no legacy form
// and are dropped. A color code clears flags, so flags are re-emitted
// after every style change.
func ToLegacy(c component.Component) string {
	var sb strings.Builder
	last := component.Inherit
	component.Walk(c, func(r component.Run) {
		if r.Style != last {
			writeStyle(&sb, last, r.Style)
			last = r.Style
		}
		sb.WriteString(r.Text)
	})
	return sb.String()
}

func writeStyle(sb *strings.Builder, from, to component.Style) {
	switch {
	case to.Color != component.NoColor:
		writeCode(sb, to.Color.Code())
	case !from.IsInherit():
		writeCode(sb, component.Reset.Code())
	}
	for _, f := range to.SetFlags() {
		writeCode(sb, f.Code())
	}
}

func writeCode(sb *strings.Builder, code rune) {
	sb.WriteRune(SectionSign)
	sb.WriteRune(code)
}

// Lines serializes every line.
func Lines(lines []*component.Styled) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, ToLegacy(line))
	}
	return out
}

// Converter runs markup through a markup converter and returns legacy
// strings, one per line.
type Converter struct {
	Markup *markup.Converter
}

// NewConverter wraps conv, or markup.Default when conv is nil.
func NewConverter(conv *markup.Converter) Converter {
	if conv == nil {
		conv = markup.Default
	}
	return Converter{Markup: conv}
}

// Convert implements template.MarkupConverter.
func (c Converter) Convert(input string) ([]string, error) {
	lines, err := c.Markup.Convert(input)
	if err != nil {
		return nil, err
	}
	return Lines(lines), nil
}

// Renderer writes one legacy string per line
type Renderer struct {
	output io.Writer
}

// New creates a new legacy renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderLines writes every line in legacy form
func (r *Renderer) RenderLines(lines []*component.Styled) error {
	for _, line := range Lines(lines) {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in red
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%c%cError: %v\n", SectionSign, component.Red.Code(), err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
