// Package ui renders converted chat lines in different formats.
// It supports terminal previews, plain text, legacy strings, chat JSON and
// a structural tree dump.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/ui/json"
	"github.com/arthur-debert/chatml/pkg/ui/legacy"
	"github.com/arthur-debert/chatml/pkg/ui/terminal"
	"github.com/arthur-debert/chatml/pkg/ui/text"
	"github.com/arthur-debert/chatml/pkg/ui/tree"
	"github.com/muesli/termenv"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderLines renders the output of one conversion
	RenderLines(lines []*component.Styled) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tunes renderers that support it.
type Options struct {
	// Width word-wraps terminal output; zero disables wrapping
	Width int
	// NoColor forces the terminal renderer to the ASCII profile
	NoColor bool
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			detectedFormat := DetectFormat(file)
			return NewRenderer(detectedFormat, output, opts)
		}
		// If not a file, default to terminal format
		return NewRenderer(FormatTerminal, output, opts)
	case FormatTerminal:
		termOpts := []terminal.Option{terminal.WithWidth(opts.Width)}
		if opts.NoColor {
			termOpts = append(termOpts, terminal.WithColorProfile(termenv.Ascii))
		}
		return terminal.New(output, termOpts...)
	case FormatText:
		return text.New(output, text.WithWidth(opts.Width))
	case FormatLegacy:
		return legacy.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatTree:
		return tree.New(output)
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unknown format: %v", format)
	}
}
