package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects one of the output renderers.
type Format int

const (
	// FormatAuto picks term or text from the output's capabilities
	FormatAuto Format = iota
	// FormatTerminal renders an ANSI preview of the chat lines
	FormatTerminal
	// FormatText renders the plain text of every line
	FormatText
	// FormatLegacy renders section-sign formatted strings
	FormatLegacy
	// FormatJSON renders chat-component JSON
	FormatJSON
	// FormatTree renders the component structure
	FormatTree
)

// formats is ordered by Format value; the first name is canonical.
var formats = [...][]string{
	FormatAuto:     {"auto", ""},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatLegacy:   {"legacy", "section"},
	FormatJSON:     {"json"},
	FormatTree:     {"tree"},
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formats) {
		return "unknown"
	}
	return formats[f][0]
}

// FormatNames lists the canonical format names, for flag help and
// completion.
func FormatNames() []string {
	names := make([]string, len(formats))
	for i, aliases := range formats {
		names[i] = aliases[0]
	}
	return names
}

// ParseFormat resolves a case-insensitive format name or alias.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, aliases := range formats {
		for _, alias := range aliases {
			if name == alias {
				return Format(f), nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat returns FormatTerminal when output is a color-capable
// terminal and NO_COLOR is unset, FormatText otherwise.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
