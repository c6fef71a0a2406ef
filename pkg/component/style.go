package component

import "strings"

// Flag is a boolean text decoration. Markup can only switch flags on.
type Flag uint8

const (
	Obfuscated Flag = iota
	Bold
	Strikethrough
	Underlined
	Italic
)

var flagTable = [...]struct {
	key  string
	code rune
}{
	Obfuscated:    {"obfuscated", 'k'},
	Bold:          {"bold", 'l'},
	Strikethrough: {"strikethrough", 'm'},
	Underlined:    {"underlined", 'n'},
	Italic:        {"italic", 'o'},
}

var allFlags = [...]Flag{Obfuscated, Bold, Strikethrough, Underlined, Italic}

// Flags returns every flag in fixed order.
func Flags() []Flag {
	return allFlags[:]
}

// Key is the attribute name that enables the flag in markup.
func (f Flag) Key() string { return flagTable[f].key }

// Code is the legacy formatting code character.
func (f Flag) Code() rune { return flagTable[f].code }

func (f Flag) String() string { return f.Key() }

// Style is a color plus the set of flags explicitly set to true.
// The zero value is Inherit: the node defers everything to its ancestors.
type Style struct {
	Color Color
	flags uint8
}

// Inherit is the identity style.
var Inherit = Style{}

// WithColor returns a copy of s with the color set.
func (s Style) WithColor(c Color) Style {
	s.Color = c
	return s
}

// WithFlag returns a copy of s with f set to true.
func (s Style) WithFlag(f Flag) Style {
	s.flags |= 1 << f
	return s
}

// Has reports whether f is set on s itself (not inherited).
func (s Style) Has(f Flag) bool {
	return s.flags&(1<<f) != 0
}

// SetFlags returns the flags set on s in fixed order.
func (s Style) SetFlags() []Flag {
	var out []Flag
	for _, f := range allFlags {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// IsInherit reports whether s sets nothing.
func (s Style) IsInherit() bool {
	return s == Inherit
}

// Merge resolves child on top of s: the child's color wins when set and
// flags accumulate.
func (s Style) Merge(child Style) Style {
	out := s
	if child.Color != NoColor {
		out.Color = child.Color
	}
	out.flags |= child.flags
	return out
}

func (s Style) String() string {
	if s.IsInherit() {
		return "inherit"
	}
	var parts []string
	if s.Color != NoColor {
		parts = append(parts, "color="+s.Color.Name())
	}
	for _, f := range s.SetFlags() {
		parts = append(parts, f.Key())
	}
	return strings.Join(parts, " ")
}
