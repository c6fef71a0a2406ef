package markup

import (
	"unicode"
	"unicode/utf8"
)

// whitespace collapses runs of whitespace the way rendered markup does.
// One value lives per output line and threads across node boundaries, so
// a run split over two nodes still collapses to a single space.
type whitespace struct {
	atBoundary bool
}

func newWhitespace() whitespace {
	return whitespace{atBoundary: true}
}

// appendText runs text through the normalizer and appends the surviving
// characters to buf. In exact mode nothing is dropped or rewritten.
func (w *whitespace) appendText(buf []byte, text string, exact bool) []byte {
	for _, r := range text {
		if !exact && (r == '\n' || r == '\r') {
			r = ' '
		}
		space := isCollapsible(r)
		if w.atBoundary {
			if !space {
				buf = utf8.AppendRune(buf, r)
				w.atBoundary = false
			} else if exact {
				buf = utf8.AppendRune(buf, r)
			}
			continue
		}
		buf = utf8.AppendRune(buf, r)
		w.atBoundary = space
	}
	return buf
}

// isCollapsible reports whether r is whitespace the normalizer may fold.
// No-break spaces are kept so authors can force spacing with &nbsp;.
func isCollapsible(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f', '\u0085':
		return false
	case '\x1c', '\x1d', '\x1e', '\x1f':
		return true
	}
	return unicode.IsSpace(r)
}
