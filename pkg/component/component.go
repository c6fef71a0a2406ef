// Package component defines the immutable styled-text tree produced by the
// markup converter: colors, flags, interaction events, the two node kinds
// and the minimizer that simplifies finished trees.
//
// A tree is either a Text leaf or a *Styled node. A Styled node's own Text
// comes before its Children in reading order; its Style and Events apply
// to itself and to every descendant that does not override them.
package component

import "strings"

// Component is a node of a finished tree. The set of implementations is
// closed: Text and *Styled.
type Component interface {
	isComponent()
}

// Text is a plain leaf that inherits everything from its parent.
type Text string

// Styled is a node with its own text run, ordered children, a style and
// interaction events.
type Styled struct {
	Text     string
	Children []Component
	Style    Style
	Events   Events
}

func (Text) isComponent()    {}
func (*Styled) isComponent() {}

// IsEmpty reports whether the node carries nothing at all.
func (s *Styled) IsEmpty() bool {
	return s.Text == "" && len(s.Children) == 0 && len(s.Events) == 0
}

// PlainText returns the concatenated text of c in reading order.
func PlainText(c Component) string {
	var sb strings.Builder
	writePlain(&sb, c)
	return sb.String()
}

func writePlain(sb *strings.Builder, c Component) {
	switch n := c.(type) {
	case Text:
		sb.WriteString(string(n))
	case *Styled:
		if n == nil {
			return
		}
		sb.WriteString(n.Text)
		for _, child := range n.Children {
			writePlain(sb, child)
		}
	}
}

// Equal compares two trees structurally.
func Equal(a, b Component) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case *Styled:
		y, ok := b.(*Styled)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		if x.Text != y.Text || x.Style != y.Style || !x.Events.Equal(y.Events) {
			return false
		}
		if len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Run is one text run with everything it inherits resolved.
type Run struct {
	Text   string
	Style  Style
	Events Events
	Depth  int
}

// Walk visits every non-empty text run of c in reading order with its
// effective style and events.
func Walk(c Component, fn func(Run)) {
	walk(c, Inherit, nil, 0, fn)
}

func walk(c Component, style Style, events Events, depth int, fn func(Run)) {
	switch n := c.(type) {
	case Text:
		if n != "" {
			fn(Run{Text: string(n), Style: style, Events: events, Depth: depth})
		}
	case *Styled:
		if n == nil {
			return
		}
		style = style.Merge(n.Style)
		events = inheritEvents(events, n.Events)
		if n.Text != "" {
			fn(Run{Text: n.Text, Style: style, Events: events, Depth: depth})
		}
		for _, child := range n.Children {
			walk(child, style, events, depth+1, fn)
		}
	}
}

// inheritEvents layers own events over inherited ones; an own event
// replaces an inherited event of the same type.
func inheritEvents(inherited, own Events) Events {
	if len(own) == 0 {
		return inherited
	}
	out := make(Events, 0, len(inherited)+len(own))
	for _, e := range inherited {
		if _, overridden := own.Find(e.Type); !overridden {
			out = append(out, e)
		}
	}
	return append(out, own...)
}
