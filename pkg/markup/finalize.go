package markup

import (
	"bytes"

	"github.com/arthur-debert/chatml/pkg/component"
)

// trimTrailing removes whitespace after the last visible character of the
// subtree at h, leaving literal line feeds alone. It reports whether
// text remains, which stops the backwards search.
func (b *builder) trimTrailing(h handle) bool {
	children := b.nodes[h].children
	for i := len(children) - 1; i >= 0; i-- {
		if b.trimTrailing(children[i]) {
			return true
		}
	}
	n := &b.nodes[h]
	n.text = bytes.TrimRightFunc(n.text, func(r rune) bool {
		return r != '\n' && isCollapsible(r)
	})
	return len(n.text) > 0
}

// finalize converts the subtree at h into an output node. Empty non-root
// nodes are pruned (nil) and trivial ones become plain leaves.
func (b *builder) finalize(h handle) component.Component {
	n := &b.nodes[h]
	if len(n.children) == 0 && len(n.events) == 0 {
		if len(n.text) == 0 {
			return nil
		}
		if n.style.IsInherit() {
			return component.Text(n.text)
		}
	}
	return b.finalizeStyled(h)
}

// finalizeStyled always yields a styled node; line roots go through here
// directly so they are never pruned or collapsed.
func (b *builder) finalizeStyled(h handle) *component.Styled {
	n := &b.nodes[h]
	var children []component.Component
	for _, child := range n.children {
		if out := b.finalize(child); out != nil {
			children = append(children, out)
		}
	}
	return b.conv.minimize(&component.Styled{
		Text:     string(n.text),
		Children: children,
		Style:    n.style,
		Events:   n.events.Clone(),
	})
}
