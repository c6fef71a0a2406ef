package component

// Minimize structurally simplifies c without changing the text it reads as
// or the style and events any run resolves to. It never mutates c and is
// idempotent: Minimize(Minimize(c)) equals Minimize(c).
func Minimize(c Component) Component {
	switch n := c.(type) {
	case *Styled:
		return MinimizeStyled(n)
	default:
		return c
	}
}

// MinimizeStyled is Minimize for a node that must stay a *Styled, such as
// a line root.
func MinimizeStyled(s *Styled) *Styled {
	if s == nil {
		return nil
	}
	node := &Styled{
		Text:   s.Text,
		Style:  s.Style,
		Events: s.Events.Clone(),
	}
	if len(s.Children) > 0 {
		node.Children = make([]Component, 0, len(s.Children))
		for _, child := range s.Children {
			node.Children = append(node.Children, Minimize(child))
		}
	}

	for {
		changed := flatten(node)
		changed = mergeLeaves(node) || changed
		changed = hoistLeadingText(node) || changed
		changed = collapseSingleChild(node) || changed
		if !changed {
			break
		}
	}
	if len(node.Children) == 0 {
		node.Children = nil
	}
	return node
}

// flatten splices children that add nothing over node: no events and a
// style already implied by node's own style. Empty children are dropped.
func flatten(node *Styled) bool {
	changed := false
	out := make([]Component, 0, len(node.Children))
	for _, child := range node.Children {
		switch c := child.(type) {
		case Text:
			if c == "" {
				changed = true
				continue
			}
			out = append(out, c)
		case *Styled:
			if c.IsEmpty() {
				changed = true
				continue
			}
			if len(c.Events) == 0 && node.Style.Merge(c.Style) == node.Style {
				if c.Text != "" {
					out = append(out, Text(c.Text))
				}
				out = append(out, c.Children...)
				changed = true
				continue
			}
			out = append(out, c)
		}
	}
	node.Children = out
	return changed
}

func mergeLeaves(node *Styled) bool {
	changed := false
	out := node.Children[:0:0]
	for _, child := range node.Children {
		if leaf, ok := child.(Text); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(Text); ok {
				out[len(out)-1] = prev + leaf
				changed = true
				continue
			}
		}
		out = append(out, child)
	}
	node.Children = out
	return changed
}

// hoistLeadingText moves a leading leaf into the node's own text, which
// reads before all children anyway.
func hoistLeadingText(node *Styled) bool {
	if len(node.Children) == 0 {
		return false
	}
	leaf, ok := node.Children[0].(Text)
	if !ok {
		return false
	}
	node.Text += string(leaf)
	node.Children = node.Children[1:]
	return true
}

// collapseSingleChild folds a text-less node into its only styled child
// when at most one of the two carries events.
func collapseSingleChild(node *Styled) bool {
	if node.Text != "" || len(node.Children) != 1 {
		return false
	}
	child, ok := node.Children[0].(*Styled)
	if !ok {
		return false
	}
	if len(node.Events) > 0 && len(child.Events) > 0 {
		return false
	}
	node.Text = child.Text
	node.Style = node.Style.Merge(child.Style)
	node.Events = append(node.Events.Clone(), child.Events...)
	node.Children = append([]Component(nil), child.Children...)
	return true
}
