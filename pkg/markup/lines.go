package markup

// lineBreak handles the line-break element. With KeepLinefeeds it injects
// a literal newline; otherwise it starts a new output line that reopens
// every style and event open at the break.
func (b *builder) lineBreak() {
	if b.conv.opts.KeepLinefeeds {
		b.characters("\n", true)
		b.ws.atBoundary = true
		return
	}

	if b.lineIsBlank() {
		b.lines = b.lines[:len(b.lines)-1]
	}

	top, bottom := b.copyStyle(b.current)
	b.root = top
	b.current = bottom
	b.ws = newWhitespace()
	b.sawText = false
	b.sawEvent = false
	b.lines = append(b.lines, top)
}

// lineIsBlank reports whether the current line got neither text nor an
// element carrying an event.
func (b *builder) lineIsBlank() bool {
	return !b.sawText && !b.sawEvent
}

// copyStyle copies the ancestor chain of h, keeping only styles and
// events. Synthetic text nodes that add nothing are skipped. It returns
// the outermost copy (the new line root) and the innermost copy (where
// building continues).
func (b *builder) copyStyle(h handle) (top, bottom handle) {
	top, bottom = noNode, noNode
	if parent := b.nodes[h].parent; parent != noNode {
		top, bottom = b.copyStyle(parent)
	}

	src := b.nodes[h]
	if src.synthetic && len(src.events) == 0 && src.style.IsInherit() {
		return top, bottom
	}

	c := b.newNode(bottom)
	b.nodes[c].style = src.style
	b.nodes[c].events = src.events.Clone()
	if top == noNode {
		top = c
	}
	return top, c
}
