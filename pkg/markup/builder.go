package markup

import (
	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
)

// Element and attribute names of the dialect.
const (
	LineBreakElement = "lf"
	HoverElement     = "hover"
	ClickElement     = "click"

	ColorAttr  = "color"
	ActionAttr = "action"
	ValueAttr  = "value"
	ShiftAttr  = "shift"
)

// handle addresses a node in the builder arena.
type handle int

const noNode handle = -1

// node is the mutable form of a tree node. Own text and children are kept
// apart, so text arriving after a child goes into a synthetic child to
// keep document order.
type node struct {
	text      []byte
	style     component.Style
	events    component.Events
	children  []handle
	parent    handle
	synthetic bool
}

// builder implements Handler and grows one tree per output line.
type builder struct {
	conv  *Converter
	depth int

	nodes []node
	lines []handle

	root    handle
	current handle

	ws       whitespace
	sawText  bool
	sawEvent bool
}

func newBuilder(conv *Converter, depth int) *builder {
	b := &builder{conv: conv, depth: depth}
	b.root = b.newNode(noNode)
	b.current = b.root
	b.lines = []handle{b.root}
	b.ws = newWhitespace()
	return b
}

// newNode allocates a node and links it under parent when there is one.
func (b *builder) newNode(parent handle) handle {
	b.nodes = append(b.nodes, node{parent: parent})
	h := handle(len(b.nodes) - 1)
	if parent != noNode {
		b.nodes[parent].children = append(b.nodes[parent].children, h)
	}
	return h
}

func (b *builder) StartElement(name string, attrs Attributes) error {
	if name == LineBreakElement {
		b.lineBreak()
		return nil
	}

	h := b.newNode(b.current)
	b.current = h

	switch name {
	case HoverElement:
		action, err := b.parseAction(attrs, true)
		if err != nil {
			return err
		}
		b.addEvent(h, component.Event{Type: component.Hover, Action: action})
	case ClickElement:
		action, err := b.parseAction(attrs, false)
		if err != nil {
			return err
		}
		typ := component.Click
		if attrs.Has(ShiftAttr) {
			typ = component.ShiftClick
		}
		b.addEvent(h, component.Event{Type: typ, Action: action})
	}

	n := &b.nodes[h]
	if name, ok := attrs.Get(ColorAttr); ok {
		if color, ok := component.ColorByName(name); ok {
			n.style = n.style.WithColor(color)
		}
	}
	for _, flag := range component.Flags() {
		if attrs.Has(flag.Key()) {
			n.style = n.style.WithFlag(flag)
		}
	}
	return nil
}

func (b *builder) addEvent(h handle, e component.Event) {
	b.nodes[h].events = b.nodes[h].events.Add(e)
	b.sawEvent = true
}

// parseAction reads the action and value attributes. Hover values are
// markup themselves and are converted one level deeper; the first line
// becomes the value.
func (b *builder) parseAction(attrs Attributes, nested bool) (component.Action, error) {
	raw, _ := attrs.Get(ActionAttr)
	kind, err := component.ParseActionKind(raw)
	if err != nil {
		return component.Action{}, err
	}

	value, _ := attrs.Get(ValueAttr)
	if !nested {
		return component.Action{Kind: kind, Value: component.StringValue(value)}, nil
	}

	lines, err := b.conv.convert(value, b.depth+1)
	if err != nil {
		return component.Action{}, err
	}
	if len(lines) == 0 {
		return component.Action{}, errors.New(errors.ErrMissingFirstLine, "hover value produced no lines").
			WithDetail("value", value).
			WithDetail("depth", b.depth+1)
	}
	return component.Action{Kind: kind, Value: component.ComponentValue{Component: lines[0]}}, nil
}

func (b *builder) CharData(text string) error {
	b.characters(text, false)
	return nil
}

func (b *builder) characters(text string, exact bool) {
	if len(b.nodes[b.current].children) > 0 {
		h := b.newNode(b.current)
		b.nodes[h].synthetic = true
		b.current = h
	}

	n := &b.nodes[b.current]
	n.text = b.ws.appendText(n.text, text, exact)
	if len(n.text) > 0 {
		b.sawText = true
	}
}

// EndElement undoes one element push: first any synthetic text nodes
// opened inside the element, then the element node itself.
func (b *builder) EndElement(name string) error {
	if name == LineBreakElement {
		return nil
	}
	for b.nodes[b.current].synthetic {
		b.current = b.nodes[b.current].parent
	}
	if parent := b.nodes[b.current].parent; parent != noNode {
		b.current = parent
	}
	return nil
}
