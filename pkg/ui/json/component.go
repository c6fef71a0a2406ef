package json

import (
	"github.com/arthur-debert/chatml/pkg/component"
)

// Component is the chat-component JSON object understood by clients.
type Component struct {
	Text          string       `json:"text"`
	Color         string       `json:"color,omitempty"`
	Obfuscated    bool         `json:"obfuscated,omitempty"`
	Bold          bool         `json:"bold,omitempty"`
	Strikethrough bool         `json:"strikethrough,omitempty"`
	Underlined    bool         `json:"underlined,omitempty"`
	Italic        bool         `json:"italic,omitempty"`
	Insertion     string       `json:"insertion,omitempty"`
	ClickEvent    *ClickEvent  `json:"clickEvent,omitempty"`
	HoverEvent    *HoverEvent  `json:"hoverEvent,omitempty"`
	Extra         []*Component `json:"extra,omitempty"`
}

// ClickEvent carries a literal value.
type ClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

// HoverEvent carries either a nested component or a plain string.
type HoverEvent struct {
	Action string `json:"action"`
	Value  any    `json:"value"`
}

// FromComponent maps a component tree onto the JSON shape. Shift-click
// becomes the insertion field, which clients fill into the chat box.
func FromComponent(c component.Component) *Component {
	switch n := c.(type) {
	case component.Text:
		return &Component{Text: string(n)}
	case *component.Styled:
		if n == nil {
			return &Component{}
		}
		out := &Component{Text: n.Text}
		if n.Style.Color != component.NoColor {
			out.Color = n.Style.Color.Name()
		}
		out.Obfuscated = n.Style.Has(component.Obfuscated)
		out.Bold = n.Style.Has(component.Bold)
		out.Strikethrough = n.Style.Has(component.Strikethrough)
		out.Underlined = n.Style.Has(component.Underlined)
		out.Italic = n.Style.Has(component.Italic)

		for _, e := range n.Events {
			switch e.Type {
			case component.Click:
				out.ClickEvent = &ClickEvent{Action: e.Action.Kind.String(), Value: valueString(e.Action.Value)}
			case component.ShiftClick:
				out.Insertion = valueString(e.Action.Value)
			case component.Hover:
				out.HoverEvent = &HoverEvent{Action: e.Action.Kind.String(), Value: hoverValue(e.Action.Value)}
			}
		}

		for _, child := range n.Children {
			out.Extra = append(out.Extra, FromComponent(child))
		}
		return out
	}
	return &Component{}
}

func valueString(v component.EventValue) string {
	switch val := v.(type) {
	case component.StringValue:
		return string(val)
	case component.ComponentValue:
		return component.PlainText(val.Component)
	}
	return ""
}

func hoverValue(v component.EventValue) any {
	if val, ok := v.(component.ComponentValue); ok {
		return FromComponent(val.Component)
	}
	return valueString(v)
}

// Lines maps every line.
func Lines(lines []*component.Styled) []*Component {
	out := make([]*Component, 0, len(lines))
	for _, line := range lines {
		out = append(out, FromComponent(line))
	}
	return out
}
