package component

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
)

// EventType says how the user triggers an event.
type EventType uint8

const (
	Hover EventType = iota
	Click
	ShiftClick
)

func (t EventType) String() string {
	switch t {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case ShiftClick:
		return "shift_click"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// ActionKind is what happens when an event fires.
type ActionKind uint8

const (
	OpenURL ActionKind = iota
	OpenFile
	RunCommand
	SuggestCommand
	ChangePage
	ShowText
	ShowAchievement
	ShowItem
	ShowEntity
)

var actionNames = [...]string{
	OpenURL:         "open_url",
	OpenFile:        "open_file",
	RunCommand:      "run_command",
	SuggestCommand:  "suggest_command",
	ChangePage:      "change_page",
	ShowText:        "show_text",
	ShowAchievement: "show_achievement",
	ShowItem:        "show_item",
	ShowEntity:      "show_entity",
}

// ParseActionKind parses the markup "action" attribute, ignoring case.
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionNames {
		if strings.EqualFold(name, s) {
			return ActionKind(k), nil
		}
	}
	return 0, errors.Newf(errors.ErrUnknownAction, "unknown action %q", s).
		WithDetail("action", s)
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// EventValue is the payload of an action: nested content for hovers,
// a literal string for clicks.
type EventValue interface {
	isEventValue()
	String() string
}

// ComponentValue carries a converted markup fragment.
type ComponentValue struct {
	Component Component
}

// StringValue carries a literal attribute value.
type StringValue string

func (ComponentValue) isEventValue() {}
func (StringValue) isEventValue()    {}

func (v ComponentValue) String() string {
	if v.Component == nil {
		return ""
	}
	return PlainText(v.Component)
}

func (v StringValue) String() string { return string(v) }

// Action pairs a kind with its value.
type Action struct {
	Kind  ActionKind
	Value EventValue
}

// Event is an interaction attached to a node.
type Event struct {
	Type   EventType
	Action Action
}

// Equal compares events structurally, descending into nested components.
func (e Event) Equal(o Event) bool {
	if e.Type != o.Type || e.Action.Kind != o.Action.Kind {
		return false
	}
	switch v := e.Action.Value.(type) {
	case StringValue:
		ov, ok := o.Action.Value.(StringValue)
		return ok && v == ov
	case ComponentValue:
		ov, ok := o.Action.Value.(ComponentValue)
		return ok && Equal(v.Component, ov.Component)
	default:
		return o.Action.Value == nil
	}
}

func (e Event) String() string {
	value := ""
	if e.Action.Value != nil {
		value = e.Action.Value.String()
	}
	return fmt.Sprintf("%s:%s=%q", e.Type, e.Action.Kind, value)
}

// Events is an ordered set; Add ignores structural duplicates.
type Events []Event

// Add returns the set with e appended unless already present.
func (es Events) Add(e Event) Events {
	for _, existing := range es {
		if existing.Equal(e) {
			return es
		}
	}
	return append(es, e)
}

// Clone returns an independent copy.
func (es Events) Clone() Events {
	if len(es) == 0 {
		return nil
	}
	out := make(Events, len(es))
	copy(out, es)
	return out
}

// Find returns the first event of type t.
func (es Events) Find(t EventType) (Event, bool) {
	for _, e := range es {
		if e.Type == t {
			return e, true
		}
	}
	return Event{}, false
}

// Equal reports set equality regardless of order.
func (es Events) Equal(o Events) bool {
	if len(es) != len(o) {
		return false
	}
	for _, e := range es {
		found := false
		for _, x := range o {
			if e.Equal(x) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
