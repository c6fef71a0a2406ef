package component_test

import (
	"testing"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bold   = component.Inherit.WithFlag(component.Bold)
	italic = component.Inherit.WithFlag(component.Italic)
	red    = component.Inherit.WithColor(component.Red)
)

func clickEvent(value string) component.Event {
	return component.Event{
		Type:   component.Click,
		Action: component.Action{Kind: component.OpenURL, Value: component.StringValue(value)},
	}
}

func TestMinimize(t *testing.T) {
	tests := []struct {
		name string
		in   component.Component
		want component.Component
	}{
		{
			name: "leaf is untouched",
			in:   component.Text("x"),
			want: component.Text("x"),
		},
		{
			name: "adjacent leaves merge and hoist",
			in: &component.Styled{
				Style:    bold,
				Children: []component.Component{component.Text("a"), component.Text("b")},
			},
			want: &component.Styled{Text: "ab", Style: bold},
		},
		{
			name: "empty children are dropped",
			in: &component.Styled{
				Text:  "x",
				Style: bold,
				Children: []component.Component{
					component.Text(""),
					&component.Styled{Style: italic},
				},
			},
			want: &component.Styled{Text: "x", Style: bold},
		},
		{
			name: "style-less child is spliced",
			in: &component.Styled{
				Text:  "a",
				Style: bold,
				Children: []component.Component{
					&component.Styled{Text: "b", Children: []component.Component{
						&component.Styled{Text: "c", Style: italic},
					}},
				},
			},
			want: &component.Styled{
				Text:     "ab",
				Style:    bold,
				Children: []component.Component{&component.Styled{Text: "c", Style: italic}},
			},
		},
		{
			name: "child repeating the parent style is spliced",
			in: &component.Styled{
				Text:     "a",
				Style:    bold,
				Children: []component.Component{&component.Styled{Text: "b", Style: bold}},
			},
			want: &component.Styled{Text: "ab", Style: bold},
		},
		{
			name: "text-less wrapper collapses into its only styled child",
			in: &component.Styled{
				Style:    red,
				Children: []component.Component{&component.Styled{Text: "x", Style: bold}},
			},
			want: &component.Styled{Text: "x", Style: red.WithFlag(component.Bold)},
		},
		{
			name: "wrapper and child both with events do not collapse",
			in: &component.Styled{
				Events:   component.Events{clickEvent("a")},
				Children: []component.Component{&component.Styled{Text: "x", Events: component.Events{clickEvent("b")}}},
			},
			want: &component.Styled{
				Events:   component.Events{clickEvent("a")},
				Children: []component.Component{&component.Styled{Text: "x", Events: component.Events{clickEvent("b")}}},
			},
		},
		{
			name: "events move up on collapse",
			in: &component.Styled{
				Children: []component.Component{&component.Styled{Text: "go", Events: component.Events{clickEvent("u")}}},
			},
			want: &component.Styled{Text: "go", Events: component.Events{clickEvent("u")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := component.Minimize(tt.in)
			assert.True(t, component.Equal(tt.want, got), "got %#v", got)
		})
	}
}

func TestMinimizeIsIdempotent(t *testing.T) {
	trees := []component.Component{
		&component.Styled{
			Children: []component.Component{
				&component.Styled{Text: "a", Style: bold, Children: []component.Component{
					component.Text("b"),
					&component.Styled{Style: italic, Children: []component.Component{component.Text("c"), component.Text("d")}},
					&component.Styled{Text: "e"},
				}},
				component.Text(" "),
				&component.Styled{Events: component.Events{clickEvent("x")}, Children: []component.Component{
					&component.Styled{Text: "f", Style: red},
				}},
			},
		},
		&component.Styled{Style: red, Children: []component.Component{
			&component.Styled{Style: red, Children: []component.Component{
				&component.Styled{Text: "deep", Style: bold},
			}},
		}},
	}

	for _, tree := range trees {
		once := component.Minimize(tree)
		twice := component.Minimize(once)
		assert.True(t, component.Equal(once, twice))
	}
}

func TestMinimizePreservesSemantics(t *testing.T) {
	tree := &component.Styled{
		Style: red,
		Children: []component.Component{
			&component.Styled{Text: "a", Children: []component.Component{
				&component.Styled{Text: "b", Style: bold},
			}},
			component.Text("c"),
			&component.Styled{Events: component.Events{clickEvent("u")}, Children: []component.Component{
				component.Text("d"),
			}},
		},
	}

	collect := func(c component.Component) []component.Run {
		var runs []component.Run
		component.Walk(c, func(r component.Run) {
			r.Depth = 0
			runs = append(runs, r)
		})
		return runs
	}

	before := collect(tree)
	after := collect(component.Minimize(tree))
	assert.Equal(t, component.PlainText(tree), component.PlainText(component.Minimize(tree)))

	// Runs may be merged, so compare per character.
	type cell struct {
		style  component.Style
		events int
	}
	expand := func(runs []component.Run) []cell {
		var out []cell
		for _, r := range runs {
			for range r.Text {
				out = append(out, cell{r.Style, len(r.Events)})
			}
		}
		return out
	}
	assert.Equal(t, expand(before), expand(after))
}

func TestMinimizeDoesNotMutate(t *testing.T) {
	in := &component.Styled{
		Children: []component.Component{component.Text("a"), component.Text("b")},
	}
	_ = component.Minimize(in)
	require.Len(t, in.Children, 2)
	assert.Equal(t, "", in.Text)
}

func TestMinimizeStyledKeepsRootStyled(t *testing.T) {
	got := component.MinimizeStyled(&component.Styled{})
	require.NotNil(t, got)
	assert.True(t, got.IsEmpty())
}
