package component_test

import (
	"testing"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorByName(t *testing.T) {
	tests := []struct {
		name  string
		want  component.Color
		found bool
	}{
		{"red", component.Red, true},
		{"dark_blue", component.DarkBlue, true},
		{"light_purple", component.LightPurple, true},
		{"reset", component.Reset, true},
		{"Red", component.NoColor, false},
		{"crimson", component.NoColor, false},
		{"", component.NoColor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := component.ColorByName(tt.name)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorTable(t *testing.T) {
	colors := component.Colors()
	require.Len(t, colors, 17)

	seen := map[rune]bool{}
	for _, c := range colors {
		assert.NotEmpty(t, c.Name())
		assert.False(t, seen[c.Code()], "duplicate code for %s", c)
		seen[c.Code()] = true
	}
	assert.Equal(t, 'c', component.Red.Code())
	assert.Equal(t, "#FF5555", component.Red.Hex())
	assert.Equal(t, "inherit", component.NoColor.String())
}

func TestStyle(t *testing.T) {
	t.Run("zero value is inherit", func(t *testing.T) {
		var s component.Style
		assert.True(t, s.IsInherit())
		assert.Equal(t, component.Inherit, s)
		assert.Equal(t, "inherit", s.String())
	})

	t.Run("with flag and color", func(t *testing.T) {
		s := component.Inherit.WithFlag(component.Bold).WithColor(component.Gold)
		assert.False(t, s.IsInherit())
		assert.True(t, s.Has(component.Bold))
		assert.False(t, s.Has(component.Italic))
		assert.Equal(t, []component.Flag{component.Bold}, s.SetFlags())
		assert.Equal(t, "color=gold bold", s.String())
	})

	t.Run("merge lets the child override color and accumulates flags", func(t *testing.T) {
		parent := component.Inherit.WithColor(component.Red).WithFlag(component.Bold)
		child := component.Inherit.WithColor(component.Blue).WithFlag(component.Italic)

		merged := parent.Merge(child)
		assert.Equal(t, component.Blue, merged.Color)
		assert.True(t, merged.Has(component.Bold))
		assert.True(t, merged.Has(component.Italic))

		assert.Equal(t, parent, parent.Merge(component.Inherit))
	})

	t.Run("flag keys", func(t *testing.T) {
		keys := []string{}
		for _, f := range component.Flags() {
			keys = append(keys, f.Key())
		}
		assert.Equal(t, []string{"obfuscated", "bold", "strikethrough", "underlined", "italic"}, keys)
	})
}

func TestParseActionKind(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		for _, in := range []string{"open_url", "OPEN_URL", "Open_Url"} {
			kind, err := component.ParseActionKind(in)
			require.NoError(t, err)
			assert.Equal(t, component.OpenURL, kind)
		}
	})

	t.Run("every kind round trips", func(t *testing.T) {
		for k := component.OpenURL; k <= component.ShowEntity; k++ {
			got, err := component.ParseActionKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := component.ParseActionKind("teleport")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAction))
		assert.Equal(t, "teleport", errors.GetErrorDetails(err)["action"])
	})
}

func TestEvents(t *testing.T) {
	click := component.Event{
		Type:   component.Click,
		Action: component.Action{Kind: component.OpenURL, Value: component.StringValue("http://x")},
	}
	hover := component.Event{
		Type: component.Hover,
		Action: component.Action{
			Kind:  component.ShowText,
			Value: component.ComponentValue{Component: &component.Styled{Text: "tip"}},
		},
	}

	var es component.Events
	es = es.Add(click)
	es = es.Add(hover)
	es = es.Add(click)
	assert.Len(t, es, 2, "duplicates are ignored")

	sameHover := component.Event{
		Type: component.Hover,
		Action: component.Action{
			Kind:  component.ShowText,
			Value: component.ComponentValue{Component: &component.Styled{Text: "tip"}},
		},
	}
	assert.True(t, hover.Equal(sameHover), "nested values compare structurally")
	assert.False(t, hover.Equal(click))

	found, ok := es.Find(component.Click)
	require.True(t, ok)
	assert.Equal(t, "http://x", found.Action.Value.String())

	assert.True(t, es.Equal(component.Events{hover, click}))
	assert.Equal(t, `click:open_url="http://x"`, click.String())
}

func TestPlainTextAndWalk(t *testing.T) {
	bold := component.Inherit.WithFlag(component.Bold)
	italic := component.Inherit.WithFlag(component.Italic)
	tree := &component.Styled{
		Text:  "outer",
		Style: bold,
		Children: []component.Component{
			&component.Styled{Text: "inner", Style: italic},
			component.Text("after"),
		},
	}

	assert.Equal(t, "outerinnerafter", component.PlainText(tree))

	var runs []component.Run
	component.Walk(tree, func(r component.Run) { runs = append(runs, r) })
	require.Len(t, runs, 3)

	assert.Equal(t, "outer", runs[0].Text)
	assert.True(t, runs[0].Style.Has(component.Bold))

	assert.Equal(t, "inner", runs[1].Text)
	assert.True(t, runs[1].Style.Has(component.Bold))
	assert.True(t, runs[1].Style.Has(component.Italic))

	assert.Equal(t, "after", runs[2].Text)
	assert.True(t, runs[2].Style.Has(component.Bold))
	assert.False(t, runs[2].Style.Has(component.Italic))
}

func TestWalkInheritsEvents(t *testing.T) {
	outer := component.Event{Type: component.Click, Action: component.Action{Kind: component.RunCommand, Value: component.StringValue("/a")}}
	inner := component.Event{Type: component.Click, Action: component.Action{Kind: component.RunCommand, Value: component.StringValue("/b")}}
	tree := &component.Styled{
		Text:   "a",
		Events: component.Events{outer},
		Children: []component.Component{
			&component.Styled{Text: "b", Events: component.Events{inner}},
			component.Text("c"),
		},
	}

	var got []string
	component.Walk(tree, func(r component.Run) {
		e, ok := r.Events.Find(component.Click)
		require.True(t, ok)
		got = append(got, r.Text+"="+e.Action.Value.String())
	})
	assert.Equal(t, []string{"a=/a", "b=/b", "c=/a"}, got)
}
