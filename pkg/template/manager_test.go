package template_test

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/markup"
	"github.com/arthur-debert/chatml/pkg/template"
	"github.com/arthur-debert/chatml/pkg/template/builtin"
	"github.com/arthur-debert/chatml/pkg/ui/legacy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, files fstest.MapFS) *template.Manager {
	t.Helper()
	return template.NewManager(template.NewResourceProvider(files, ""), template.Options{Location: time.UTC})
}

func TestManager_FormatXML(t *testing.T) {
	m := newManager(t, defaults())

	out, err := m.FormatXML("greet", map[string]string{"name": "Alex"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Alex", out)
}

func TestManager_MergedArgs(t *testing.T) {
	type base struct {
		Name string `json:"name"`
	}
	type wrapper struct {
		base
		Count int `json:"count"`
	}

	m := newManager(t, fstest.MapFS{
		"t.tmpl": {Data: []byte("{{.name}}:{{.count}}:{{.extra}}")},
	})

	out, err := m.FormatXML("t", wrapper{base: base{Name: "a"}, Count: 3}, nil, map[string]any{"extra": true})
	require.NoError(t, err)
	assert.Equal(t, "a:3:true", out)
}

func TestMergeArgs(t *testing.T) {
	merged, err := template.MergeArgs(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(3)}, merged)

	_, err = template.MergeArgs(42)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateData))

	_, err = template.MergeArgs(func() {})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateData))
}

func TestManager_Errors(t *testing.T) {
	m := newManager(t, fstest.MapFS{
		"broken.tmpl": {Data: []byte("{{.name")},
		"fails.tmpl":  {Data: []byte("{{readableIndex .name}}")},
	})

	tests := []struct {
		name     string
		template string
		expected errors.ErrorCode
	}{
		{"missing template", "absent", errors.ErrTemplateNotFound},
		{"parse error", "broken", errors.ErrTemplateParse},
		{"execution error", "fails", errors.ErrTemplateExecute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.FormatXML(tt.template, map[string]string{"name": "x"})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.expected), "got %v", err)
		})
	}
}

func TestManager_CacheAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	m := template.NewManager(template.NewResourceProvider(defaults(), dir), template.Options{})

	first, err := m.Template("greet")
	require.NoError(t, err)
	second, err := m.Template("greet")
	require.NoError(t, err)
	assert.Same(t, first, second)

	writeFile(t, filepath.Join(dir, "greet.tmpl"), "Yo {{.name}}")
	out, err := m.FormatXML("greet", map[string]string{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "Hello A", out, "cached template is reused")

	m.Invalidate()
	out, err = m.FormatXML("greet", map[string]string{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "Yo A", out)
}

func TestManager_RegisterFunc(t *testing.T) {
	m := newManager(t, fstest.MapFS{
		"shout.tmpl": {Data: []byte("{{shout .name}}")},
	})

	_, err := m.FormatXML("shout", map[string]string{"name": "a"})
	require.Error(t, err)

	m.RegisterFunc("shout", func(s string) string { return strings.ToUpper(s) + "!" })
	out, err := m.FormatXML("shout", map[string]string{"name": "a"})
	require.NoError(t, err)
	assert.Equal(t, "A!", out)
}

func TestManager_StoreDefaultsOnFirstUse(t *testing.T) {
	dir := t.TempDir()
	m := template.NewManager(template.NewResourceProvider(defaults(), dir), template.Options{StoreDefaults: true})

	_, err := m.Template("greet")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "greet.tmpl.orig"))
}

func TestFormat_WithConverters(t *testing.T) {
	m := newManager(t, fstest.MapFS{
		"styled.tmpl": {Data: []byte(`<span color="red">{{.text}}</span><lf/>second`)},
	})
	args := map[string]string{"text": "first"}

	lines, err := template.Format(m, "styled", markup.Default, args)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, component.Red, lines[0].Style.Color)

	legacyLines, err := template.Format(m, "styled", legacy.NewConverter(nil), args)
	require.NoError(t, err)
	assert.Equal(t, []string{"§cfirst", "second"}, legacyLines)

	count, err := template.Format(m, "styled", template.ConverterFunc[int](func(s string) (int, error) {
		return len(s), nil
	}), args)
	require.NoError(t, err)
	assert.Greater(t, count, 0)
}

func TestBuiltinTemplates(t *testing.T) {
	m := template.NewManager(template.NewResourceProvider(builtin.FS, ""), template.Options{Location: time.UTC})

	names, err := m.Provider().List()
	require.NoError(t, err)
	assert.Equal(t, []string{"announcement", "ranking", "welcome"}, names)

	t.Run("welcome", func(t *testing.T) {
		lines, err := template.Format(m, "welcome", markup.Default, map[string]string{"player": "<Steve>"})
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "Welcome, <Steve>!", component.PlainText(lines[0]))
		assert.Equal(t, "Type /help to get started.", component.PlainText(lines[1]))
	})

	t.Run("ranking", func(t *testing.T) {
		lines, err := template.Format(m, "ranking", markup.Default, map[string]any{
			"title": "Top players",
			"entries": []map[string]any{
				{"name": "Alex", "score": 42},
				{"name": "Steve", "score": 7},
			},
		})
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, "Top players", component.PlainText(lines[0]))
		assert.Equal(t, "#1 Alex", component.PlainText(lines[1]))
		assert.Equal(t, "#2 Steve", component.PlainText(lines[2]))
	})

	t.Run("announcement", func(t *testing.T) {
		lines, err := template.Format(m, "announcement", markup.Default, map[string]any{
			"channel": "global",
			"at":      "2024-05-01T10:00:00Z",
			"message": "Server restart",
			"link":    "https://example.com/news",
		})
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "[GLOBAL] 2024-05-01 10:00 Server restart more", component.PlainText(lines[0]))
	})
}
