package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/markup"
	"github.com/arthur-debert/chatml/pkg/ui/terminal"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, input string) []*component.Styled {
	t.Helper()
	lines, err := markup.Convert(input)
	require.NoError(t, err)
	return lines
}

func TestRenderLine_Ascii(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	lines := convert(t, `<span color="red" bold="">Hello</span> <click action="open_url" value="http://x">world</click>`)
	require.Len(t, lines, 1)
	assert.Equal(t, "Hello world", r.RenderLine(lines[0]))
}

func TestRenderLine_TrueColor(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.TrueColor), terminal.WithHyperlinks(false))
	require.NoError(t, err)

	lines := convert(t, `<span color="red" bold="">Hello</span> world`)
	require.Len(t, lines, 1)

	red := component.Inherit.WithColor(component.Red).WithFlag(component.Bold)
	expected := r.Style(red).Render("Hello") + r.Style(component.Inherit).Render(" world")
	assert.Equal(t, expected, r.RenderLine(lines[0]))
	assert.Contains(t, r.RenderLine(lines[0]), "\x1b[")
}

func TestRenderLine_Hyperlinks(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.TrueColor))
	require.NoError(t, err)

	lines := convert(t, `<click action="open_url" value="http://x">go</click>`)
	out := r.RenderLine(lines[0])
	assert.Contains(t, out, "\x1b]8;;http://x\x1b\\")
	assert.Contains(t, out, "go")

	lines = convert(t, `<click action="run_command" value="/x">go</click>`)
	assert.NotContains(t, r.RenderLine(lines[0]), "\x1b]8;;")
}

func TestRenderLine_Wrap(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii), terminal.WithWidth(7))
	require.NoError(t, err)

	lines := convert(t, "aaa bbb ccc")
	assert.Equal(t, "aaa bbb\nccc", r.RenderLine(lines[0]))
}

func TestRenderLines(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	require.NoError(t, r.RenderLines(convert(t, "one<lf/>two")))
	assert.Equal(t, "one\ntwo\n", buf.String())
}

func TestRenderErrorAndMessage(t *testing.T) {
	var buf bytes.Buffer
	r, err := terminal.New(&buf, terminal.WithColorProfile(termenv.Ascii))
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New("boom")))
	require.NoError(t, r.RenderMessage("ok"))
	assert.Equal(t, "Error: boom\nok\n", buf.String())
}
