package text_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/chatml/pkg/markup"
	"github.com/arthur-debert/chatml/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := text.New(&buf)
	require.NoError(t, err)

	lines, err := markup.Convert(`<span color="gold" bold="">Title</span><lf/>  body   text `)
	require.NoError(t, err)

	require.NoError(t, r.RenderLines(lines))
	require.NoError(t, r.RenderMessage("done"))
	require.NoError(t, r.RenderError(errors.New("boom")))

	assert.Equal(t, "Title\nbody text\ndone\nError: boom\n", buf.String())
}

func TestRenderer_Width(t *testing.T) {
	var buf bytes.Buffer
	r, err := text.New(&buf, text.WithWidth(10))
	require.NoError(t, err)

	lines, err := markup.Convert(`alpha beta gamma delta`)
	require.NoError(t, err)
	require.NoError(t, r.RenderLines(lines))

	assert.Equal(t, "alpha beta\ngamma\ndelta\n", buf.String())
}
