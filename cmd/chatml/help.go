package chatml

import (
	"bytes"
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/chatml/pkg/cobrax/topics"
	"github.com/arthur-debert/chatml/pkg/markup"
	"github.com/arthur-debert/chatml/pkg/ui/terminal"
	"github.com/muesli/termenv"
)

//go:embed topics
var topicsFS embed.FS

// helpTopics returns the embedded topic files rooted at the topics dir.
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return nil
	}
	return sub
}

// chatExt marks topics written in chat markup.
const chatExt = ".chat"

// newHelpRenderer renders markdown topics with glamour and chat topics
// with the terminal renderer.
func newHelpRenderer() topics.Renderer {
	return &topics.ByExtension{
		Renderers: map[string]topics.Renderer{
			chatExt: &chatTopicRenderer{profile: termenv.NewOutput(os.Stdout).EnvColorProfile()},
		},
		Fallback: topics.NewGlamourRenderer(),
	}
}

// chatTopicRenderer previews a markup topic the way convert would.
type chatTopicRenderer struct {
	profile termenv.Profile
}

func (r *chatTopicRenderer) Render(content string, format string) string {
	lines, err := markup.Convert(content)
	if err != nil {
		return content
	}
	var buf bytes.Buffer
	out, err := terminal.New(&buf, terminal.WithColorProfile(r.profile))
	if err != nil {
		return content
	}
	if err := out.RenderLines(lines); err != nil {
		return content
	}
	return buf.String()
}
