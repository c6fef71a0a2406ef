/*
Package template renders named text/template sources into chat markup and
hands the result to a MarkupConverter.

Sources come from a ResourceProvider: bundled defaults (an fs.FS, usually
the embedded builtin package) overlaid by files in a user override
directory. StoreDefaults keeps a ".orig" copy of each default next to the
overrides and removes overrides the user never edited.

	provider := template.NewResourceProvider(builtin.FS, paths.TemplatesDir())
	m := template.NewManager(provider, template.Options{CacheTTL: time.Hour})

	lines, err := template.Format(m, "welcome", markup.Default, struct {
		Player string `json:"player"`
	}{"Steve"})

Arguments are merged into a single map through their JSON encoding, so
templates address them by json field name.

Helpers available in every template:

	readableIndex   zero-based index to one-based number
	formatTime      ISO-8601 string or time.Time, optional Go layout
	escape          escapes &, < and quotes for use inside markup
	upper, lower    case conversion
*/
package template
