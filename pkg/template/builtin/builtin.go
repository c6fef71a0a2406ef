// Package builtin bundles the default chat templates.
package builtin

import "embed"

// FS holds every default template, named by path without ".tmpl".
//
//go:embed *.tmpl
var FS embed.FS
