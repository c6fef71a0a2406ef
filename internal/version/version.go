// Package version holds build information injected at link time.
package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/chatml/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/chatml/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/chatml/internal/version.Date={{.Date}}
)

// String formats the build information for the version command.
func String(name string) string {
	return fmt.Sprintf("%s version %s\n  commit: %s\n  built:  %s\n", name, Version, Commit, Date)
}
