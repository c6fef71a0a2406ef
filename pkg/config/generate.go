package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
)

// GenerateConfigContent returns the default configuration with every
// assignment commented out, so a written file documents the defaults
// without pinning them.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// isAssignment reports whether a TOML line sets a value, as opposed to a
// blank line, a comment or a table header.
func isAssignment(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "", strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		return false
	}
	return true
}

func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if isAssignment(line) {
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// WriteConfigFile writes the commented defaults to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteConfigFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", path).
			WithDetail("path", path)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to create config directory").
			WithDetail("path", dir)
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
