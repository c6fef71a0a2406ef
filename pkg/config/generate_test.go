package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOutConfigValues(t *testing.T) {
	input := "# note\n\n[converter]\nmax_depth = 8\n"
	expected := "# note\n\n[converter]\n# max_depth = 8\n"
	assert.Equal(t, expected, commentOutConfigValues(input))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
	assert.Contains(t, content, "# max_depth = 8")
}

func TestWriteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigFile(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GenerateConfigContent(), string(data))

	err = WriteConfigFile(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.NoError(t, WriteConfigFile(path, true))
}

func TestWrittenConfigLoads(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, WriteConfigFile(filepath.Join(dir, "config.toml"), false))

	cfg, err := Load(LoadOptions{SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Converter.MaxDepth)
}

func TestIsAssignment(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"# comment", false},
		{"  # indented comment", false},
		{"[output]", false},
		{"format = \"auto\"", true},
		{"  width = 0", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, isAssignment(tt.line))
		})
	}
}
