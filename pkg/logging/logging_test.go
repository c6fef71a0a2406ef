package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chatml/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, stateDir)

			var console bytes.Buffer
			Setup(Options{Verbosity: tt.verbosity, Console: &console})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(stateDir, paths.LogFileName))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetup_FileDisabled(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv(paths.EnvStateDir, stateDir)

	var console bytes.Buffer
	Setup(Options{Verbosity: 1, Console: &console, LogFile: "-", NoColor: true})
	log.Info().Msg("plain record")

	assert.Contains(t, console.String(), "plain record")
	assert.NotContains(t, console.String(), "\x1b[")

	_, err := os.Stat(filepath.Join(stateDir, paths.LogFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_ExplicitFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "run.log")

	var console bytes.Buffer
	Setup(Options{Verbosity: 1, Console: &console, LogFile: logPath})
	logger := GetLogger("template")
	logger.Info().Msg("cached")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"template"`)
	assert.Contains(t, string(data), `"message":"cached"`)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := GetLogger("markup")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"markup"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "convert")
	require.Contains(t, buf.String(), "Operation started")
	done()

	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"operation":"convert"`)
}
