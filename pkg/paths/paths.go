package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for chatml
	EnvConfigDir = "CHATML_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for chatml
	EnvStateDir = "CHATML_STATE_DIR"
)

// Fixed names below the resolved directories
const (
	// AppDirName is the directory name used under every XDG base dir
	AppDirName = "chatml"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// TemplatesDirName is the subdirectory holding template overrides
	TemplatesDirName = "templates"

	// LogFileName is the name of the log file
	LogFileName = "chatml.log"
)

// ConfigDir returns the chatml configuration directory.
// The environment is read on every call so overrides set after process
// start (tests, wrappers) are honored; xdg's cached value is the fallback.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the chatml state directory (logs).
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	if home := os.Getenv("XDG_STATE_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the default user configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// TemplatesDir returns the directory that holds user template overrides.
func TemplatesDir() string {
	return filepath.Join(ConfigDir(), TemplatesDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}
