package config

import (
	"time"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/paths"
)

// Config is the effective chatml configuration.
type Config struct {
	Converter ConverterConfig `koanf:"converter"`
	Templates TemplatesConfig `koanf:"templates"`
	Output    OutputConfig    `koanf:"output"`
}

// ConverterConfig feeds markup.Options.
type ConverterConfig struct {
	KeepLinefeeds bool `koanf:"keep_linefeeds"`
	MaxDepth      int  `koanf:"max_depth"`
	Strict        bool `koanf:"strict"`
}

// TemplatesConfig configures the template manager.
type TemplatesConfig struct {
	OverrideDir   string        `koanf:"override_dir"`
	CacheTTL      time.Duration `koanf:"cache_ttl"`
	TimeZone      string        `koanf:"time_zone"`
	StoreDefaults bool          `koanf:"store_defaults"`
}

// OutputConfig selects and tunes the renderer.
type OutputConfig struct {
	Format  string `koanf:"format"`
	Width   int    `koanf:"width"`
	NoColor bool   `koanf:"no_color"`
}

// Dir returns the override directory, falling back to the XDG location.
func (t TemplatesConfig) Dir() string {
	if t.OverrideDir != "" {
		return t.OverrideDir
	}
	return paths.TemplatesDir()
}

// Location resolves TimeZone. Empty means time.Local.
func (t TemplatesConfig) Location() (*time.Location, error) {
	if t.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(t.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "unknown time zone %q", t.TimeZone).
			WithDetail("key", "templates.time_zone")
	}
	return loc, nil
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if c.Converter.MaxDepth < 0 {
		return errors.Newf(errors.ErrConfigParse, "converter.max_depth must not be negative, got %d", c.Converter.MaxDepth).
			WithDetail("key", "converter.max_depth")
	}
	if c.Templates.CacheTTL < 0 {
		return errors.New(errors.ErrConfigParse, "templates.cache_ttl must not be negative").
			WithDetail("key", "templates.cache_ttl")
	}
	if _, err := c.Templates.Location(); err != nil {
		return err
	}
	return nil
}
