package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	chatmlerrors "github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
	"github.com/arthur-debert/chatml/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "CHATML_"

// envSeparator separates section and key in variable names.
const envSeparator = "__"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultsContent returns the embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// File is an explicit config file; it must exist. Empty means the
	// XDG location, which may be absent.
	File string

	// SkipEnv ignores CHATML_ environment variables.
	SkipEnv bool
}

// envKey maps CHATML_SECTION__KEY to section.key. Variables without a
// section separator belong to other concerns (CHATML_CONFIG_DIR) and are
// skipped.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	if !strings.Contains(s, envSeparator) {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(s), envSeparator, ".")
}

// LoadKoanf layers defaults, the config file and the environment.
func LoadKoanf(opts LoadOptions) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, chatmlerrors.Wrap(err, chatmlerrors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config file if it exists
	path := opts.File
	if path == "" {
		path = paths.ConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, chatmlerrors.Wrapf(err, chatmlerrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if opts.File != "" {
		return nil, chatmlerrors.Wrapf(err, chatmlerrors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Load env vars
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, chatmlerrors.Wrap(err, chatmlerrors.ErrConfigLoad, "failed to load env vars")
		}
	}

	return k, nil
}

// Load returns the validated configuration.
func Load(opts LoadOptions) (*Config, error) {
	k, err := LoadKoanf(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, chatmlerrors.Wrap(err, chatmlerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Dump renders the layered configuration as TOML.
func Dump(opts LoadOptions) ([]byte, error) {
	k, err := LoadKoanf(opts)
	if err != nil {
		return nil, err
	}
	out, err := k.Marshal(toml.Parser())
	if err != nil {
		return nil, chatmlerrors.Wrap(err, chatmlerrors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
