// Package datafile loads template arguments from JSON, YAML or TOML files.
package datafile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Kind is a supported data file syntax.
type Kind string

const (
	JSON Kind = "json"
	YAML Kind = "yaml"
	TOML Kind = "toml"
)

// KindOf picks the syntax from the file extension.
func KindOf(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unsupported data file %s", path).
		WithDetail("path", path)
}

// Load reads path and decodes it into a map.
func Load(path string) (map[string]any, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read data file").
			WithDetail("path", path)
	}
	out, err := Parse(data, kind)
	if err != nil {
		return nil, err.(*errors.ChatmlError).WithDetail("path", path)
	}
	return out, nil
}

// Parse decodes data of the given kind. The document must be an object.
func Parse(data []byte, kind Kind) (map[string]any, error) {
	out := make(map[string]any)
	var err error
	switch kind {
	case JSON:
		err = json.Unmarshal(data, &out)
	case YAML:
		err = yaml.Unmarshal(data, &out)
	case TOML:
		err = toml.Unmarshal(data, &out)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported data kind %q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateData, "failed to parse %s data", kind)
	}
	if out == nil {
		out = make(map[string]any)
	}
	return out, nil
}
