package template

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
)

// Ext is the file extension of template sources. A template's name is its
// slash-separated path without the extension.
const Ext = ".tmpl"

// OrigSuffix marks the pristine copy of a default written next to an
// override.
const OrigSuffix = ".orig"

// ResourceProvider resolves template sources. Files in OverrideDir take
// precedence over the bundled Defaults.
type ResourceProvider struct {
	Defaults    fs.FS
	OverrideDir string
}

// NewResourceProvider creates a provider. An empty overrideDir disables
// overrides.
func NewResourceProvider(defaults fs.FS, overrideDir string) *ResourceProvider {
	return &ResourceProvider{Defaults: defaults, OverrideDir: overrideDir}
}

func (p *ResourceProvider) overridePath(name string) string {
	return filepath.Join(p.OverrideDir, filepath.FromSlash(name+Ext))
}

// Get returns the source of template name with surrounding whitespace
// trimmed.
func (p *ResourceProvider) Get(name string) (string, error) {
	if p.OverrideDir != "" {
		data, err := os.ReadFile(p.overridePath(name))
		switch {
		case err == nil:
			return strings.TrimSpace(string(data)), nil
		case !os.IsNotExist(err):
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read override for %s", name).
				WithDetail("path", p.overridePath(name))
		}
	}

	if p.Defaults != nil {
		data, err := fs.ReadFile(p.Defaults, name+Ext)
		if err == nil {
			return strings.TrimSpace(string(data)), nil
		}
	}

	available, _ := p.List()
	return "", errors.Newf(errors.ErrTemplateNotFound, "missing template %s", name).
		WithDetail("name", name).
		WithDetail("available", available)
}

// List returns the names of every default and override template, sorted.
func (p *ResourceProvider) List() ([]string, error) {
	seen := make(map[string]struct{})

	if p.Defaults != nil {
		err := fs.WalkDir(p.Defaults, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(name, Ext) {
				seen[strings.TrimSuffix(name, Ext)] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to list default templates")
		}
	}

	if p.OverrideDir != "" {
		err := filepath.WalkDir(p.OverrideDir, func(file string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) && file == p.OverrideDir {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(file, Ext) {
				return nil
			}
			rel, err := filepath.Rel(p.OverrideDir, file)
			if err != nil {
				return err
			}
			seen[strings.TrimSuffix(filepath.ToSlash(rel), Ext)] = struct{}{}
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to list override templates").
				WithDetail("dir", p.OverrideDir)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// StoreDefaults mirrors every default into OverrideDir as a ".orig" copy,
// so users can see what they override. An override whose content equals
// the current default or the previous ".orig" was never edited and is
// removed, letting updated defaults take effect.
func (p *ResourceProvider) StoreDefaults() error {
	if p.OverrideDir == "" || p.Defaults == nil {
		return nil
	}
	logger := logging.GetLogger("template.provider")

	return fs.WalkDir(p.Defaults, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to walk default templates")
		}
		target := filepath.Join(p.OverrideDir, filepath.FromSlash(name))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to create template directory").
					WithDetail("path", target)
			}
			return nil
		}
		if path.Ext(name) != Ext {
			return nil
		}

		data, err := fs.ReadFile(p.Defaults, name)
		if err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to read default template").
				WithDetail("name", name)
		}

		orig := target + OrigSuffix
		if current, err := os.ReadFile(target); err == nil {
			unmodified := bytes.Equal(current, data)
			if !unmodified {
				if previous, err := os.ReadFile(orig); err == nil {
					unmodified = bytes.Equal(current, previous)
				}
			}
			if unmodified {
				logger.Debug().Str("path", target).Msg("Removing unmodified override")
				if err := os.Remove(target); err != nil {
					return errors.Wrap(err, errors.ErrFileAccess, "failed to remove unmodified override").
						WithDetail("path", target)
				}
			}
		}

		if err := os.WriteFile(orig, data, 0644); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to store default template").
				WithDetail("path", orig)
		}
		return nil
	})
}
