package template

import (
	"bytes"
	"encoding/json"
	"sync"
	"text/template"
	"time"

	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
	"github.com/patrickmn/go-cache"
)

// Options configures a Manager.
type Options struct {
	// CacheTTL bounds how long a compiled template is reused. Zero keeps
	// templates until Invalidate.
	CacheTTL time.Duration

	// Location is the zone UTC timestamps are shown in. Nil means
	// time.Local.
	Location *time.Location

	// StoreDefaults runs ResourceProvider.StoreDefaults before the first
	// template is compiled.
	StoreDefaults bool
}

// Manager compiles, caches and executes templates whose output is
// markup.
type Manager struct {
	provider *ResourceProvider
	opts     Options
	cache    *cache.Cache

	mu    sync.RWMutex
	funcs template.FuncMap

	storeOnce sync.Once
	storeErr  error
}

// NewManager creates a Manager reading sources from provider.
func NewManager(provider *ResourceProvider, opts Options) *Manager {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	ttl := opts.CacheTTL
	cleanup := ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Manager{
		provider: provider,
		opts:     opts,
		cache:    cache.New(ttl, cleanup),
		funcs:    defaultFuncs(opts.Location),
	}
}

// Provider returns the resource provider.
func (m *Manager) Provider() *ResourceProvider {
	return m.provider
}

// RegisterFunc adds a template helper. Cached templates are dropped so
// the helper is visible everywhere.
func (m *Manager) RegisterFunc(name string, fn any) {
	m.mu.Lock()
	m.funcs[name] = fn
	m.mu.Unlock()
	m.Invalidate()
}

// Invalidate drops every compiled template.
func (m *Manager) Invalidate() {
	m.cache.Flush()
}

// Template returns the compiled template called name.
func (m *Manager) Template(name string) (*template.Template, error) {
	if m.opts.StoreDefaults {
		m.storeOnce.Do(func() { m.storeErr = m.provider.StoreDefaults() })
		if m.storeErr != nil {
			return nil, m.storeErr
		}
	}

	if cached, found := m.cache.Get(name); found {
		return cached.(*template.Template), nil
	}

	src, err := m.provider.Get(name)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	tmpl, err := template.New(name).Funcs(m.funcs).Parse(src)
	m.mu.RUnlock()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateParse, "failed to parse template %s", name).
			WithDetail("name", name)
	}

	logger := logging.GetLogger("template")
	logger.Debug().Str("name", name).Msg("Template compiled")
	m.cache.Set(name, tmpl, cache.DefaultExpiration)
	return tmpl, nil
}

// Execute renders template name with the merged arguments and returns
// the resulting markup.
func (m *Manager) Execute(name string, args ...any) (string, error) {
	tmpl, err := m.Template(name)
	if err != nil {
		return "", err
	}
	data, err := MergeArgs(args...)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateExecute, "failed to execute template %s", name).
			WithDetail("name", name)
	}
	return buf.String(), nil
}

// FormatXML renders template name and returns the raw markup.
func (m *Manager) FormatXML(name string, args ...any) (string, error) {
	return Format[string](m, name, XMLConverter{}, args...)
}

// MergeArgs flattens every argument into one map by encoding it as a
// JSON object; later arguments win on key clashes. Struct fields follow
// their json tags, and embedded structs contribute their fields at the
// top level. Nil arguments are skipped.
func MergeArgs(args ...any) (map[string]any, error) {
	merged := make(map[string]any)
	for i, arg := range args {
		if arg == nil {
			continue
		}
		data, err := json.Marshal(arg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrTemplateData, "failed to encode template argument").
				WithDetail("index", i)
		}
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, errors.Wrap(err, errors.ErrTemplateData, "template argument is not an object").
				WithDetail("index", i)
		}
		for k, v := range fields {
			merged[k] = v
		}
	}
	return merged, nil
}
