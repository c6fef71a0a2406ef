package markup

import (
	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
)

// DefaultMaxDepth bounds how deeply hover values may nest markup.
const DefaultMaxDepth = 8

// Options configures a Converter.
type Options struct {
	// KeepLinefeeds turns the line-break element into a literal "\n"
	// instead of starting a new line.
	KeepLinefeeds bool

	// MaxDepth limits hover-value recursion. Zero or less means
	// DefaultMaxDepth.
	MaxDepth int

	// Tokenizer defaults to HTMLTokenizer.
	Tokenizer Tokenizer

	// Minimizer is applied to every finished styled node. Defaults to
	// component.MinimizeStyled.
	Minimizer func(*component.Styled) *component.Styled
}

// Converter turns markup into one styled tree per line. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	opts Options
}

// New creates a Converter, filling in defaults.
func New(opts Options) *Converter {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = HTMLTokenizer{}
	}
	if opts.Minimizer == nil {
		opts.Minimizer = component.MinimizeStyled
	}
	return &Converter{opts: opts}
}

// Shared converters for the two line-break modes.
var (
	Default       = New(Options{})
	WithLinefeeds = New(Options{KeepLinefeeds: true})
)

// Convert converts markup with the Default converter.
func Convert(markup string) ([]*component.Styled, error) {
	return Default.Convert(markup)
}

// Options returns the effective options.
func (c *Converter) Options() Options {
	return c.opts
}

// Convert converts markup into lines.
func (c *Converter) Convert(markup string) ([]*component.Styled, error) {
	logger := logging.GetLogger("markup")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	lines, err := c.convert(markup, 0)
	if err != nil {
		logger.Debug().Err(err).Msg("Conversion failed")
		return nil, err
	}
	logger.Trace().
		Int("lines", len(lines)).
		Bool("keepLinefeeds", c.opts.KeepLinefeeds).
		Msg("Markup converted")
	return lines, nil
}

func (c *Converter) convert(markup string, depth int) ([]*component.Styled, error) {
	if depth > c.opts.MaxDepth {
		return nil, errors.Newf(errors.ErrDepthExceeded, "hover values nest deeper than %d levels", c.opts.MaxDepth).
			WithDetail("depth", depth)
	}

	b := newBuilder(c, depth)
	if err := c.opts.Tokenizer.Tokenize(markup, b); err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return nil, errors.Wrap(err, errors.ErrTokenize, "failed to tokenize markup")
		}
		return nil, err
	}

	if b.lineIsBlank() {
		b.lines = b.lines[:len(b.lines)-1]
	}

	lines := make([]*component.Styled, 0, len(b.lines))
	for _, root := range b.lines {
		b.trimTrailing(root)
		lines = append(lines, b.finalizeStyled(root))
	}
	return lines, nil
}

func (c *Converter) minimize(s *component.Styled) *component.Styled {
	return c.opts.Minimizer(s)
}
