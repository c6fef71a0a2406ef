// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/markup"
)

// Renderer writes chat-component JSON, one array per conversion
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderLines renders converted lines as a JSON array of components
func (r *Renderer) RenderLines(lines []*component.Styled) error {
	return r.encoder.Encode(Lines(lines))
}

// RenderError renders an error as JSON, including its code and details
// when it carries them
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]any{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = string(code)
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}

// Marshal converts markup straight to compact JSON, one document per line.
func Marshal(conv *markup.Converter, input string) ([]string, error) {
	lines, err := conv.Convert(input)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		data, err := json.Marshal(FromComponent(line))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to encode component")
		}
		out = append(out, string(data))
	}
	return out, nil
}

// Converter adapts a markup converter to produce JSON strings.
type Converter struct {
	Markup *markup.Converter
}

// Convert implements template.MarkupConverter.
func (c Converter) Convert(input string) ([]string, error) {
	conv := c.Markup
	if conv == nil {
		conv = markup.Default
	}
	return Marshal(conv, input)
}
