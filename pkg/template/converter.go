package template

// MarkupConverter turns the markup produced by a template into a
// presentation type. *markup.Converter satisfies
// MarkupConverter[[]*component.Styled].
type MarkupConverter[T any] interface {
	Convert(markup string) (T, error)
}

// ConverterFunc adapts a function to MarkupConverter.
type ConverterFunc[T any] func(markup string) (T, error)

// Convert calls f.
func (f ConverterFunc[T]) Convert(markup string) (T, error) {
	return f(markup)
}

// XMLConverter returns markup unchanged.
type XMLConverter struct{}

// Convert implements MarkupConverter.
func (XMLConverter) Convert(markup string) (string, error) {
	return markup, nil
}

// Format renders template name with args and converts the result.
func Format[T any](m *Manager, name string, conv MarkupConverter[T], args ...any) (T, error) {
	var zero T
	markup, err := m.Execute(name, args...)
	if err != nil {
		return zero, err
	}
	return conv.Convert(markup)
}
