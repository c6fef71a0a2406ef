package topics

// Renderer turns raw topic content into terminal output. format is the
// topic file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content string, format string) string

// Render calls f.
func (f RendererFunc) Render(content string, format string) string {
	return f(content, format)
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// ByExtension picks a renderer by topic extension. Extensions without an
// entry go to Fallback, or are returned as-is when Fallback is nil.
type ByExtension struct {
	Renderers map[string]Renderer
	Fallback  Renderer
}

// Render dispatches on format.
func (r *ByExtension) Render(content string, format string) string {
	if renderer, ok := r.Renderers[format]; ok {
		return renderer.Render(content, format)
	}
	if r.Fallback != nil {
		return r.Fallback.Render(content, format)
	}
	return content
}
