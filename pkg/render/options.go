package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the view-model.
type RenderOptions struct {
	// Theme carries the resolved theme/variant, tokens and asset resolver.
	// Renderers fall back to their built-in styling when it is nil.
	Theme *theme.RendererConfig
	// Values are merged into the template context next to the page data.
	// Keys already used by the renderer ("page", "title", "theme") win.
	Values map[string]any
}

// Value returns the named value, or nil when unset.
func (o RenderOptions) Value(key string) any {
	if o.Values == nil {
		return nil
	}
	return o.Values[key]
}
