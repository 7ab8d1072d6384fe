package firstpage

import "net/http"

// Component bundles the first page handlers, their configuration and
// routing helpers.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// PageHandler returns the page handler.
func (c *Component) PageHandler() http.Handler {
	if c == nil {
		return PageHandler()
	}
	return PageHandlerWithOptions(c.opts)
}

// ItemsHandler returns the JSON items handler.
func (c *Component) ItemsHandler() http.Handler {
	if c == nil {
		return ItemsHandler()
	}
	return ItemsHandlerWithOptions(c.opts)
}

// RegisterRoutes registers both handlers under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Mounted, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
