package render

import (
	"context"
	"errors"
)

var (
	// ErrPageRequired is returned when a renderer receives a page without a
	// template name.
	ErrPageRequired = errors.New("render: page name is required")
	// ErrRendererNotFound is returned by Registry.Get for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
)

// Page is the unit renderers consume: a template name, a title and the
// view-model handed to the template as-is.
type Page struct {
	Name  string
	Title string
	Data  any
}

// Validate reports whether the page can be handed to a renderer.
func (p Page) Validate() error {
	if p.Name == "" {
		return ErrPageRequired
	}
	return nil
}

// Renderer converts a Page into a byte representation (HTML, plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}
