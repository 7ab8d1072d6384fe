// Package webtemplate is the top-level entry point: it builds the first page
// view-model and renders it with one of the bundled renderers.
package webtemplate

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-webtemplate/components/firstpage"
	"github.com/goliatone/go-webtemplate/pkg/render"
	"github.com/goliatone/go-webtemplate/pkg/renderers/html"
	"github.com/goliatone/go-webtemplate/pkg/viewmodel/home"
)

// FirstPageViewModel aliases home.FirstPageViewModel.
type FirstPageViewModel = home.FirstPageViewModel

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// NewFirstPage returns a fresh first page view-model.
func NewFirstPage() *FirstPageViewModel {
	return home.NewFirstPageViewModel()
}

// RenderFirstPage renders a fresh view-model with the named renderer
// ("html" or "text").
func RenderFirstPage(ctx context.Context, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := firstpage.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("webtemplate: %w", err)
	}
	return renderer.Render(ctx, NewFirstPage().Page(), options)
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(webtemplate.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
