package firstpage

import (
	"fmt"

	"github.com/goliatone/go-webtemplate/pkg/render"
	"github.com/goliatone/go-webtemplate/pkg/renderers/html"
	"github.com/goliatone/go-webtemplate/pkg/renderers/text"
)

// DefaultRegistry registers the html and text renderers. html options are
// forwarded to the html renderer.
func DefaultRegistry(options ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(options...)
	if err != nil {
		return nil, fmt.Errorf("firstpage: %w", err)
	}
	return render.NewRegistry(htmlRenderer, text.New())
}
