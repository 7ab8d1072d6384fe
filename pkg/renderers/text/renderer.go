// Package text renders pages as plain text for terminals and logs.
package text

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-webtemplate/pkg/render"
	"github.com/goliatone/go-webtemplate/pkg/sanitize"
)

// Name is the registry key of this renderer.
const Name = "text"

// ItemSource is implemented by view-models that expose an ordered list of
// labels.
type ItemSource interface {
	FirstPageItems() []string
}

type Option func(*Renderer)

// WithBullet overrides the "- " prefix written before each item.
func WithBullet(bullet string) Option {
	return func(r *Renderer) {
		r.bullet = bullet
	}
}

// WithoutTitle omits the title line and its underline.
func WithoutTitle() Option {
	return func(r *Renderer) {
		r.title = false
	}
}

type Renderer struct {
	bullet string
	title  bool
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{bullet: "- ", title: true}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render writes the title, an underline and one line per item. Labels go
// through sanitize.Label like the HTML renderer, so markup is dropped and
// entities print decoded.
func (r *Renderer) Render(ctx context.Context, page render.Page, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	source, ok := page.Data.(ItemSource)
	if !ok {
		return nil, fmt.Errorf("text renderer: page %q data %T does not list items", page.Name, page.Data)
	}

	var buf bytes.Buffer
	if title := sanitize.Label(page.Title); r.title && title != "" {
		buf.WriteString(title)
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat("=", len([]rune(title))))
		buf.WriteByte('\n')
	}
	for _, item := range sanitize.Labels(source.FirstPageItems()) {
		buf.WriteString(r.bullet)
		buf.WriteString(item)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
