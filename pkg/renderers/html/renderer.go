// Package html renders pages as full HTML documents from embedded pongo2
// templates.
package html

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-webtemplate/pkg/render"
	rendertemplate "github.com/goliatone/go-webtemplate/pkg/render/template"
	"github.com/goliatone/go-webtemplate/pkg/render/template/gotemplate"
	"github.com/goliatone/go-webtemplate/pkg/sanitize"
	"github.com/goliatone/go-webtemplate/pkg/theming"
)

// Name is the registry key of this renderer.
const Name = "html"

// LayoutPartial is the theme partial key naming the layout template.
const LayoutPartial = "page.layout"

const defaultLayout = "layout"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	assetBase        string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates
// missing there fall back to the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateDir = path
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAssetBase sets where the stylesheet is linked from when no theme is
// supplied. Defaults to "/assets".
func WithAssetBase(base string) Option {
	return func(cfg *config) {
		cfg.assetBase = base
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	assetURL  func(string) string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{assetBase: "/assets"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engineOpts := []gotemplate.Option{gotemplate.WithFS(cfg.templateFS)}
		if cfg.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templateDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{
		templates: templates,
		assetURL:  theming.AssetResolver(cfg.assetBase),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the page template and wraps the result in the layout.
// Theme partials keyed by the page name or LayoutPartial replace the
// default template names.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	data := make(map[string]any, len(options.Values)+4)
	for key, value := range options.Values {
		data[key] = value
	}
	data["page"] = page.Data
	data["title"] = sanitize.Label(page.Title)
	data["theme"] = r.themeContext(options.Theme)

	pageTemplate := partial(options.Theme, page.Name, page.Name)
	body, err := r.templates.RenderTemplate(pageTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render %q: %w", pageTemplate, err)
	}

	data["body"] = body
	document, err := r.templates.RenderTemplate(partial(options.Theme, LayoutPartial, defaultLayout), data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render layout: %w", err)
	}
	return []byte(document), nil
}

func (r *Renderer) themeContext(cfg *theme.RendererConfig) map[string]any {
	ctx := map[string]any{
		"name":       theming.DefaultTheme,
		"variant":    theming.DefaultVariant,
		"stylesheet": r.assetURL(StylesheetName),
		"style":      "",
		"tokens":     map[string]string{},
	}
	if cfg == nil {
		return ctx
	}
	if cfg.Theme != "" {
		ctx["name"] = cfg.Theme
	}
	if cfg.Variant != "" {
		ctx["variant"] = cfg.Variant
	}
	if cfg.AssetURL != nil {
		ctx["stylesheet"] = cfg.AssetURL(StylesheetName)
	}
	ctx["style"] = theming.CSSVarsStyle(cfg.CSSVars)
	if len(cfg.Tokens) > 0 {
		ctx["tokens"] = cfg.Tokens
	}
	return ctx
}

func partial(cfg *theme.RendererConfig, key, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if name := cfg.Partials[key]; name != "" {
		return name
	}
	return fallback
}
