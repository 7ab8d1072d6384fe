package firstpage

import (
	"net/http"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-webtemplate/pkg/render"
)

const (
	DefaultRoutePath     = "/"
	DefaultAPIPath       = "/api/first-page-items"
	DefaultRenderer      = "html"
	DefaultRendererParam = "format"
)

// GuardFunc authorises a request. Returning an HTTPError selects the
// response status; any other error yields 403.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath     string
	APIPath       string
	Renderer      string
	RendererParam string
	Guard         GuardFunc

	Registry *render.Registry
	Theme    *theme.RendererConfig
	Logger   *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:     DefaultRoutePath,
		APIPath:       DefaultAPIPath,
		Renderer:      DefaultRenderer,
		RendererParam: DefaultRendererParam,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.APIPath == "" {
		opts.APIPath = DefaultAPIPath
	}
	if opts.Renderer == "" {
		opts.Renderer = DefaultRenderer
	}
	if opts.RendererParam == "" {
		opts.RendererParam = DefaultRendererParam
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithAPIPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.APIPath = path
	}
}

func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = name
	}
}

// WithRendererParam names the query parameter that picks a renderer per
// request ("?format=text").
func WithRendererParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RendererParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithRegistry(registry *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Registry = registry
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = cfg
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
