// Package server assembles the HTTP surface: the first page component, the
// OpenAPI document and the embedded assets, behind request logging.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-webtemplate/components/firstpage"
	"github.com/goliatone/go-webtemplate/internal/openapi"
	"github.com/goliatone/go-webtemplate/pkg/config"
	"github.com/goliatone/go-webtemplate/pkg/renderers/html"
	"github.com/goliatone/go-webtemplate/pkg/theming"
)

const shutdownTimeout = 10 * time.Second

// Paths lists the routes the server mounted.
type Paths struct {
	Page    string
	Items   string
	OpenAPI string
	Assets  string
}

type Server struct {
	cfg     config.Config
	logger  *zap.Logger
	handler http.Handler
	paths   Paths
}

// New builds the mux for cfg. Nothing listens until Run.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	paths := Paths{
		OpenAPI: firstpage.JoinPath(cfg.Server.BasePath, "/openapi.json"),
		Assets:  AssetsPath(cfg.Server.BasePath),
	}

	selector := theming.NewStaticSelector(cfg.Theme.Name, cfg.Theme.Variant, cfg.Theme.Tokens)
	themeCfg, err := theming.Resolve(selector, cfg.Theme.Name, cfg.Theme.Variant, paths.Assets, cfg.Theme.Partials)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	registry, err := firstpage.DefaultRegistry(html.WithAssetBase(paths.Assets))
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if !registry.Has(cfg.Server.Renderer) {
		return nil, fmt.Errorf("server: unknown renderer %q (have %s)", cfg.Server.Renderer, strings.Join(registry.List(), ", "))
	}

	mux := http.NewServeMux()
	mounted, err := firstpage.New(
		firstpage.WithRegistry(registry),
		firstpage.WithRenderer(cfg.Server.Renderer),
		firstpage.WithTheme(themeCfg),
		firstpage.WithLogger(logger.Named("firstpage")),
	).RegisterRoutes(mux, cfg.Server.BasePath)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	paths.Page = mounted.PagePath
	paths.Items = mounted.ItemsPath

	doc, err := openapi.Build(ctx, openapi.Routes{PagePath: paths.Page, ItemsPath: paths.Items})
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	mux.Handle(paths.OpenAPI, openapi.Handler(doc))
	mux.Handle(paths.Assets, http.StripPrefix(paths.Assets, http.FileServerFS(html.AssetsFS())))

	return &Server{
		cfg:     cfg,
		logger:  logger,
		handler: RequestLogger(logger, mux),
		paths:   paths,
	}, nil
}

// AssetsPath is where the stylesheet is served under basePath.
func AssetsPath(basePath string) string {
	return firstpage.JoinPath(basePath, "/assets/")
}

// Handler exposes the wrapped mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Paths reports the mounted routes.
func (s *Server) Paths() Paths {
	return s.paths
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("page", s.paths.Page),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
