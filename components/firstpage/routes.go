package firstpage

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Mounted reports where RegisterRoutes placed the handlers.
type Mounted struct {
	PagePath  string
	ItemsPath string
}

// MountPaths returns the full page and items paths under basePath.
func MountPaths(basePath string, fns ...OptionFn) Mounted {
	opts := NewOptions(fns...)
	return Mounted{
		PagePath:  JoinPath(basePath, opts.RoutePath),
		ItemsPath: JoinPath(basePath, opts.APIPath),
	}
}

// RegisterRoutes registers the page and items handlers under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Mounted, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions registers both handlers using a pre-built
// Options value. Page paths ending in "/" match exactly rather than as a
// ServeMux subtree.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Mounted, error) {
	if mux == nil {
		return Mounted{}, fmt.Errorf("firstpage: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })

	mounted := Mounted{
		PagePath:  JoinPath(basePath, opts.RoutePath),
		ItemsPath: JoinPath(basePath, opts.APIPath),
	}
	if mounted.PagePath == mounted.ItemsPath {
		return Mounted{}, fmt.Errorf("firstpage: page and items share path %q", mounted.PagePath)
	}

	mux.Handle(exactPattern(mounted.PagePath), PageHandlerWithOptions(opts))
	mux.Handle(exactPattern(mounted.ItemsPath), ItemsHandlerWithOptions(opts))
	return mounted, nil
}

func exactPattern(path string) string {
	if strings.HasSuffix(path, "/") {
		return path + "{$}"
	}
	return path
}

// JoinPath mounts routePath under basePath, adding the leading slash either
// may lack. A trailing slash on routePath is kept.
func JoinPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
