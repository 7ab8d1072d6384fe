package firstpage

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-webtemplate/pkg/render"
	"github.com/goliatone/go-webtemplate/pkg/viewmodel/home"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type itemsResponse struct {
	Data []string `json:"data"`
}

// PageHandler builds the page handler with default options plus overrides.
func PageHandler(fns ...OptionFn) http.Handler {
	return PageHandlerWithOptions(NewOptions(fns...))
}

// PageHandlerWithOptions renders the first page with the configured
// renderer, or the one named by the RendererParam query parameter. A nil
// Registry falls back to DefaultRegistry.
func PageHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	registry := opts.Registry
	var registryErr error
	if registry == nil {
		registry, registryErr = DefaultRegistry()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRequest(w, r, opts) {
			return
		}
		if registryErr != nil {
			opts.Logger.Error("first page registry unavailable", zap.Error(registryErr))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		name := opts.Renderer
		if requested := r.URL.Query().Get(opts.RendererParam); requested != "" {
			name = requested
		}
		renderer, err := registry.Get(name)
		if err != nil {
			if errors.Is(err, render.ErrRendererNotFound) && name != opts.Renderer {
				http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
				return
			}
			opts.Logger.Error("first page renderer missing", zap.String("renderer", name), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		vm := home.NewFirstPageViewModel()
		out, err := renderer.Render(r.Context(), vm.Page(), render.RenderOptions{Theme: opts.Theme})
		if err != nil {
			opts.Logger.Error("render first page",
				zap.String("renderer", renderer.Name()),
				zap.Error(err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(out)
	})
}

// ItemsHandler builds the JSON items handler with default options plus
// overrides.
func ItemsHandler(fns ...OptionFn) http.Handler {
	return ItemsHandlerWithOptions(NewOptions(fns...))
}

// ItemsHandlerWithOptions responds with {"data": [...]} holding the first
// page labels in display order.
func ItemsHandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowRequest(w, r, opts) {
			return
		}

		items := home.NewFirstPageViewModel().FirstPageItems()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		if err := enc.Encode(itemsResponse{Data: items}); err != nil {
			opts.Logger.Warn("encode first page items", zap.Error(err))
		}
	})
}

func allowRequest(w http.ResponseWriter, r *http.Request, opts Options) bool {
	if r == nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}
	if opts.Guard != nil {
		if err := opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return false
		}
	}
	return true
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
