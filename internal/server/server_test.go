package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-webtemplate/pkg/config"
)

func TestNew_MountsRoutesUnderBasePath(t *testing.T) {
	srv := newServer(t, config.New(config.WithBasePath("/web")), zap.NewNop())

	paths := srv.Paths()
	if paths.Page != "/web/" || paths.Items != "/web/api/first-page-items" || paths.OpenAPI != "/web/openapi.json" {
		t.Fatalf("unexpected paths: %+v", paths)
	}

	for _, target := range []string{paths.Page, paths.Items, paths.OpenAPI, paths.Assets + "webtemplate.css"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", target, rec.Code)
		}
	}
}

func TestNew_BasePathWithoutLeadingSlash(t *testing.T) {
	cfg, err := config.Parse([]byte("server:\n  base_path: web\n"), "inline")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	srv := newServer(t, cfg, zap.NewNop())

	want := Paths{
		Page:    "/web/",
		Items:   "/web/api/first-page-items",
		OpenAPI: "/web/openapi.json",
		Assets:  "/web/assets/",
	}
	if diff := cmp.Diff(want, srv.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	page := httptest.NewRecorder()
	srv.Handler().ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/web/", nil))
	if !strings.Contains(page.Body.String(), `href="/web/assets/webtemplate.css"`) {
		t.Fatalf("expected stylesheet under base path:\n%s", page.Body.String())
	}

	for _, target := range []string{"/web/openapi.json", "/web/assets/webtemplate.css"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 for %s, got %d", target, rec.Code)
		}
	}
}

func TestAssetsPath(t *testing.T) {
	for base, want := range map[string]string{"": "/assets/", "/": "/assets/", "web": "/web/assets/", "/web/": "/web/assets/"} {
		if got := AssetsPath(base); got != want {
			t.Fatalf("AssetsPath(%q) = %q, want %q", base, got, want)
		}
	}
}

func TestNew_PageUsesThemeAndAssetBase(t *testing.T) {
	cfg := config.New(config.WithTheme("acme", "dark"))
	cfg.Theme.Tokens = map[string]string{"brand": "#123456"}
	srv := newServer(t, cfg, zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	for _, want := range []string{`class="theme-acme variant-dark"`, `href="/assets/webtemplate.css"`, "<li>Item 3</li>"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}
}

func TestNew_RejectsUnknownRenderer(t *testing.T) {
	cfg := config.New()
	cfg.Server.Renderer = "pdf"
	if _, err := New(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestRequestLogger_LogsAndSetsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := newServer(t, config.New(), zap.New(core))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/first-page-items", nil))

	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid request id, got %q", id)
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/api/first-page-items" || fields["request_id"] != id {
		t.Fatalf("unexpected log fields: %#v", fields)
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("unexpected status field: %#v", fields["status"])
	}
}

func TestRequestLogger_ReusesIncomingID(t *testing.T) {
	id := uuid.NewString()
	h := RequestLogger(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Fatalf("expected request id %q, got %q", id, got)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv := newServer(t, config.New(), zap.NewNop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/first-page-items")
	if err != nil {
		cancel()
		t.Fatalf("get: %v", err)
	}
	var payload struct {
		Data []string `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&payload)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if err != nil || len(payload.Data) != 3 {
		cancel()
		t.Fatalf("unexpected response: %v %#v", err, payload)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func newServer(t *testing.T, cfg config.Config, logger *zap.Logger) *Server {
	t.Helper()
	srv, err := New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}
