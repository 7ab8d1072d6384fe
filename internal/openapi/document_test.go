package openapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
)

func TestBuild_DescribesRoutes(t *testing.T) {
	doc, err := Build(context.Background(), Routes{PagePath: "/web/", ItemsPath: "/web/api/first-page-items"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := map[string]string{
		"GET /web/":                     "getFirstPage",
		"GET /web/api/first-page-items": "listFirstPageItems",
	}
	if diff := cmp.Diff(want, OperationIDs(doc)); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
	if doc.Info.Title != "webtemplate" || doc.Info.Version != "1.0.0" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
}

func TestBuild_RequiresPaths(t *testing.T) {
	if _, err := Build(context.Background(), Routes{PagePath: "/"}); err == nil {
		t.Fatalf("expected error without items path")
	}
}

func TestHandler_ServesLoadableDocument(t *testing.T) {
	doc, err := Build(context.Background(), Routes{PagePath: "/", ItemsPath: "/api/first-page-items"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	rec := httptest.NewRecorder()
	Handler(doc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	loader := openapi3.NewLoader()
	loaded, err := loader.LoadFromData(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("load served document: %v", err)
	}
	if err := loaded.Validate(context.Background()); err != nil {
		t.Fatalf("validate served document: %v", err)
	}
	if loaded.Paths.Value("/api/first-page-items") == nil {
		t.Fatalf("expected items path in served document")
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/openapi.json", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}
