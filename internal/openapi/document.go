// Package openapi describes the HTTP routes of the application as an
// OpenAPI 3 document built with kin-openapi.
package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the OpenAPI version the document declares.
const Version = "3.0.3"

// Routes lists the mounted paths the document describes.
type Routes struct {
	Title      string
	APIVersion string
	PagePath   string
	ItemsPath  string
}

// Build constructs and validates the document.
func Build(ctx context.Context, routes Routes) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if routes.PagePath == "" || routes.ItemsPath == "" {
		return nil, errors.New("openapi: page and items paths are required")
	}
	if routes.Title == "" {
		routes.Title = "webtemplate"
	}
	if routes.APIVersion == "" {
		routes.APIVersion = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:   routes.Title,
			Version: routes.APIVersion,
		},
		Paths: openapi3.NewPaths(),
	}

	page := openapi3.NewOperation()
	page.OperationID = "getFirstPage"
	page.Summary = "Render the first page"
	page.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("First page document").
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"text/html"})))
	doc.Paths.Set(routes.PagePath, &openapi3.PathItem{Get: page})

	itemsSchema := openapi3.NewObjectSchema().
		WithProperty("data", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
	itemsSchema.Required = []string{"data"}

	items := openapi3.NewOperation()
	items.OperationID = "listFirstPageItems"
	items.Summary = "List the first page items in display order"
	items.AddResponse(http.StatusOK, openapi3.NewResponse().
		WithDescription("First page items").
		WithJSONSchema(itemsSchema))
	doc.Paths.Set(routes.ItemsPath, &openapi3.PathItem{Get: items})

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return doc, nil
}

// Handler serves doc as JSON. The payload is encoded once, on first use.
func Handler(doc *openapi3.T) http.Handler {
	var (
		once    sync.Once
		payload []byte
		encErr  error
	)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		once.Do(func() {
			if doc == nil {
				encErr = errors.New("openapi: document is nil")
				return
			}
			payload, encErr = json.Marshal(doc)
		})
		if encErr != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(payload)
	})
}

// OperationIDs returns "METHOD path" → operationId for every operation in
// doc, which callers use to check the document matches the mux.
func OperationIDs(doc *openapi3.T) map[string]string {
	out := make(map[string]string)
	if doc == nil || doc.Paths == nil {
		return out
	}
	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			out[strings.ToUpper(method)+" "+path] = op.OperationID
		}
	}
	return out
}
