package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html templates/home/*.html
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the built-in stylesheet served from AssetsFS.
const StylesheetName = "webtemplate.css"

// TemplatesFS exposes the embedded page templates rooted at the templates
// directory, so names match render.Page names ("home/first_page").
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// AssetsFS exposes the embedded stylesheet so callers can serve it over
// HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
