package theming

import (
	"errors"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestResolve_BuildsRendererConfig(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens:  map[string]string{"brand": "#123456", "text.muted": "#999"},
		},
	}}

	cfg, err := Resolve(selector, "acme", "dark", "/static", map[string]string{"page.layout": "layouts/wide"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if diff := cmp.Diff([]selectorCall{{name: "acme", variant: "dark"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Fatalf("unexpected selection: %s/%s", cfg.Theme, cfg.Variant)
	}
	wantVars := map[string]string{"--wt-brand": "#123456", "--wt-text-muted": "#999"}
	if diff := cmp.Diff(wantVars, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL("site.css"); got != "/static/site.css" {
		t.Fatalf("unexpected asset url: %q", got)
	}
	wantPartials := map[string]string{"page.layout": "layouts/wide", "home/first_page": "home/first_page"}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_PropagatesSelectorError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Resolve(&stubThemeSelector{err: boom}, "acme", "", "/", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped selector error, got %v", err)
	}
}

func TestStaticSelector_Select(t *testing.T) {
	selector := NewStaticSelector("", "", map[string]string{"brand": "#000"})

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Theme != DefaultTheme || selection.Variant != DefaultVariant {
		t.Fatalf("unexpected selection: %s/%s", selection.Theme, selection.Variant)
	}

	if _, err := selector.Select("other", ""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestAssetResolver_KeepsAbsoluteURLs(t *testing.T) {
	resolve := AssetResolver("")
	if got := resolve("webtemplate.css"); got != "/webtemplate.css" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := resolve("https://cdn.example.com/x.css"); got != "https://cdn.example.com/x.css" {
		t.Fatalf("unexpected url: %q", got)
	}
}

func TestCSSVarsStyle_Sorted(t *testing.T) {
	got := CSSVarsStyle(map[string]string{"--b": "2", "--a": "1"})
	if got != "--a: 1; --b: 2;" {
		t.Fatalf("unexpected style: %q", got)
	}
}

func TestDefaultPartials_SkipsBlankOverrides(t *testing.T) {
	got := DefaultPartials(map[string]string{" ": "x", "page.layout": "  ", "about": "pages/about"})
	want := map[string]string{
		"page.layout":     "layout",
		"home/first_page": "home/first_page",
		"about":           "pages/about",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}
}
