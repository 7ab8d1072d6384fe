// Package theming resolves go-theme selections into the renderer
// configuration page renderers consume.
package theming

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme and DefaultVariant name the built-in look.
const (
	DefaultTheme   = "default"
	DefaultVariant = "light"
)

// ErrUnknownTheme is returned by StaticSelector for names it does not own.
var ErrUnknownTheme = errors.New("theming: unknown theme")

// DefaultPartials maps partial keys to template names: "page.layout" for the
// layout, page names for page bodies. Extra entries override or extend them.
func DefaultPartials(extra map[string]string) map[string]string {
	out := map[string]string{
		"page.layout":     "layout",
		"home/first_page": "home/first_page",
	}
	for key, value := range extra {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return out
}

// StaticSelector serves a single manifest. Empty names select it; any
// variant is accepted and echoed back.
type StaticSelector struct {
	Manifest       *theme.Manifest
	DefaultVariant string
}

var _ theme.ThemeSelector = (*StaticSelector)(nil)

// NewStaticSelector builds a selector for a manifest named name carrying
// tokens.
func NewStaticSelector(name, variant string, tokens map[string]string) *StaticSelector {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = DefaultVariant
	}
	return &StaticSelector{
		Manifest: &theme.Manifest{
			Name:    name,
			Version: "1.0.0",
			Tokens:  copyStringMap(tokens),
		},
		DefaultVariant: variant,
	}
}

// Select implements theme.ThemeSelector.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if s == nil || s.Manifest == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	name = strings.TrimSpace(name)
	if name != "" && name != s.Manifest.Name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.DefaultVariant
	}
	return &theme.Selection{
		Theme:    s.Manifest.Name,
		Variant:  variant,
		Manifest: s.Manifest,
	}, nil
}

// Resolve asks selector for name/variant and converts the selection into a
// RendererConfig. Manifest tokens become CSS custom properties and asset
// paths resolve under assetBase. partials override DefaultPartials.
func Resolve(selector theme.ThemeSelector, name, variant, assetBase string, partials map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("theming: selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theming: select %q/%q: %w", name, variant, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: DefaultPartials(partials),
		AssetURL: AssetResolver(assetBase),
	}
	if selection.Manifest != nil {
		cfg.Tokens = copyStringMap(selection.Manifest.Tokens)
		cfg.CSSVars = cssVars(selection.Manifest.Tokens)
	}
	return cfg, nil
}

// AssetResolver returns a function joining asset names under base.
// Absolute URLs pass through untouched.
func AssetResolver(base string) func(string) string {
	base = "/" + strings.Trim(strings.TrimSpace(base), "/")
	return func(name string) string {
		name = strings.TrimSpace(name)
		if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "//") {
			return name
		}
		return path.Join(base, name)
	}
}

// CSSVarsStyle renders vars as a deterministic inline style declaration.
func CSSVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	return b.String()
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out["--wt-"+strings.ReplaceAll(key, ".", "-")] = value
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
