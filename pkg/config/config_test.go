package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Config{
		Server: ServerConfig{Addr: "127.0.0.1:9090", BasePath: "/web", Renderer: "html"},
		Theme:  ThemeConfig{Name: "acme", Variant: "dark", Tokens: map[string]string{"brand": "#123456"}, Partials: map[string]string{"page.layout": "layouts/wide"}},
		Log:    LogConfig{Level: "debug", Development: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" || cfg.Server.BasePath != "/" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if level, _ := cfg.ZapLevel(); level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %v", level)
	}
	if cfg.Theme.Name != "default" {
		t.Fatalf("expected default theme, got %q", cfg.Theme.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":     "   ",
		"bad addr":  "server:\n  addr: nope\n",
		"bad level": "log:\n  level: loud\n",
		"garbage":   "server: [\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(input), name); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "webtemplate.yaml")
	cfg := New(WithAddr("localhost:8081"), WithTheme("acme", "dark"), WithLogLevel("DEBUG"))

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_NormalizesEmptyValues(t *testing.T) {
	cfg := New(WithAddr(" "), WithBasePath(""), WithTheme("", ""))
	if cfg.Server.Addr != DefaultAddr || cfg.Server.BasePath != "/" {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Theme.Name != "default" || cfg.Theme.Variant != "light" {
		t.Fatalf("unexpected theme config: %+v", cfg.Theme)
	}
}

func TestParse_PrefixesBasePath(t *testing.T) {
	cfg, err := Parse([]byte("server:\n  base_path: web\n"), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Server.BasePath != "/web" {
		t.Fatalf("expected /web, got %q", cfg.Server.BasePath)
	}
}
