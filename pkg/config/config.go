// Package config loads and saves the webtemplate application settings.
//
// Files may be JSON or YAML; the format is sniffed from the content rather
// than the extension. Missing keys take the values from Default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webtemplate/pkg/theming"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

type Config struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Theme  ThemeConfig  `json:"theme" yaml:"theme"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

type ServerConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	BasePath string `json:"base_path" yaml:"base_path"`
	// Renderer names the renderer the page route uses.
	Renderer string `json:"renderer" yaml:"renderer"`
}

type ThemeConfig struct {
	Name     string            `json:"name" yaml:"name"`
	Variant  string            `json:"variant" yaml:"variant"`
	Tokens   map[string]string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	// Partials overrides template names, e.g. "page.layout" or a page name.
	Partials map[string]string `json:"partials,omitempty" yaml:"partials,omitempty"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

type OptionFn func(*Config)

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:     DefaultAddr,
			BasePath: "/",
			Renderer: "html",
		},
		Theme: ThemeConfig{
			Name:    theming.DefaultTheme,
			Variant: theming.DefaultVariant,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New returns Default with the overrides applied and empty fields
// normalised.
func New(fns ...OptionFn) Config {
	cfg := Default()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	cfg.normalize()
	return cfg
}

func WithAddr(addr string) OptionFn {
	return func(c *Config) {
		c.Server.Addr = addr
	}
}

func WithBasePath(path string) OptionFn {
	return func(c *Config) {
		c.Server.BasePath = path
	}
}

func WithTheme(name, variant string) OptionFn {
	return func(c *Config) {
		c.Theme.Name = name
		c.Theme.Variant = variant
	}
}

func WithLogLevel(level string) OptionFn {
	return func(c *Config) {
		c.Log.Level = level
	}
}

// Load reads path and overlays it on Default. A missing file is an error;
// callers that treat it as optional check errors.Is(err, os.ErrNotExist).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON or YAML bytes. source only labels errors.
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if yerr := yaml.Unmarshal(data, &cfg); yerr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, yerr)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("config: path is required")
	}
	payload, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks the listen address and log level.
func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return fmt.Errorf("invalid server.addr %q: %w", c.Server.Addr, err)
	}
	if _, err := c.ZapLevel(); err != nil {
		return err
	}
	return nil
}

// ZapLevel parses Log.Level.
func (c Config) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func (c *Config) normalize() {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	c.Server.BasePath = strings.TrimSpace(c.Server.BasePath)
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		c.Server.BasePath = "/" + c.Server.BasePath
	}
	c.Server.Renderer = strings.TrimSpace(c.Server.Renderer)
	if c.Server.Renderer == "" {
		c.Server.Renderer = "html"
	}
	c.Theme.Name = strings.TrimSpace(c.Theme.Name)
	if c.Theme.Name == "" {
		c.Theme.Name = theming.DefaultTheme
	}
	c.Theme.Variant = strings.TrimSpace(c.Theme.Variant)
	if c.Theme.Variant == "" {
		c.Theme.Variant = theming.DefaultVariant
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
