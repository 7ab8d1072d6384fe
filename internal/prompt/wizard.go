package prompt

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/goliatone/go-webtemplate/pkg/config"
)

var variants = []string{"light", "dark"}

// ConfigWizard asks for the listen address, base path, renderer and theme,
// starting from defaults. renderers lists the names the user may pick.
func ConfigWizard(ctx context.Context, driver Driver, defaults config.Config, renderers []string) (config.Config, error) {
	if driver == nil {
		return config.Config{}, fmt.Errorf("prompt: driver is required")
	}
	cfg := defaults

	addr, err := driver.Input(ctx, InputConfig{
		Message:   "Listen address",
		Default:   defaults.Server.Addr,
		Help:      "host:port the server binds to, e.g. :8080",
		Validator: validateAddr,
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Server.Addr = addr

	base, err := driver.Input(ctx, InputConfig{
		Message: "Base path",
		Default: defaults.Server.BasePath,
		Help:    "URL prefix every route is mounted under",
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Server.BasePath = base

	if len(renderers) > 0 {
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      "Page renderer",
			Options:      renderers,
			DefaultIndex: indexOf(renderers, defaults.Server.Renderer),
		})
		if err != nil {
			return config.Config{}, err
		}
		if idx >= 0 {
			cfg.Server.Renderer = renderers[idx]
		}
	}

	name, err := driver.Input(ctx, InputConfig{
		Message: "Theme name",
		Default: defaults.Theme.Name,
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Theme.Name = name

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Theme variant",
		Options:      variants,
		DefaultIndex: indexOf(variants, defaults.Theme.Variant),
	})
	if err != nil {
		return config.Config{}, err
	}
	if idx >= 0 {
		cfg.Theme.Variant = variants[idx]
	}

	debug, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Enable debug logging?",
		Default: defaults.Log.Level == "debug",
	})
	if err != nil {
		return config.Config{}, err
	}
	switch {
	case debug:
		cfg.Log.Level = "debug"
	case cfg.Log.Level == "debug":
		cfg.Log.Level = "info"
	}

	return config.New(func(c *config.Config) { *c = cfg }), nil
}

func validateAddr(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(value); err != nil {
		return fmt.Errorf("expected host:port: %w", err)
	}
	return nil
}
