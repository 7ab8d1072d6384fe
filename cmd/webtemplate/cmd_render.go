package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-webtemplate/components/firstpage"
	"github.com/goliatone/go-webtemplate/internal/server"
	"github.com/goliatone/go-webtemplate/pkg/render"
	"github.com/goliatone/go-webtemplate/pkg/renderers/html"
	"github.com/goliatone/go-webtemplate/pkg/theming"
	"github.com/goliatone/go-webtemplate/pkg/viewmodel/home"
)

var (
	renderName   string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the first page to stdout or a file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderName, "renderer", "r", "text", "renderer to use (html, text)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (stdout if empty)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	assets := server.AssetsPath(cfg.Server.BasePath)
	registry, err := firstpage.DefaultRegistry(html.WithAssetBase(assets))
	if err != nil {
		return err
	}
	renderer, err := registry.Get(renderName)
	if err != nil {
		return fmt.Errorf("%w (have %v)", err, registry.List())
	}

	selector := theming.NewStaticSelector(cfg.Theme.Name, cfg.Theme.Variant, cfg.Theme.Tokens)
	themeCfg, err := theming.Resolve(selector, cfg.Theme.Name, cfg.Theme.Variant, assets, cfg.Theme.Partials)
	if err != nil {
		return err
	}

	out, err := renderer.Render(cmd.Context(), home.NewFirstPageViewModel().Page(), render.RenderOptions{Theme: themeCfg})
	if err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	if renderOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("page written", zap.String("path", renderOutput), zap.String("renderer", renderer.Name()))
	return nil
}
