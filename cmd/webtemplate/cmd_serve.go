package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-webtemplate/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the HTTP server and blocks until interrupted.

Routes (relative to server.base_path):
  GET /                       first page (?format=text for plain text)
  GET /api/first-page-items   items as JSON
  GET /openapi.json           OpenAPI document
  GET /assets/                stylesheet`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("routes mounted", zap.Any("paths", srv.Paths()))
	return srv.Run(ctx)
}
