package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-webtemplate/components/firstpage"
	"github.com/goliatone/go-webtemplate/internal/prompt"
	"github.com/goliatone/go-webtemplate/pkg/config"
)

var initForce bool

// newPromptDriver is swapped in tests.
var newPromptDriver = func() prompt.Driver { return prompt.NewSurveyDriver() }

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	driver := newPromptDriver()

	defaults, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !initForce {
		overwrite, err := driver.Confirm(ctx, prompt.ConfirmConfig{
			Message: fmt.Sprintf("%s exists. Overwrite?", configPath),
		})
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted, config unchanged")
			return nil
		}
	}

	registry, err := firstpage.DefaultRegistry()
	if err != nil {
		return err
	}
	cfg, err := prompt.ConfigWizard(ctx, driver, defaults, registry.List())
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted, config unchanged")
		return nil
	}
	if err != nil {
		return err
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
