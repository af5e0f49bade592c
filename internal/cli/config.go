package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/humorlint/internal/configloader"
	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/config"
)

// loadConfig resolves the layered configuration for cmd. Values in overrides
// take precedence over every file and environment layer.
func loadConfig(cmd *cobra.Command, global *globalFlags, overrides *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	if overrides == nil {
		overrides = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		overrides.Color = config.ColorMode(global.color)
	}
	if global.debug {
		overrides.LogLevel = "debug"
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        global.config,
		IgnoreSystemConfig:  global.noConfig,
		IgnoreUserConfig:    global.noConfig,
		IgnoreProjectConfig: global.noConfig,
		CLIConfig:           overrides,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logging.SetLevel(loadResult.Config.LogLevel)

	return loadResult.Config, workDir, nil
}
