package main

import (
	"fmt"
	"opdemo/internal/config"
	"opdemo/internal/logging"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var forceInit bool

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the opdemo config file",
	// Replaces the root hook: the file at --config may be missing or broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.DefaultConfig()
		var err error
		logger, err = logging.New(cfg.Logging, verbose, zapcore.AddSync(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

// configInitCmd writes the default config to --config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to the --config path",
	Long: `Writes a config file holding the stock operands and logging settings.
An existing file is left alone unless --force is given.

Example:
  opdemo config init --config ./opdemo.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !forceInit {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	activeLogger().Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
