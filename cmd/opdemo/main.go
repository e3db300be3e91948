package main

import (
	"context"
	"fmt"
	"opdemo/internal/config"
	"opdemo/internal/logging"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the full program when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "opdemo",
	Short: "Run the arithmetic, bitwise, control flow, memory and output routines",
	Long: `opdemo runs five small routines in a fixed order:
  1. arithmetic:   sum, difference, product, quotient
  2. bitwise:      AND, OR, XOR, shifts
  3. control_flow: print the even numbers below 10
  4. memory:       fill an array with squares
  5. output:       print a greeting

Only control_flow and output write to standard output.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg = loaded

		logger, err = logging.New(cfg.Logging, verbose, zapcore.AddSync(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.For(logger, logging.CategoryBoot).Debug("config loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgram(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Run timeout")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRun is skipped when RunE fails.
		if logger != nil {
			_ = logger.Sync()
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runContext bounds a command by --timeout.
func runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(base)
	}
	return context.WithTimeout(base, timeout)
}

// activeConfig returns the loaded config, or the defaults when a command
// body is invoked without PersistentPreRunE.
func activeConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func activeLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
