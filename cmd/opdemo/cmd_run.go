package main

import (
	"opdemo/internal/logging"
	"opdemo/internal/program"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd runs selected steps
var runCmd = &cobra.Command{
	Use:   "run [step...]",
	Short: "Run the named steps (default: steps from config, else all)",
	Long: `Runs the named steps in their canonical order, whatever order they are given in.

Example:
  opdemo run control_flow output`,
	RunE: runProgram,
}

// runProgram runs args, falling back to the configured step list.
func runProgram(cmd *cobra.Command, args []string) error {
	c := activeConfig()
	names := args
	if len(names) == 0 {
		names = c.Steps
	}

	log, _ := logging.WithRun(logging.For(activeLogger(), logging.CategoryProgram))
	p, err := program.Default(log).Select(names...)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(cmd)
	defer cancel()

	log.Info("run start", zap.Strings("steps", names))
	report, err := p.Run(ctx, cmd.OutOrStdout(), settingsFromConfig(c))
	if err != nil {
		return err
	}
	log.Info("run done", zap.Strings("ran", report.Ran))
	return nil
}
