package main

import (
	"opdemo/internal/logging"
	"opdemo/internal/program"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reportCmd prints what each step computed
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every step silently and print the computed values as YAML",
	Long: `Runs the program with routine output discarded and prints the values the
routines computed: arithmetic and bitwise results, the even numbers printed by
control_flow and the squares array.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.For(activeLogger(), logging.CategoryReport)

	ctx, cancel := runContext(cmd)
	defer cancel()

	report, err := program.Silent(ctx, program.Default(log), settingsFromConfig(activeConfig()))
	if err != nil {
		return err
	}
	log.Debug("report collected", zap.Int("steps", len(report.Ran)))
	return report.WriteYAML(cmd.OutOrStdout())
}
