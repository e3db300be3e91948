package main

import (
	"fmt"
	"opdemo/internal/program"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listCmd lists the available steps
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the steps in run order",
	Args:  cobra.NoArgs,
	RunE:  listSteps,
}

func listSteps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	r := lipgloss.NewRenderer(out)
	header := r.NewStyle().Bold(true)
	name := r.NewStyle().Width(14)

	fmt.Fprintln(out, header.Render(name.Render("STEP")+"DESCRIPTION"))
	for _, s := range program.DefaultSteps() {
		fmt.Fprintln(out, name.Render(s.Name)+s.Description)
	}
	return nil
}
