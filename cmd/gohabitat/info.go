package main

import (
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [design.json]",
	Short: "Display envelope, zone and rule information for a design",
	Long:  "Show the usable envelope, crew, per-zone area and volume, area by purpose and rule results.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadDesign(args)
	if err != nil {
		return err
	}
	report := analysis.Analyze(s, cfg.RuleSet()...)
	return report.WriteText(cmd.OutOrStdout(), "Habitat Design")
}
