package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNonCompliant = errors.New("design is non-compliant")

var checkCmd = &cobra.Command{
	Use:   "check [design.json]",
	Short: "Run habitability rules and fail when any rule fails",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	results := habitat.RunChecks(s, cfg.RuleSet()...)
	for _, res := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Rule, analysis.FormatResult(res))
		logger.Debug("rule evaluated", zap.String("rule", res.Rule), zap.Bool("passed", res.Passed))
	}
	if !habitat.AllPassed(results) {
		return errNonCompliant
	}
	return nil
}
