package main

import (
	"fmt"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [design.json]",
	Short: "Write the design document as JSON",
	Long: `Write the design as the JSON export document. The output file defaults
to export.filename from the configuration; use "-" for standard output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default from config, - for stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = cfg.Export.Filename
	}
	if out == "-" {
		return habitat.WriteDocument(cmd.OutOrStdout(), s)
	}

	if err := habitat.ExportFile(out, s); err != nil {
		return err
	}
	logger.Info("design exported", zap.String("path", out), zap.Int("zones", len(s.Zones)))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", out)
	return nil
}
