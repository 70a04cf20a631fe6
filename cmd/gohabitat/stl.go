package main

import (
	"fmt"

	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/philipparndt/gohabitat/pkg/stl"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	stlOutput string
	stlFormat string
	stlShell  bool
	stlZUp    bool
	stlStats  bool
)

var stlCmd = &cobra.Command{
	Use:   "stl [design.json]",
	Short: "Export the zone blocks (and optionally the shell) as an STL mesh",
	Long: `Export the 3D preview as an STL mesh in meters. The preview frame is Y-up;
use --zup for slicers and CAD tools that expect Z-up.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSTL,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.stl>",
	Short: "Display size, volume and edge statistics of an STL file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	stlCmd.Flags().StringVarP(&stlOutput, "output", "o", "habitat.stl", "output file")
	stlCmd.Flags().StringVarP(&stlFormat, "format", "f", "binary", "binary or ascii")
	stlCmd.Flags().BoolVar(&stlShell, "shell", false, "include the usable-volume cylinder")
	stlCmd.Flags().BoolVar(&stlZUp, "zup", false, "rotate into a Z-up frame")
	stlCmd.Flags().BoolVar(&stlStats, "stats", false, "print mesh statistics")
	rootCmd.AddCommand(stlCmd, inspectCmd)
}

func runSTL(cmd *cobra.Command, args []string) error {
	format, err := stl.ParseFormat(stlFormat)
	if err != nil {
		return err
	}
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	model := stl.FromScene("habitat", scene.Build(s), stl.Options{Shell: stlShell, ZUp: stlZUp})
	if err := stl.Save(stlOutput, model, format); err != nil {
		return err
	}
	logger.Info("mesh exported",
		zap.String("path", stlOutput),
		zap.Int("triangles", model.TriangleCount()),
		zap.Stringer("format", format))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s (%d triangles)\n", stlOutput, model.TriangleCount())
	if stlStats {
		fmt.Fprintln(out)
		return analysis.WriteSections(out, analysis.AnalyzeModel(model).Section("Mesh"))
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	model, err := stl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "STL File Information")
	fmt.Fprintln(out, "====================")
	if model.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", model.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", args[0])
	return analysis.WriteSections(out, analysis.AnalyzeModel(model).Section("Mesh"))
}
