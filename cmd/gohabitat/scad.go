package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/philipparndt/gohabitat/pkg/openscad"
	"github.com/philipparndt/gohabitat/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scadOutput   string
	scadShell    bool
	scadSegments int
	scadIncludes []string
	scadRender   string
	scadWatch    bool
)

var scadCmd = &cobra.Command{
	Use:   "scad [design.json]",
	Short: "Generate an OpenSCAD model of the design",
	Long: `Generate OpenSCAD source with one rotate_extrude per zone. With --render the
source is also rendered to STL by the openscad binary. With --watch the design
file and included files are watched and the model is regenerated on change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSCAD,
}

func init() {
	scadCmd.Flags().StringVarP(&scadOutput, "output", "o", "habitat.scad", "output file")
	scadCmd.Flags().BoolVar(&scadShell, "shell", false, "add the usable volume as a ghost cylinder")
	scadCmd.Flags().IntVar(&scadSegments, "segments", 0, "$fn for curved surfaces (default 96)")
	scadCmd.Flags().StringSliceVar(&scadIncludes, "include", nil, "extra .scad files to include")
	scadCmd.Flags().StringVar(&scadRender, "render", "", "render the generated source to this STL file")
	scadCmd.Flags().BoolVarP(&scadWatch, "watch", "w", false, "regenerate when the design or includes change")
	rootCmd.AddCommand(scadCmd)
}

func runSCAD(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := generateSCAD(ctx, cmd, args); err != nil {
		return err
	}
	if !scadWatch {
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("--watch needs a design file")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSCAD(ctx, cmd, args)
}

// generateSCAD writes the OpenSCAD source and renders it when asked to
func generateSCAD(ctx context.Context, cmd *cobra.Command, args []string) error {
	s, err := loadDesign(args)
	if err != nil {
		return err
	}

	opts := openscad.Options{Shell: scadShell, Segments: scadSegments, Includes: scadIncludes}
	if err := openscad.GenerateFile(scadOutput, s, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", scadOutput)

	if scadRender == "" {
		return nil
	}

	start := time.Now()
	renderer := openscad.NewRenderer(filepath.Dir(scadOutput))
	if err := renderer.RenderToSTL(ctx, filepath.Base(scadOutput), scadRender); err != nil {
		return err
	}
	logger.Info("openscad render finished", zap.String("path", scadRender), zap.Duration("took", time.Since(start)))
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s\n", scadRender)
	return nil
}

// scadWatchList is the design file plus every file the generated source
// pulls in, minus the generated source itself
func scadWatchList(designFile string) ([]string, error) {
	renderer := openscad.NewRenderer(filepath.Dir(scadOutput))
	deps, err := renderer.ResolveDependencies(filepath.Base(scadOutput))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	self, err := filepath.Abs(scadOutput)
	if err != nil {
		return nil, err
	}
	files := []string{designFile}
	for _, dep := range deps {
		if dep != self {
			files = append(files, dep)
		}
	}
	return files, nil
}

func watchSCAD(ctx context.Context, cmd *cobra.Command, args []string) error {
	files, err := scadWatchList(args[0])
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(500*time.Millisecond, watcher.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	changed := make(chan string, 1)
	callback := func(path string) {
		select {
		case changed <- path:
		default:
		}
	}
	if err := fw.Watch(files, callback); err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start()

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %d file(s) for changes:\n", len(files))
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", f)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changed:
			logger.Info("file changed", zap.String("path", path))
			if err := generateSCAD(ctx, cmd, args); err != nil {
				// Keep watching; the next save may fix it
				logger.Error("regeneration failed", zap.Error(err))
			}
		}
	}
}
