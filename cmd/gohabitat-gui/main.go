package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/internal/logging"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/watcher"
	"github.com/philipparndt/gohabitat/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "gohabitat-gui [design.json]",
	Short:   "Desktop habitat layout editor",
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reducer := cfg.NewReducer()
	initial := reducer.Defaults()
	designPath := cfg.Export.Filename
	if len(args) == 1 {
		designPath = args[0]
		s, err := habitat.LoadFile(designPath)
		switch {
		case err == nil:
			initial = reducer.Reduce(initial, habitat.LoadDesign{Design: s})
		case isNotExist(err):
			logger.Info("design file does not exist yet, starting from defaults", zap.String("path", designPath))
		default:
			return err
		}
	}

	a := app.New()
	w := a.NewWindow("gohabitat - Habitat Layout")

	editor := newEditor(w, habitat.NewStore(reducer, initial), cfg.RuleSet(), designPath, logger)
	w.SetContent(editor.build())

	fw, err := watcher.NewFileWatcher(500*time.Millisecond, watcher.WithLogger(logger))
	if err != nil {
		logger.Warn("auto-reload not available", zap.Error(err))
	} else {
		defer fw.Close()
		if err := fw.Watch([]string{designPath}, editor.reloadFromDisk); err != nil {
			logger.Warn("auto-reload not available", zap.Error(err))
		}
		fw.Start()
	}

	w.Resize(fyne.NewSize(float32(cfg.Editor.Width), float32(cfg.Editor.Height)))
	w.ShowAndRun()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
