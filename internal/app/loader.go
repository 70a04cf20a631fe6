package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/watcher"
	"go.uber.org/zap"
)

// selfWriteGrace hides watcher events caused by our own exports
const selfWriteGrace = 1500 * time.Millisecond

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// setupFileWatcher watches the design file and, when given, the config file
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, watcher.WithLogger(app.Logger))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	var filesToWatch []string
	if app.FileWatch.designFile != "" {
		filesToWatch = append(filesToWatch, app.FileWatch.designFile)
	}
	if app.FileWatch.configFile != "" {
		filesToWatch = append(filesToWatch, app.FileWatch.configFile)
	}

	// Runs on the watcher goroutine; the main loop picks the paths up
	callback := func(changedFile string) {
		app.FileWatch.mu.Lock()
		app.FileWatch.pending = append(app.FileWatch.pending, changedFile)
		app.FileWatch.mu.Unlock()
	}

	if err := fw.Watch(filesToWatch, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.Logger.Info("watching for changes", zap.Strings("files", filesToWatch))
	return nil
}

// applyReload handles changed files and applies a design loaded in the
// background. Must be called on the main thread.
func (app *App) applyReload() {
	app.FileWatch.mu.Lock()
	pending := app.FileWatch.pending
	app.FileWatch.pending = nil
	loaded, loadErr := app.FileWatch.loaded, app.FileWatch.loadErr
	app.FileWatch.loaded, app.FileWatch.loadErr = nil, nil
	app.FileWatch.mu.Unlock()

	if loadErr != nil {
		app.setStatus("Reload failed: %v", loadErr)
	}
	if loaded != nil {
		app.Design.store.Dispatch(habitat.LoadDesign{Design: *loaded})
		app.setStatus("Reloaded %s", app.FileWatch.designFile)
	}

	for _, path := range pending {
		switch {
		case sameFile(path, app.FileWatch.configFile):
			app.reloadConfig()
		case sameFile(path, app.FileWatch.designFile):
			if time.Now().Before(app.FileWatch.ignoreUntil) {
				continue
			}
			app.reloadDesign()
		}
	}
}

// reloadDesign reads the design file in the background
func (app *App) reloadDesign() {
	app.FileWatch.mu.Lock()
	if app.FileWatch.isLoading {
		app.FileWatch.mu.Unlock()
		return
	}
	app.FileWatch.isLoading = true
	app.FileWatch.loadStart = time.Now()
	app.FileWatch.mu.Unlock()

	path := app.FileWatch.designFile
	go func() {
		s, err := habitat.LoadFile(path)

		app.FileWatch.mu.Lock()
		defer app.FileWatch.mu.Unlock()
		app.FileWatch.isLoading = false
		if err != nil {
			app.FileWatch.loadErr = err
			return
		}
		app.FileWatch.loaded = &s
	}()
}

// reloadConfig re-reads rule thresholds from the config file. Envelope and
// mission stay with the design being edited.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.FileWatch.configFile)
	if err != nil {
		app.setStatus("Config reload failed: %v", err)
		return
	}
	app.Config.Rules = cfg.Rules
	app.Design.rules = app.Config.RuleSet()
	app.Design.dirty = true
	app.setStatus("Reloaded %s", app.FileWatch.configFile)
}

// exportDesign writes the current design as JSON
func (app *App) exportDesign() {
	path := app.FileWatch.designFile
	app.FileWatch.ignoreUntil = time.Now().Add(selfWriteGrace)
	if err := habitat.ExportFile(path, app.Design.store.Snapshot()); err != nil {
		app.Logger.Error("export failed", zap.Error(err))
		app.setStatus("Export failed: %v", err)
		return
	}
	app.setStatus("Exported %s", path)
}
