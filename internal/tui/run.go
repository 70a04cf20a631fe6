package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/watcher"
	"go.uber.org/zap"
)

// Options configures a terminal editor session
type Options struct {
	Store      *habitat.Store
	Rules      []habitat.Rule
	ExportPath string
	WatchPath  string // reloaded into the store when it changes on disk
	Logger     *zap.Logger
}

// Run starts the terminal editor and blocks until the user quits
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := tea.NewProgram(New(opts.Store, opts.Rules, opts.ExportPath), tea.WithAltScreen())

	if opts.WatchPath != "" {
		fw, err := watcher.NewFileWatcher(500*time.Millisecond, watcher.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer fw.Close()

		path := opts.WatchPath
		if err := fw.Watch([]string{path}, func(string) {
			s, err := habitat.LoadFile(path)
			p.Send(reloadMsg{state: s, err: err})
		}); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		fw.Start()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal editor failed: %w", err)
	}
	return nil
}
