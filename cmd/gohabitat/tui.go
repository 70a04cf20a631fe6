package main

import (
	"github.com/philipparndt/gohabitat/internal/tui"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [design.json]",
	Short: "Edit a design in the terminal",
	Long: `Open the terminal editor. When a design file is given it is exported back
to the same file with ctrl+s and reloaded when it changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	exportPath := cfg.Export.Filename
	watchPath := ""
	initial := cfg.InitialState()

	if len(args) == 1 {
		exportPath, watchPath = args[0], args[0]
		s, err := loadOrDefault(args[0])
		if err != nil {
			return err
		}
		initial = s
	}

	reducer := cfg.NewReducer()
	store := habitat.NewStore(reducer, initial)

	return tui.Run(tui.Options{
		Store:      store,
		Rules:      cfg.RuleSet(),
		ExportPath: exportPath,
		WatchPath:  watchPath,
		Logger:     logger,
	})
}
