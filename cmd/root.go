// Package cmd holds the entry command of the interactive habitat editor.
package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/gohabitat/internal/app"
	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/internal/logging"
	"github.com/philipparndt/gohabitat/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	watchConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "gohabitat-editor [design.json]",
	Short: "Interactive cylindrical habitat layout editor",
	Long: `gohabitat-editor shows a habitat design as a 2D plan with draggable zone
boundaries next to a 3D preview and live metrics. The design file, when
given, is reloaded whenever it changes on disk and is the target of Ctrl+S.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		opts := app.Options{Config: cfg, Logger: logger}
		if len(args) == 1 {
			opts.DesignFile = args[0]
		}
		if watchConfig {
			opts.ConfigFile = configPath
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
	rootCmd.Flags().BoolVar(&watchConfig, "watch-config", false, "reload rule thresholds when the config file changes")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
