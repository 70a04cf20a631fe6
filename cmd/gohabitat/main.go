package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/internal/logging"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gohabitat",
	Short: "Lay out zones inside a cylindrical habitat",
	Long: `gohabitat inspects, checks and exports interior layouts of cylindrical
space habitats. A design is a JSON document holding the envelope, the crew
and a set of angular zones.

Commands that take an optional design file fall back to the starter design
built from the configuration when none is given.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		level := loaded.Logging.Level
		if verbose {
			level = "debug"
		}
		l, err := logging.New(level, loaded.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, logger = loaded, l
		logger.Debug("configuration loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadDesign reads the design named by the first argument, or returns the
// configured starter design when there is none
func loadDesign(args []string) (habitat.State, error) {
	if len(args) == 0 || args[0] == "" {
		return cfg.InitialState(), nil
	}
	s, err := habitat.LoadFile(args[0])
	if err != nil {
		return habitat.State{}, err
	}
	logger.Debug("design loaded", zap.String("path", args[0]), zap.Int("zones", len(s.Zones)))
	return s, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
