// Package config loads gohabitat.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "gohabitat.yaml"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of gohabitat.yaml
type Config struct {
	Envelope EnvelopeConfig `yaml:"envelope"`
	Mission  MissionConfig  `yaml:"mission"`
	Rules    RulesConfig    `yaml:"rules"`
	Editor   EditorConfig   `yaml:"editor"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// EnvelopeConfig is the starting envelope for new designs
type EnvelopeConfig struct {
	RadiusM        float64 `yaml:"radius_m"`
	HeightM        float64 `yaml:"height_m"`
	WallThicknessM float64 `yaml:"wall_thickness_m"`
}

// MissionConfig is the starting mission for new designs
type MissionConfig struct {
	CrewSize    int `yaml:"crew_size"`
	MissionDays int `yaml:"mission_days"`
}

// RulesConfig tunes the habitability checks
type RulesConfig struct {
	SleepAreaPerCrewM2 float64 `yaml:"sleep_area_per_crew_m2"`
}

// EditorConfig configures the interactive editors
type EditorConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"` // 0 fits the envelope to the window
	Palette        string  `yaml:"palette"`          // fixed, generated
	IDs            string  `yaml:"ids"`              // counter, uuid
}

// ExportConfig configures design export
type ExportConfig struct {
	Filename string `yaml:"filename"`
}

// LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Palette and ID generator choices
const (
	PaletteFixed     = "fixed"
	PaletteGenerated = "generated"
	IDsCounter       = "counter"
	IDsUUID          = "uuid"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	d := habitat.DefaultState()
	return &Config{
		Envelope: EnvelopeConfig{
			RadiusM:        d.Envelope.RadiusM,
			HeightM:        d.Envelope.HeightM,
			WallThicknessM: d.Envelope.WallThicknessM,
		},
		Mission: MissionConfig{
			CrewSize:    d.Mission.CrewSize,
			MissionDays: d.Mission.MissionDays,
		},
		Rules: RulesConfig{
			SleepAreaPerCrewM2: habitat.DefaultSleepAreaPerCrewM2,
		},
		Editor: EditorConfig{
			Width:   1280,
			Height:  800,
			Palette: PaletteFixed,
			IDs:     IDsCounter,
		},
		Export: ExportConfig{
			Filename: habitat.DefaultExportFilename,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets GOHABITAT_LOG_LEVEL override the file
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("GOHABITAT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate clamps numeric ranges in place and rejects unknown choices
func (c *Config) Validate() error {
	env := habitat.Envelope{
		RadiusM:        c.Envelope.RadiusM,
		HeightM:        c.Envelope.HeightM,
		WallThicknessM: c.Envelope.WallThicknessM,
	}.Clamped()
	c.Envelope = EnvelopeConfig{RadiusM: env.RadiusM, HeightM: env.HeightM, WallThicknessM: env.WallThicknessM}

	m := habitat.Mission{CrewSize: c.Mission.CrewSize, MissionDays: c.Mission.MissionDays}.Clamped()
	c.Mission = MissionConfig{CrewSize: m.CrewSize, MissionDays: m.MissionDays}

	if c.Rules.SleepAreaPerCrewM2 <= 0 {
		c.Rules.SleepAreaPerCrewM2 = habitat.DefaultSleepAreaPerCrewM2
	}

	c.Editor.Width = max(c.Editor.Width, 640)
	c.Editor.Height = max(c.Editor.Height, 480)
	if c.Editor.PixelsPerMeter < 0 {
		c.Editor.PixelsPerMeter = 0
	}

	var errs []error
	c.Editor.Palette = strings.ToLower(c.Editor.Palette)
	if c.Editor.Palette != PaletteFixed && c.Editor.Palette != PaletteGenerated {
		errs = append(errs, fmt.Errorf("%w: editor.palette %q (want fixed or generated)", ErrInvalidConfig, c.Editor.Palette))
	}
	c.Editor.IDs = strings.ToLower(c.Editor.IDs)
	if c.Editor.IDs != IDsCounter && c.Editor.IDs != IDsUUID {
		errs = append(errs, fmt.Errorf("%w: editor.ids %q (want counter or uuid)", ErrInvalidConfig, c.Editor.IDs))
	}
	if strings.TrimSpace(c.Export.Filename) == "" {
		c.Export.Filename = habitat.DefaultExportFilename
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want json or console)", ErrInvalidConfig, c.Logging.Format))
	}

	return errors.Join(errs...)
}

// InitialState is the default design with the configured envelope and mission
func (c *Config) InitialState() habitat.State {
	s := habitat.DefaultState()
	s.Envelope = habitat.Envelope{
		RadiusM:        c.Envelope.RadiusM,
		HeightM:        c.Envelope.HeightM,
		WallThicknessM: c.Envelope.WallThicknessM,
	}.Clamped()
	s.Mission = habitat.Mission{CrewSize: c.Mission.CrewSize, MissionDays: c.Mission.MissionDays}.Clamped()
	return s
}

// NewReducer builds a reducer with the configured palette, ID scheme and defaults
func (c *Config) NewReducer() *habitat.Reducer {
	var palette habitat.Palette = habitat.DefaultPalette
	if c.Editor.Palette == PaletteGenerated {
		palette = habitat.NewGeneratedPalette()
	}

	var ids habitat.IDGenerator = habitat.NewCounterIDs("zone-")
	if c.Editor.IDs == IDsUUID {
		ids = habitat.UUIDs{}
	}

	return habitat.NewReducer(
		habitat.WithPalette(palette),
		habitat.WithIDs(ids),
		habitat.WithDefaults(c.InitialState()),
	)
}

// RuleSet returns the habitability rules with configured thresholds
func (c *Config) RuleSet() []habitat.Rule {
	return []habitat.Rule{habitat.SleepAreaRule{PerCrewM2: c.Rules.SleepAreaPerCrewM2}}
}
