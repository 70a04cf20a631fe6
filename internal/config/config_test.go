package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Envelope.RadiusM != 3.0 {
		t.Errorf("expected RadiusM=3, got %v", cfg.Envelope.RadiusM)
	}
	if cfg.Mission.CrewSize != 4 {
		t.Errorf("expected CrewSize=4, got %d", cfg.Mission.CrewSize)
	}
	if cfg.Export.Filename != "habitat_design.json" {
		t.Errorf("expected Filename=habitat_design.json, got %s", cfg.Export.Filename)
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("GOHABITAT_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("envelope:\n  radius_m: 4.5\nmission:\n  crew_size: 6\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.Envelope.RadiusM)
	assert.Equal(t, 8.0, cfg.Envelope.HeightM)
	assert.Equal(t, 6, cfg.Mission.CrewSize)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultPath)

	cfg := DefaultConfig()
	cfg.Editor.Palette = PaletteGenerated
	cfg.Editor.IDs = IDsUUID
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateClampsRanges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Envelope.RadiusM = 100
	cfg.Envelope.HeightM = 0
	cfg.Mission.CrewSize = -3
	cfg.Rules.SleepAreaPerCrewM2 = 0
	cfg.Editor.Width = 10
	cfg.Export.Filename = " "

	require.NoError(t, cfg.Validate())
	assert.Equal(t, habitat.MaxRadiusM, cfg.Envelope.RadiusM)
	assert.Equal(t, habitat.MinHeightM, cfg.Envelope.HeightM)
	assert.Equal(t, 1, cfg.Mission.CrewSize)
	assert.Equal(t, habitat.DefaultSleepAreaPerCrewM2, cfg.Rules.SleepAreaPerCrewM2)
	assert.Equal(t, 640, cfg.Editor.Width)
	assert.Equal(t, habitat.DefaultExportFilename, cfg.Export.Filename)
}

func TestValidateRejectsUnknownChoices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.Palette = "rainbow"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "editor.palette")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("envelope: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("GOHABITAT_LOG_LEVEL", "debug")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level, "override applies without a file")

	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNewReducerUsesConfiguredGenerators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Envelope.RadiusM = 5
	cfg.Mission.CrewSize = 2

	r := cfg.NewReducer()
	s := r.Reduce(cfg.InitialState(), habitat.AddZone{Name: "Galley", Purpose: habitat.PurposeGalley})
	assert.Equal(t, "zone-1", s.LastAddedID)
	assert.Equal(t, 5.0, s.Envelope.RadiusM)

	reset := r.Reduce(s, habitat.Reset{})
	assert.Equal(t, 2, reset.Mission.CrewSize)
	assert.Len(t, reset.Zones, 4)

	cfg.Editor.IDs = IDsUUID
	s = cfg.NewReducer().Reduce(cfg.InitialState(), habitat.AddZone{})
	assert.Len(t, s.LastAddedID, 36)

	rules := cfg.RuleSet()
	require.Len(t, rules, 1)
	assert.Equal(t, habitat.SleepAreaRule{PerCrewM2: 3}, rules[0])
}
