package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/stl"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestCmd resets the globals set by the root command and returns a
// command whose output is captured
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cfg = config.DefaultConfig()
	logger = zap.NewNop()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestInfoDefaultDesign(t *testing.T) {
	cmd, out := newTestCmd(t)

	require.NoError(t, runInfo(cmd, nil))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Habitat Design\n==============\n"))
	assert.Contains(t, text, "0° to 90°, 6.83 m², 54.34 m³ (sleep)")
	assert.Contains(t, text, "Result: non-compliant")
}

func TestCheck(t *testing.T) {
	cmd, out := newTestCmd(t)

	err := runCheck(cmd, nil)
	assert.True(t, errors.Is(err, errNonCompliant))
	assert.Contains(t, out.String(), "sleep-area-per-crew: FAIL")

	path := filepath.Join(t.TempDir(), "design.json")
	_, err = editDesign(path, habitat.SetMission{CrewSize: 2, MissionDays: 30})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, runCheck(cmd, []string{path}))
	assert.Contains(t, out.String(), "PASS")
}

func TestLoadDesignMissingFile(t *testing.T) {
	newTestCmd(t)
	_, err := loadDesign([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.True(t, isNotExist(err))
}

func TestExport(t *testing.T) {
	cmd, out := newTestCmd(t)
	defer func() { exportOutput = "" }()

	exportOutput = "-"
	require.NoError(t, runExport(cmd, nil))
	doc, err := habitat.ReadDocument(out)
	require.NoError(t, err)
	assert.Len(t, doc.Zones, 4)

	exportOutput = filepath.Join(t.TempDir(), "out", "design.json")
	require.NoError(t, runExport(cmd, nil))
	s, err := habitat.LoadFile(exportOutput)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Envelope.RadiusM)
}

func TestZonesEditing(t *testing.T) {
	cmd, out := newTestCmd(t)
	defer func() { zoneName, zonePurpose, levels = "", "other", 2 }()
	path := filepath.Join(t.TempDir(), "design.json")

	zoneName, zonePurpose = "Galley", "galley"
	require.NoError(t, runZonesAdd(cmd, []string{path}))
	assert.Contains(t, out.String(), "Added zone zone-1")

	s, err := habitat.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, s.Zones, 5)
	assert.Equal(t, habitat.PurposeGalley, s.Zones[4].Purpose)

	levels = 2
	require.NoError(t, runZonesPartition(cmd, []string{path}))
	require.NoError(t, runZonesRemove(cmd, []string{path, "work"}))
	assert.Error(t, runZonesRemove(cmd, []string{path, "work"}), "already removed")

	out.Reset()
	require.NoError(t, runZonesList(cmd, []string{path}))
	list := out.String()
	assert.Contains(t, list, "Galley")
	assert.NotContains(t, list, "Work")
	lines := strings.Split(strings.TrimSpace(list), "\n")
	assert.Len(t, lines, 5, "header plus four zones")

	zonePurpose = "pantry"
	assert.Error(t, runZonesAdd(cmd, []string{path}))
	levels = 0
	assert.Error(t, runZonesPartition(cmd, []string{path}))
}

func TestZonesSet(t *testing.T) {
	_, out := newTestCmd(t)
	path := filepath.Join(t.TempDir(), "design.json")
	zonesSetCmd.SetOut(out)

	require.Error(t, runZonesSet(zonesSetCmd, []string{path, "sleep"}), "no flags given")

	require.NoError(t, zonesSetCmd.Flags().Set("start", "300"))
	require.NoError(t, zonesSetCmd.Flags().Set("end", "350"))
	require.NoError(t, zonesSetCmd.Flags().Set("name", "Bunks"))
	require.NoError(t, runZonesSet(zonesSetCmd, []string{path, "sleep"}))
	assert.Contains(t, out.String(), "Bunks (sleep) 300° to 350°")

	// Moving a zone below its old start keeps the requested end
	require.NoError(t, zonesSetCmd.Flags().Set("name", "Life Support"))
	require.NoError(t, zonesSetCmd.Flags().Set("start", "10"))
	require.NoError(t, zonesSetCmd.Flags().Set("end", "50"))
	require.NoError(t, runZonesSet(zonesSetCmd, []string{path, "lifesupport"}))
	assert.Contains(t, out.String(), "Life Support (lifesupport) 10° to 50°")

	s, err := habitat.LoadFile(path)
	require.NoError(t, err)
	z, _, ok := s.Zone("lifesupport")
	require.True(t, ok)
	assert.Equal(t, 10.0, z.Start)
	assert.Equal(t, 50.0, z.End)

	assert.Error(t, runZonesSet(zonesSetCmd, []string{path, "missing"}))
}

func TestEnvelope(t *testing.T) {
	_, out := newTestCmd(t)
	path := filepath.Join(t.TempDir(), "design.json")
	envelopeCmd.SetOut(out)

	require.NoError(t, envelopeCmd.Flags().Set("radius", "50"))
	require.NoError(t, envelopeCmd.Flags().Set("crew", "6"))
	require.NoError(t, runEnvelope(envelopeCmd, []string{path}))

	s, err := habitat.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, habitat.MaxRadiusM, s.Envelope.RadiusM, "radius is clamped")
	assert.Equal(t, 8.0, s.Envelope.HeightM)
	assert.Equal(t, 6, s.Mission.CrewSize)
	assert.Equal(t, 180, s.Mission.MissionDays)
}

func TestRender(t *testing.T) {
	cmd, _ := newTestCmd(t)
	dir := t.TempDir()
	renderWidth, renderHeight = 200, 160

	planOutput = filepath.Join(dir, "plan.svg")
	require.NoError(t, runRenderPlan(cmd, nil))
	svg, err := os.ReadFile(planOutput)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	planOutput = filepath.Join(dir, "plan.png")
	require.NoError(t, runRenderPlan(cmd, nil))
	assert.FileExists(t, planOutput)

	previewOutput = filepath.Join(dir, "preview.png")
	require.NoError(t, runRenderPreview(cmd, nil))
	assert.FileExists(t, previewOutput)

	renderWidth = 4
	assert.Error(t, runRenderPlan(cmd, nil))
}

func TestSTLExportAndInspect(t *testing.T) {
	cmd, out := newTestCmd(t)
	defer func() { stlFormat, stlStats = "binary", false }()

	stlOutput = filepath.Join(t.TempDir(), "habitat.stl")
	stlFormat, stlStats = "ascii", true
	require.NoError(t, runSTL(cmd, nil))
	assert.Contains(t, out.String(), "(48 triangles)")
	assert.Contains(t, out.String(), "Mesh:")

	m, err := stl.Parse(stlOutput)
	require.NoError(t, err)
	assert.Equal(t, 48, m.TriangleCount())

	out.Reset()
	require.NoError(t, runInspect(cmd, []string{stlOutput}))
	assert.Contains(t, out.String(), "Name: habitat")
	assert.Contains(t, out.String(), "Triangles:")

	stlFormat = "obj"
	assert.Error(t, runSTL(cmd, nil))
}

func TestSCADGenerateAndWatchList(t *testing.T) {
	cmd, out := newTestCmd(t)
	defer func() { scadIncludes = nil }()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "fixtures.scad"), []byte("module bunk() {}\n"), 0o644))
	scadOutput = filepath.Join(dir, "habitat.scad")
	scadIncludes = []string{"fixtures.scad"}

	require.NoError(t, generateSCAD(cmd.Context(), cmd, nil))
	assert.Contains(t, out.String(), "Wrote ")

	src, err := os.ReadFile(scadOutput)
	require.NoError(t, err)
	assert.Contains(t, string(src), "include <fixtures.scad>")
	assert.Contains(t, string(src), "zone(")

	design := filepath.Join(dir, "design.json")
	files, err := scadWatchList(design)
	require.NoError(t, err)
	assert.Equal(t, []string{design, filepath.Join(dir, "fixtures.scad")}, files)
}
