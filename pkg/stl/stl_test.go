package stl

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultModel(opts Options) *Model {
	return FromScene("habitat", scene.Build(habitat.DefaultState()), opts)
}

func TestFromSceneBlockVolume(t *testing.T) {
	sc := scene.Build(habitat.DefaultState())
	m := FromScene("habitat", sc, Options{})

	assert.Equal(t, len(sc.Blocks)*12, m.TriangleCount())

	expected := 0.0
	for _, b := range sc.Blocks {
		expected += b.Size.X * b.Size.Y * b.Size.Z
	}
	assert.InDelta(t, expected, m.Volume(), 1e-9)
}

func TestFromSceneShellApproximatesCylinder(t *testing.T) {
	sc := scene.Build(habitat.DefaultState())
	shell := &Model{Triangles: sc.Shell}

	exact := geometry.UsableCylinderVolume(3, 8, geometry.DefaultWallThickness)
	assert.InDelta(t, exact, shell.Volume(), exact*0.01)
}

func TestZUpSwapsAxes(t *testing.T) {
	yUp := defaultModel(Options{Shell: true}).BoundingBox()
	zUp := defaultModel(Options{Shell: true, ZUp: true}).BoundingBox()

	assert.InDelta(t, yUp.Size().Y, zUp.Size().Z, 1e-9)
	assert.InDelta(t, yUp.Size().Z, zUp.Size().Y, 1e-9)
	assert.InDelta(t, 0.0, zUp.Min.Z, 1e-9)
}

func TestASCIIRoundTrip(t *testing.T) {
	m := defaultModel(Options{})

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "solid habitat\n"))

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "habitat", back.Name)
	require.Equal(t, m.TriangleCount(), back.TriangleCount())
	for i := range m.Triangles {
		if m.Triangles[i].V2.Distance(back.Triangles[i].V2) > 1e-5 {
			t.Errorf("triangle %d: expected %v, got %v", i, m.Triangles[i].V2, back.Triangles[i].V2)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	m := defaultModel(Options{Shell: true})

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))
	assert.Equal(t, 84+50*m.TriangleCount(), buf.Len())

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, "gohabitat habitat", back.Name)
	require.Equal(t, m.TriangleCount(), back.TriangleCount())
	assert.InDelta(t, m.SurfaceArea(), back.SurfaceArea(), 1e-3)
	assert.Less(t, math.Abs(m.Volume()-back.Volume()), 1e-3)
}

func TestReadMalformedASCII(t *testing.T) {
	input := "solid bad\n facet normal 0 0 1\n outer loop\n vertex 0 0 x\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))

	input = "solid bad\n facet normal 0 0 1\n outer loop\n vertex 0 0 0\n endloop\n endfacet\n"
	_, err = Read(strings.NewReader(input))
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestReadTruncatedBinary(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestSaveAndParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "habitat.stl")
	m := defaultModel(Options{})

	require.NoError(t, Save(path, m, ASCII))
	back, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, m.TriangleCount(), back.TriangleCount())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("ASCII")
	require.NoError(t, err)
	assert.Equal(t, ASCII, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, Binary, f)

	_, err = ParseFormat("obj")
	assert.Error(t, err)
}
