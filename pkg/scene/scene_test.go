package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDefaultScene(t *testing.T) {
	sc := Build(habitat.DefaultState())

	assert.InDelta(t, 2.95, sc.UsableRadiusM, 1e-12)
	assert.InDelta(t, 7.9, sc.UsableHeightM, 1e-12)
	require.Len(t, sc.Blocks, 4)
	require.Len(t, sc.Labels, 4)
	assert.Len(t, sc.Shell, ShellSegments*4)
}

func TestLabelsSitOutsideShellAtMidAngle(t *testing.T) {
	s := habitat.DefaultState()
	sc := Build(s)

	for i, l := range sc.Labels {
		z := s.Zones[i]
		r := math.Hypot(l.Position.X, l.Position.Z)
		assert.InDelta(t, 2.95*LabelRadiusFrac, r, 1e-9, l.ZoneID)
		assert.Equal(t, z.Name, l.Text)

		x, y := geometry.AngleToPoint(z.MidAngle(), 1, 1)
		assert.InDelta(t, x, l.Position.X/r, 1e-9)
		assert.InDelta(t, y, l.Position.Z/r, 1e-9)
	}

	// Sleep spans 0°–90°, so its label is up-right in the plan: +X, -Z
	sleep := sc.Labels[0]
	assert.Greater(t, sleep.Position.X, 0.0)
	assert.Less(t, sleep.Position.Z, 0.0)
}

func TestFacingYawPointsOutward(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 135, 180, 270, 359} {
		front := geometry.NewVector3(0, 0, 1).RotateY(geometry.DegToRad(FacingYaw(angle)))
		out := Polar(angle, 1, 0)
		if front.Distance(out) > 1e-9 {
			t.Errorf("FacingYaw(%v) failed: expected %v, got %v", angle, out, front)
		}
	}
}

func TestAxialRanksStackBlocks(t *testing.T) {
	r := habitat.NewReducer()
	s := r.Reduce(habitat.DefaultState(), habitat.AutoPartition{N: 2})
	sc := Build(s)

	half := sc.UsableHeightM / 2
	assert.InDelta(t, half/2, sc.Blocks[0].Center.Y, 1e-9)
	assert.InDelta(t, half+half/2, sc.Blocks[1].Center.Y, 1e-9)
	assert.InDelta(t, half*BlockFillFrac, sc.Blocks[0].Size.Y, 1e-9)
	assert.Equal(t, sc.Blocks[1].Center.Y, sc.Labels[1].Position.Y)
}

func TestSelectionIsCarried(t *testing.T) {
	s := habitat.DefaultState()
	s.Selected = "storage"
	sc := Build(s)
	assert.True(t, sc.Blocks[3].Selected)
	assert.False(t, sc.Blocks[0].Selected)
}

func TestBlockTrianglesFaceOutward(t *testing.T) {
	b := Block{
		Center: geometry.NewVector3(1, 2, 3),
		Size:   geometry.NewVector3(1, 2, 0.5),
		YawDeg: 33,
	}
	tris := b.Triangles()
	require.Len(t, tris, 12)

	area := 0.0
	for _, tri := range tris {
		area += tri.Area()
		away := tri.Center().Sub(b.Center)
		if tri.Normal.Dot(away) <= 0 {
			t.Errorf("facet normal %v points inward", tri.Normal)
		}
	}
	assert.InDelta(t, 2*(1*2+1*0.5+2*0.5), area, 1e-9)
}

func TestPrismSectorIsClosedAndOutward(t *testing.T) {
	tris := Prism(0, 90, 2, 0, 1, 5, true)
	require.NotEmpty(t, tris)

	// Sum of area-weighted normals vanishes for a closed surface
	sum := geometry.Vector3{}
	for _, tri := range tris {
		sum = sum.Add(tri.Normal.Mul(tri.Area()))
	}
	assert.Less(t, sum.Length(), 1e-9)

	centroid := Polar(45, 1, 0.5)
	for _, tri := range tris {
		if tri.Normal.Dot(tri.Center().Sub(centroid)) <= 0 {
			t.Errorf("facet normal %v points inward", tri.Normal)
		}
	}
}

func TestPrismDegenerate(t *testing.T) {
	assert.Nil(t, Prism(0, 90, 0, 0, 1, 5, true))
	assert.Nil(t, Prism(0, 90, 1, 1, 1, 5, true))
}

func TestBoundsIncludeLabels(t *testing.T) {
	sc := Build(habitat.DefaultState())
	bb := sc.Bounds()
	assert.GreaterOrEqual(t, bb.Max.X, 2.95)
	assert.InDelta(t, 0.0, bb.Min.Y, 1e-12)
	assert.InDelta(t, 7.9, bb.Max.Y, 1e-12)
	assert.Len(t, sc.Triangles(false), 4*12)
	assert.Len(t, sc.Triangles(true), 4*12+len(sc.Shell))
}
