// Package scene derives the 3D preview of a habitat design: a translucent
// shell for the usable volume, one block per zone and one outward-facing
// label per zone. World space is Y-up with the floor at y=0; the plan's
// screen axes map to X and Z so both views share one compass convention.
package scene

import (
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

const (
	ShellSegments   = 72
	ShellAlpha      = 0.18
	LabelRadiusFrac = 1.15
	BlockInnerFrac  = 0.3
	BlockOuterFrac  = 0.8
	BlockFillFrac   = 0.9
	MinBlockSizeM   = 0.2
)

// Block is a zone's box, centered at the zone's midpoint angle
type Block struct {
	ZoneID   string
	Color    string
	Selected bool
	Center   geometry.Vector3
	Size     geometry.Vector3 // X along the arc, Y up, Z radial
	YawDeg   float64
}

// Label is a zone name placed just outside the shell
type Label struct {
	ZoneID   string
	Text     string
	Color    string
	Position geometry.Vector3
	YawDeg   float64
}

// Scene is the complete 3D description of a design
type Scene struct {
	UsableRadiusM float64
	UsableHeightM float64
	Shell         []geometry.Triangle
	Blocks        []Block
	Labels        []Label
}

// Build derives the scene for s
func Build(s habitat.State) Scene {
	radius := s.Envelope.UsableRadius()
	height := geometry.UsableHeight(s.Envelope.HeightM, s.Envelope.WallThicknessM)

	sc := Scene{
		UsableRadiusM: radius,
		UsableHeightM: height,
		Shell:         Cylinder(radius, 0, height, ShellSegments),
		Blocks:        make([]Block, 0, len(s.Zones)),
		Labels:        make([]Label, 0, len(s.Zones)),
	}

	levels := axialLevels(s.Zones)
	for _, z := range s.Zones {
		y0, y1 := zoneBand(z, height, levels)
		mid := z.MidAngle()
		yaw := FacingYaw(mid)

		inner, outer := radius*BlockInnerFrac, radius*BlockOuterFrac
		span := math.Min(z.Span(), 180)
		width := 2 * ((inner + outer) / 2) * math.Sin(geometry.DegToRad(span)/2)

		sc.Blocks = append(sc.Blocks, Block{
			ZoneID:   z.ID,
			Color:    z.Color,
			Selected: z.ID == s.Selected,
			Center:   Polar(mid, (inner+outer)/2, (y0+y1)/2),
			Size: geometry.NewVector3(
				math.Max(MinBlockSizeM, width*BlockFillFrac),
				math.Max(MinBlockSizeM, (y1-y0)*BlockFillFrac),
				math.Max(MinBlockSizeM, outer-inner),
			),
			YawDeg: yaw,
		})

		sc.Labels = append(sc.Labels, Label{
			ZoneID:   z.ID,
			Text:     z.Name,
			Color:    z.Color,
			Position: Polar(mid, radius*LabelRadiusFrac, (y0+y1)/2),
			YawDeg:   yaw,
		})
	}
	return sc
}

// Polar places a compass angle and radius at height y
func Polar(angleDeg, radius, y float64) geometry.Vector3 {
	x, z := geometry.AngleToPoint(angleDeg, radius, 1)
	return geometry.NewVector3(x, y, z)
}

// FacingYaw is the rotation about +Y that turns a +Z facing object
// to face outward at the given compass angle
func FacingYaw(angleDeg float64) float64 {
	return geometry.NormalizeDegrees(180 - angleDeg)
}

// Bounds covers the shell and the labels around it
func (sc Scene) Bounds() geometry.BoundingBox {
	bb := geometry.NewBoundingBox()
	for _, t := range sc.Shell {
		bb.ExtendTriangle(t)
	}
	for _, l := range sc.Labels {
		bb.Extend(l.Position)
	}
	return bb
}

// Triangles returns the block meshes, optionally followed by the shell
func (sc Scene) Triangles(withShell bool) []geometry.Triangle {
	tris := make([]geometry.Triangle, 0, len(sc.Blocks)*12+len(sc.Shell))
	for _, b := range sc.Blocks {
		tris = append(tris, b.Triangles()...)
	}
	if withShell {
		tris = append(tris, sc.Shell...)
	}
	return tris
}

// axialLevels is the number of axial bands used by auto partitioning,
// zero when no zone carries a rank
func axialLevels(zones []habitat.Zone) int {
	levels := 0
	for _, z := range zones {
		if z.AxialRank != nil && *z.AxialRank+1 > levels {
			levels = *z.AxialRank + 1
		}
	}
	return levels
}

func zoneBand(z habitat.Zone, height float64, levels int) (float64, float64) {
	if levels == 0 || z.AxialRank == nil || *z.AxialRank < 0 {
		return 0, height
	}
	band := height / float64(levels)
	return float64(*z.AxialRank) * band, float64(*z.AxialRank+1) * band
}
