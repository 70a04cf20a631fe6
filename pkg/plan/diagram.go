// Package plan builds the top-down sector diagram of a habitat design.
// A Diagram is a pure function of the design state and a viewport; renderers
// (raylib, raster images, SVG) only draw what it contains.
package plan

import (
	"fmt"
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

// Drawing constants in pixels or degrees
const (
	ArcStepDeg      = 2.0
	HandleRadiusPx  = 7.0
	HandleHitPx     = 12.0
	LabelRadiusFrac = 0.62
)

// Point is a position in screen pixels
type Point struct {
	X, Y float64
}

// Viewport places the plan on screen
type Viewport struct {
	CenterX        float64
	CenterY        float64
	PixelsPerMeter float64
}

// FitViewport centers an envelope of radiusM inside a width×height area,
// leaving margin pixels on every side
func FitViewport(width, height, radiusM, margin float64) Viewport {
	avail := math.Min(width, height)/2 - margin
	if avail < 1 {
		avail = 1
	}
	if radiusM <= 0 {
		radiusM = 1
	}
	return Viewport{
		CenterX:        width / 2,
		CenterY:        height / 2,
		PixelsPerMeter: avail / radiusM,
	}
}

// Scaled maps the viewport into a space k times denser, such as device
// pixels of a HiDPI canvas
func (vp Viewport) Scaled(k float64) Viewport {
	return Viewport{CenterX: vp.CenterX * k, CenterY: vp.CenterY * k, PixelsPerMeter: vp.PixelsPerMeter * k}
}

// Sector is one drawn zone
type Sector struct {
	Index     int
	ZoneID    string
	Color     string
	Selected  bool
	Start     float64
	End       float64
	Outline   []Point // center first, then the arc from Start to End
	Label     Point
	LabelText string
	AreaText  string
}

// Handle is a draggable zone boundary
type Handle struct {
	Index    int
	ZoneID   string
	Boundary habitat.Boundary
	Angle    float64
	Pos      Point
	Active   bool
}

// Diagram is everything needed to draw the plan
type Diagram struct {
	Viewport       Viewport
	Center         Point
	OuterRadiusPx  float64
	UsableRadiusPx float64
	Sectors        []Sector
	Handles        []Handle
}

// Build lays out the plan for s inside vp
func Build(s habitat.State, vp Viewport) Diagram {
	usable := s.Envelope.UsableRadius()
	d := Diagram{
		Viewport:       vp,
		Center:         Point{X: vp.CenterX, Y: vp.CenterY},
		OuterRadiusPx:  s.Envelope.RadiusM * vp.PixelsPerMeter,
		UsableRadiusPx: usable * vp.PixelsPerMeter,
		Sectors:        make([]Sector, 0, len(s.Zones)),
		Handles:        make([]Handle, 0, 2*len(s.Zones)),
	}

	for i, z := range s.Zones {
		outline := []Point{d.Center}
		for _, a := range geometry.ArcAngles(z.Start, z.End, ArcStepDeg) {
			outline = append(outline, d.at(a, usable))
		}

		d.Sectors = append(d.Sectors, Sector{
			Index:     i,
			ZoneID:    z.ID,
			Color:     z.Color,
			Selected:  z.ID == s.Selected,
			Start:     z.Start,
			End:       z.End,
			Outline:   outline,
			Label:     d.at(z.MidAngle(), usable*LabelRadiusFrac),
			LabelText: z.Name,
			AreaText:  fmt.Sprintf("%.1f m²", habitat.ZoneArea(s.Envelope, z)),
		})

		for _, b := range []habitat.Boundary{habitat.BoundaryStart, habitat.BoundaryEnd} {
			angle := z.Start
			if b == habitat.BoundaryEnd {
				angle = z.End
			}
			d.Handles = append(d.Handles, Handle{
				Index:    i,
				ZoneID:   z.ID,
				Boundary: b,
				Angle:    angle,
				Pos:      d.at(angle, usable),
				Active:   s.Drag.Active && s.Drag.Index == i && s.Drag.Boundary == b,
			})
		}
	}
	return d
}

func (d Diagram) at(angleDeg, radiusM float64) Point {
	x, y := geometry.AngleToPoint(angleDeg, radiusM, d.Viewport.PixelsPerMeter)
	return Point{X: d.Center.X + x, Y: d.Center.Y + y}
}

// Relative converts a screen position into an offset from the plan center,
// the input expected by habitat.DragTo
func (d Diagram) Relative(x, y float64) (dx, dy float64) {
	return x - d.Center.X, y - d.Center.Y
}

// HitHandle returns the boundary handle closest to (x, y) within HandleHitPx.
// Later zones win ties because they are drawn on top.
func (d Diagram) HitHandle(x, y float64) (Handle, bool) {
	best := -1
	bestDist := HandleHitPx
	for i, h := range d.Handles {
		dist := math.Hypot(h.Pos.X-x, h.Pos.Y-y)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return Handle{}, false
	}
	return d.Handles[best], true
}

// HitSector returns the topmost sector containing (x, y)
func (d Diagram) HitSector(x, y float64) (Sector, bool) {
	dx, dy := d.Relative(x, y)
	if math.Hypot(dx, dy) > d.UsableRadiusPx {
		return Sector{}, false
	}
	angle := geometry.PointToAngle(dx, dy)
	for i := len(d.Sectors) - 1; i >= 0; i-- {
		s := d.Sectors[i]
		if containsAngle(s.Start, s.End, angle) {
			return s, true
		}
	}
	return Sector{}, false
}

// containsAngle handles sectors whose end runs past 360°
func containsAngle(start, end, angle float64) bool {
	return (angle >= start && angle <= end) || (angle+360 >= start && angle+360 <= end)
}
