package viewer

import (
	"image"
	"image/color"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/plan"
)

var (
	backgroundColor = color.RGBA{R: 15, G: 18, B: 25, A: 255}
	floorColor      = color.RGBA{R: 27, G: 33, B: 48, A: 255}
	hullColor       = color.RGBA{R: 138, G: 147, B: 166, A: 255}
	selectedColor   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	subtextColor    = color.RGBA{R: 200, G: 208, B: 224, A: 255}
)

const sectorAlpha = 150

// RenderPlan rasterizes a plan diagram
func RenderPlan(d plan.Diagram, width, height int) *image.RGBA {
	c := NewCanvas(width, height, backgroundColor)

	c.FillCircle(d.Center.X, d.Center.Y, d.UsableRadiusPx, floorColor)
	c.StrokeCircle(d.Center.X, d.Center.Y, d.OuterRadiusPx, hullColor)

	for _, s := range d.Sectors {
		xs, ys := make([]float64, len(s.Outline)), make([]float64, len(s.Outline))
		for i, p := range s.Outline {
			xs[i], ys[i] = p.X, p.Y
		}
		c.FillPolygon(xs, ys, habitat.RGBA(s.Color, sectorAlpha))
	}

	for _, s := range d.Sectors {
		stroke := habitat.RGBA(habitat.Shade(s.Color, 0.4), 255)
		if s.Selected {
			stroke = selectedColor
		}
		for i := range s.Outline {
			p, q := s.Outline[i], s.Outline[(i+1)%len(s.Outline)]
			c.DrawLine(p.X, p.Y, q.X, q.Y, stroke)
		}
	}

	for _, s := range d.Sectors {
		c.DrawText(s.Label.X, s.Label.Y, s.LabelText, textColor)
		c.DrawText(s.Label.X, s.Label.Y+14, s.AreaText, subtextColor)
	}

	for _, h := range d.Handles {
		fill := textColor
		if h.Active {
			fill = selectedColor
		}
		c.FillCircle(h.Pos.X, h.Pos.Y, plan.HandleRadiusPx, backgroundColor)
		c.FillCircle(h.Pos.X, h.Pos.Y, plan.HandleRadiusPx-1.5, fill)
	}

	return c.Img
}
