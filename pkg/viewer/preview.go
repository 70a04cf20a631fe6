package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/scene"
)

var (
	lightDir   = geometry.NewVector3(0.4, 1, 0.3).Normalize()
	shellColor = color.RGBA{R: 159, G: 180, B: 216, A: alphaByte(scene.ShellAlpha)}
)

const ambient = 0.35

func alphaByte(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

// RenderScene rasterizes the 3D preview from the camera's point of view.
// Blocks are opaque and depth tested; the shell is blended over them.
func RenderScene(sc scene.Scene, cam *Camera, width, height int) *image.RGBA {
	c := NewCanvas(width, height, backgroundColor)
	w, h := float64(width), float64(height)
	eye := cam.Position()

	for _, b := range sc.Blocks {
		base := b.Color
		if b.Selected {
			base = habitat.Shade(base, 0.35)
		}
		col := habitat.RGBA(base, 255)

		for _, t := range b.Triangles() {
			if t.Normal.Dot(eye.Sub(t.Center())) <= 0 {
				continue
			}
			c.drawFacet(cam, t, w, h, lit(col, t.Normal))
		}

		if b.Selected {
			c.outlineBlock(cam, b, w, h)
		}
	}

	for _, t := range sc.Shell {
		c.drawFacet(cam, t, w, h, shellColor)
	}

	for _, l := range sc.Labels {
		x, y, z := cam.Project(l.Position, w, h)
		if z <= 0.01 {
			continue
		}
		c.DrawText(x, y, l.Text, textColor)
	}

	return c.Img
}

func (c *Canvas) drawFacet(cam *Camera, t geometry.Triangle, w, h float64, col color.RGBA) {
	x1, y1, z1 := cam.Project(t.V1, w, h)
	x2, y2, z2 := cam.Project(t.V2, w, h)
	x3, y3, z3 := cam.Project(t.V3, w, h)
	c.FillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
}

func (c *Canvas) outlineBlock(cam *Camera, b scene.Block, w, h float64) {
	var corners [8][2]float64
	for i := 0; i < 8; i++ {
		sx, sy, sz := sign(i&1), sign(i&2), sign(i&4)
		x, y, _ := cam.Project(b.Corner(sx, sy, sz), w, h)
		corners[i] = [2]float64{x, y}
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				c.DrawLine(corners[i][0], corners[i][1], corners[j][0], corners[j][1], selectedColor)
			}
		}
	}
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

// lit applies a simple Lambert term to col
func lit(col color.RGBA, normal geometry.Vector3) color.RGBA {
	k := ambient + (1-ambient)*math.Max(0, normal.Dot(lightDir))
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*k))
	}
	return color.RGBA{R: scale(col.R), G: scale(col.G), B: scale(col.B), A: col.A}
}
