package viewer

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/plan"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func TestFillTriangleDepthTest(t *testing.T) {
	c := NewCanvas(20, 20, black)

	c.FillTriangle(0, 0, 5, 19, 0, 5, 0, 19, 5, red)
	assert.Equal(t, red, c.Img.RGBAAt(3, 3))
	assert.Equal(t, black, c.Img.RGBAAt(18, 18))

	// Behind the red triangle: hidden
	c.FillTriangle(0, 0, 9, 19, 0, 9, 0, 19, 9, green)
	assert.Equal(t, red, c.Img.RGBAAt(3, 3))

	// In front: visible
	c.FillTriangle(0, 0, 1, 19, 0, 1, 0, 19, 1, green)
	assert.Equal(t, green, c.Img.RGBAAt(3, 3))
}

func TestTranslucentFillBlendsWithoutDepthWrite(t *testing.T) {
	c := NewCanvas(10, 10, black)
	half := color.RGBA{R: 255, A: 128}

	c.FillTriangle(0, 0, 1, 9, 0, 1, 0, 9, 1, half)
	got := c.Img.RGBAAt(2, 2)
	assert.InDelta(t, 128, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)

	// Depth untouched, so an opaque facet further away still draws
	c.FillTriangle(0, 0, 5, 9, 0, 5, 0, 9, 5, green)
	assert.Equal(t, green, c.Img.RGBAAt(2, 2))
}

func TestFillPolygonAndLine(t *testing.T) {
	c := NewCanvas(20, 20, black)
	c.FillPolygon([]float64{2, 18, 18, 2}, []float64{2, 2, 18, 18}, red)
	assert.Equal(t, red, c.Img.RGBAAt(10, 10))
	assert.Equal(t, black, c.Img.RGBAAt(0, 0))

	c.DrawLine(0, 19, 19, 19, green)
	assert.Equal(t, green, c.Img.RGBAAt(7, 19))

	// Out of bounds is clipped, not a panic
	c.DrawLine(-50, -50, 50, 50, green)
	c.FillCircle(30, 30, 100, green)
	assert.Equal(t, green, c.Img.RGBAAt(0, 0))
}

func TestDrawTextMarksPixels(t *testing.T) {
	c := NewCanvas(80, 20, black)
	c.DrawText(40, 10, "Sleep", textColor)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if c.Img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	assert.Positive(t, lit)

	w, h := TextSize("Sleep")
	assert.Equal(t, 5*7, w)
	assert.Equal(t, 13, h)
}

func TestRenderPlanColorsSectors(t *testing.T) {
	s := habitat.DefaultState()
	d := plan.Build(s, plan.Viewport{CenterX: 100, CenterY: 100, PixelsPerMeter: 30})
	img := RenderPlan(d, 200, 200)

	// Sleep occupies the upper right quadrant; sample away from the label
	px := img.RGBAAt(100+60, 100-20)
	assert.NotEqual(t, backgroundColor, px)
	assert.NotEqual(t, floorColor, px)
	assert.Equal(t, backgroundColor, img.RGBAAt(2, 2))
}

func TestRenderSceneDrawsSomething(t *testing.T) {
	sc := scene.Build(habitat.DefaultState())
	cam := NewCamera(sc.Bounds())
	img := RenderScene(sc, cam, 160, 120)

	changed := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 160; x++ {
			if img.RGBAAt(x, y) != backgroundColor {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 160*120/20)
}

func TestWritePNG(t *testing.T) {
	c := NewCanvas(4, 3, red)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, c.Img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	r, _, _, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestShellColorAlpha(t *testing.T) {
	assert.Equal(t, uint8(46), shellColor.A)
	assert.Equal(t, uint8(0), alphaByte(-1))
	assert.Equal(t, uint8(255), alphaByte(2))
}
