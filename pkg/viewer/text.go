package viewer

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelFace is the face used for all raster labels
var LabelFace font.Face = basicfont.Face7x13

// TextSize returns the pixel width and line height of s in LabelFace
func TextSize(s string) (int, int) {
	_, advance := font.BoundString(LabelFace, s)
	return advance.Ceil(), LabelFace.Metrics().Height.Ceil()
}

// DrawText draws s centered horizontally on x with its vertical middle at y
func (c *Canvas) DrawText(x, y float64, s string, col color.RGBA) {
	if s == "" {
		return
	}
	width, height := TextSize(s)
	ascent := LabelFace.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: LabelFace,
		Dot: fixed.Point26_6{
			X: fixed.I(int(x) - width/2),
			Y: fixed.I(int(y) - height/2 + ascent),
		},
	}
	d.DrawString(s)
}
