package habitat

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette assigns display colors to zones by position
type Palette interface {
	ColorAt(index int) string
}

// FixedPalette cycles through a list of hex colors
type FixedPalette []string

// DefaultPalette is a ten-color qualitative palette
var DefaultPalette = FixedPalette{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// ColorAt returns the color for index, wrapping around
func (p FixedPalette) ColorAt(index int) string {
	if len(p) == 0 {
		return fallbackColor
	}
	n := len(p)
	return p[((index%n)+n)%n]
}

// GeneratedPalette spreads hues by the golden angle in HCL space so that
// neighbouring zones never get similar colors
type GeneratedPalette struct {
	Chroma    float64
	Luminance float64
}

// NewGeneratedPalette returns a palette tuned for dark backgrounds
func NewGeneratedPalette() GeneratedPalette {
	return GeneratedPalette{Chroma: 0.55, Luminance: 0.65}
}

// ColorAt returns the color for index
func (p GeneratedPalette) ColorAt(index int) string {
	hue := math.Mod(30+float64(index)*137.508, 360)
	return colorful.Hcl(hue, p.Chroma, p.Luminance).Clamped().Hex()
}

const fallbackColor = "#888888"

// ValidColor reports whether s is a #rrggbb hex color
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// RGBA converts a zone color to an image color. Invalid colors become grey.
func RGBA(hex string, alpha uint8) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}
}

// Shade blends a zone color towards black (t<0) or white (t>0)
func Shade(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackColor
	}
	target := colorful.Color{R: 1, G: 1, B: 1}
	if t < 0 {
		target = colorful.Color{}
		t = -t
	}
	if t >= 1 {
		return target.Hex()
	}
	return c.BlendLab(target, t).Clamped().Hex()
}
