package viewer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Canvas is an image with a depth buffer
type Canvas struct {
	Img   *image.RGBA
	Depth []float64
}

// NewCanvas creates a canvas cleared to bg with an empty depth buffer
func NewCanvas(width, height int, bg color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = math.MaxFloat64
	}
	return &Canvas{Img: img, Depth: depth}
}

// blend mixes col over the pixel at (x, y) using col's alpha
func (c *Canvas) blend(x, y int, col color.RGBA) {
	if col.A == 255 {
		c.Img.SetRGBA(x, y, col)
		return
	}
	dst := c.Img.RGBAAt(x, y)
	a := float64(col.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	c.Img.SetRGBA(x, y, color.RGBA{
		R: mix(col.R, dst.R),
		G: mix(col.G, dst.G),
		B: mix(col.B, dst.B),
		A: 255,
	})
}

// FillTriangle fills a projected triangle with depth testing. Translucent
// colors are blended and do not write depth, so they must be drawn last.
func (c *Canvas) FillTriangle(x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	vertices := [3][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	bounds := c.Img.Bounds()
	width := bounds.Max.X
	writeDepth := col.A == 255

	top, bottom := vertices[0][1], vertices[2][1]
	for y := int(math.Max(0, math.Ceil(top))); y <= int(math.Floor(math.Min(float64(bounds.Max.Y-1), bottom))); y++ {
		fy := float64(y)

		xs, zs := make([]float64, 0, 3), make([]float64, 0, 3)
		for _, e := range [3][2]int{{0, 1}, {1, 2}, {0, 2}} {
			a, b := vertices[e[0]], vertices[e[1]]
			if a[1] == b[1] || fy < a[1] || fy > b[1] {
				continue
			}
			t := (fy - a[1]) / (b[1] - a[1])
			xs = append(xs, a[0]+t*(b[0]-a[0]))
			zs = append(zs, a[2]+t*(b[2]-a[2]))
		}
		if len(xs) < 2 {
			continue
		}

		lo, hi := 0, 0
		for i := range xs {
			if xs[i] < xs[lo] {
				lo = i
			}
			if xs[i] > xs[hi] {
				hi = i
			}
		}
		xStart, zStart, xEnd, zEnd := xs[lo], zs[lo], xs[hi], zs[hi]

		for x := int(math.Max(0, math.Ceil(xStart))); x <= int(math.Floor(math.Min(float64(width-1), xEnd))); x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			idx := y*width + x
			if z >= c.Depth[idx] {
				continue
			}
			if writeDepth {
				c.Depth[idx] = z
			}
			c.blend(x, y, col)
		}
	}
}

// FillPolygon fills a star-shaped polygon as a fan around its first point,
// ignoring depth
func (c *Canvas) FillPolygon(xs, ys []float64, col color.RGBA) {
	for i := 1; i+1 < len(xs); i++ {
		c.fill2D(xs[0], ys[0], xs[i], ys[i], xs[i+1], ys[i+1], col)
	}
}

func (c *Canvas) fill2D(x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	minX := int(math.Max(0, math.Floor(math.Min(x1, math.Min(x2, x3)))))
	maxX := int(math.Min(float64(c.Img.Bounds().Max.X-1), math.Ceil(math.Max(x1, math.Max(x2, x3)))))
	minY := int(math.Max(0, math.Floor(math.Min(y1, math.Min(y2, y3)))))
	maxY := int(math.Min(float64(c.Img.Bounds().Max.Y-1), math.Ceil(math.Max(y1, math.Max(y2, y3)))))

	area := edge(x1, y1, x2, y2, x3, y3)
	if area == 0 {
		return
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(x2, y2, x3, y3, px, py) / area
			w1 := edge(x3, y3, x1, y1, px, py) / area
			w2 := edge(x1, y1, x2, y2, px, py) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				c.blend(x, y, col)
			}
		}
	}
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillCircle draws a filled disc
func (c *Canvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	bounds := c.Img.Bounds()
	for y := int(math.Max(0, cy-r)); y <= int(math.Min(float64(bounds.Max.Y-1), cy+r)); y++ {
		for x := int(math.Max(0, cx-r)); x <= int(math.Min(float64(bounds.Max.X-1), cx+r)); x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				c.blend(x, y, col)
			}
		}
	}
}

// StrokeCircle draws a circle outline as a closed polyline
func (c *Canvas) StrokeCircle(cx, cy, r float64, col color.RGBA) {
	const segments = 180
	px, py := cx, cy-r
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x, y := cx+r*math.Sin(a), cy-r*math.Cos(a)
		c.DrawLine(px, py, x, y, col)
		px, py = x, y
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(fx1, fy1, fx2, fy2 float64, col color.RGBA) {
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))
	bounds := c.Img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			c.blend(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
