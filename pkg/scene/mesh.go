package scene

import (
	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// boxFaces lists the corners of each face counter-clockwise seen from outside,
// as signs of the half extents
var boxFaces = [6][4][3]float64{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
}

// Corner returns a box corner in world space; signs select the half extents
func (b Block) Corner(sx, sy, sz float64) geometry.Vector3 {
	local := geometry.NewVector3(sx*b.Size.X/2, sy*b.Size.Y/2, sz*b.Size.Z/2)
	return local.RotateY(geometry.DegToRad(b.YawDeg)).Add(b.Center)
}

// Triangles returns the 12 outward-facing facets of the block
func (b Block) Triangles() []geometry.Triangle {
	tris := make([]geometry.Triangle, 0, 12)
	for _, face := range boxFaces {
		var c [4]geometry.Vector3
		for i, s := range face {
			c[i] = b.Corner(s[0], s[1], s[2])
		}
		q := geometry.Quad(c[0], c[1], c[2], c[3])
		tris = append(tris, q[0], q[1])
	}
	return tris
}

// Cylinder builds a closed cylinder around the Y axis
func Cylinder(radius, y0, y1 float64, segments int) []geometry.Triangle {
	return Prism(0, 360, radius, y0, y1, 360/float64(max(segments, 3)), false)
}

// Prism builds a closed sector prism between two compass angles. With
// sides set, the two radial faces are included, which a full ring omits.
func Prism(startDeg, endDeg, radius, y0, y1, maxStepDeg float64, sides bool) []geometry.Triangle {
	if radius <= 0 || y1 <= y0 {
		return nil
	}

	angles := geometry.ArcAngles(startDeg, endDeg, maxStepDeg)
	bottomCenter := geometry.NewVector3(0, y0, 0)
	topCenter := geometry.NewVector3(0, y1, 0)

	tris := make([]geometry.Triangle, 0, len(angles)*4+4)
	for i := 0; i+1 < len(angles); i++ {
		b0, b1 := Polar(angles[i], radius, y0), Polar(angles[i+1], radius, y0)
		t0, t1 := Polar(angles[i], radius, y1), Polar(angles[i+1], radius, y1)

		wall := geometry.Quad(b0, t0, t1, b1)
		tris = append(tris,
			wall[0], wall[1],
			geometry.NewFacet(topCenter, t1, t0),
			geometry.NewFacet(bottomCenter, b0, b1),
		)
	}

	if sides && len(angles) > 1 {
		first, last := angles[0], angles[len(angles)-1]
		start := geometry.Quad(bottomCenter, topCenter, Polar(first, radius, y1), Polar(first, radius, y0))
		end := geometry.Quad(bottomCenter, Polar(last, radius, y0), Polar(last, radius, y1), topCenter)
		tris = append(tris, start[0], start[1], end[0], end[1])
	}
	return tris
}
