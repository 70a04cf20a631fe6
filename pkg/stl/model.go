// Package stl converts habitat scenes to STL meshes and reads them back.
package stl

import (
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/scene"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// Options selects what goes into a model built from a scene
type Options struct {
	Shell bool // include the usable-volume cylinder
	ZUp   bool // rotate from the scene's Y-up frame into a Z-up frame
}

// FromScene builds a model from a scene's zone blocks and, optionally, its shell
func FromScene(name string, sc scene.Scene, opts Options) *Model {
	m := NewModel(name)
	for _, t := range sc.Triangles(opts.Shell) {
		if opts.ZUp {
			t = geometry.NewFacet(zUp(t.V1), zUp(t.V2), zUp(t.V3))
		}
		m.AddTriangle(t)
	}
	return m
}

// zUp rotates a Y-up point by -90° about X, keeping handedness
func zUp(v geometry.Vector3) geometry.Vector3 {
	return geometry.NewVector3(v.X, -v.Z, v.Y)
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.ExtendTriangle(triangle)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Volume sums signed tetrahedra against the origin. It is exact for
// closed, consistently wound meshes; overlapping solids are counted twice.
func (m *Model) Volume() float64 {
	volume := 0.0
	for _, t := range m.Triangles {
		volume += t.V1.Dot(t.V2.Cross(t.V3)) / 6
	}
	return math.Abs(volume)
}
