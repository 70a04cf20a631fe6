package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/stl"
)

// MeshStats summarizes an exported mesh
type MeshStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes size and edge statistics for a mesh
func AnalyzeModel(model *stl.Model) MeshStats {
	result := MeshStats{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
	}
	if result.TriangleCount == 0 {
		return result
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = 3 * result.TriangleCount
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}

// Section lays out the mesh statistics as report rows
func (m MeshStats) Section(title string) Section {
	return Section{
		Title: title,
		Rows: []Row{
			{"Triangles", fmt.Sprintf("%d", m.TriangleCount)},
			{"Surface area", FormatMeasurement(m.SurfaceArea, "m²")},
			{"Enclosed volume", FormatMeasurement(m.Volume, "m³")},
			{"Min", FormatVector(m.BoundingBox.Min)},
			{"Max", FormatVector(m.BoundingBox.Max)},
			{"Size", FormatVector(m.Dimensions)},
			{"Edge lengths", fmt.Sprintf("%s to %s, avg %s",
				FormatMeasurement(m.MinEdgeLength, "m"),
				FormatMeasurement(m.MaxEdgeLength, "m"),
				FormatMeasurement(m.AvgEdgeLength, "m"))},
		},
	}
}
