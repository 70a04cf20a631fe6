package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("empty box size should be zero, got %v", bbox.Size())
	}
}

func TestBoundingBoxCenterAndDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.ExtendTriangle(NewFacet(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	))

	center := bbox.Center()
	expected := NewVector3(1.5, 2, 0)
	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
	if math.Abs(bbox.Diagonal()-5) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5, got %v", bbox.Diagonal())
	}
}
