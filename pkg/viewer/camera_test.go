package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

func testBounds() geometry.BoundingBox {
	bb := geometry.NewBoundingBox()
	bb.Extend(geometry.NewVector3(-3, 0, -3))
	bb.Extend(geometry.NewVector3(3, 8, 3))
	return bb
}

func TestProjectTargetIsScreenCenter(t *testing.T) {
	cam := NewCamera(testBounds())

	x, y, z := cam.Project(cam.Target, 800, 600)
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("Project failed: expected (400, 300), got (%v, %v)", x, y)
	}
	if math.Abs(z-cam.Distance) > 1e-9 {
		t.Errorf("Project depth failed: expected %v, got %v", cam.Distance, z)
	}
}

func TestProjectUpIsScreenUp(t *testing.T) {
	cam := NewCamera(testBounds())
	_, yCenter, _ := cam.Project(cam.Target, 800, 600)
	_, yAbove, _ := cam.Project(cam.Target.Add(geometry.NewVector3(0, 1, 0)), 800, 600)
	if yAbove >= yCenter {
		t.Errorf("expected a higher point to project above the center: %v >= %v", yAbove, yCenter)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	cam := NewCamera(testBounds())
	cam.Rotate(10, 0)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("Rotate failed: pitch %v not clamped", cam.Pitch)
	}
	cam.Rotate(-20, 0)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("Rotate failed: pitch %v not clamped", cam.Pitch)
	}
}

func TestZoomKeepsMinimumDistance(t *testing.T) {
	cam := NewCamera(testBounds())
	before := cam.Distance
	cam.Zoom(0.5)
	if math.Abs(cam.Distance-before*1.5) > 1e-9 {
		t.Errorf("Zoom failed: expected %v, got %v", before*1.5, cam.Distance)
	}
	cam.Zoom(-1)
	if cam.Distance != minDistance {
		t.Errorf("Zoom failed: expected %v, got %v", minDistance, cam.Distance)
	}
}

func TestUnprojectCenterLooksAtTarget(t *testing.T) {
	cam := NewCamera(testBounds())
	origin, dir := cam.Unproject(400, 300, 800, 600)
	expected := cam.Target.Sub(origin).Normalize()
	if dir.Distance(expected) > 1e-9 {
		t.Errorf("Unproject failed: expected %v, got %v", expected, dir)
	}
}
