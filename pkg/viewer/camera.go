package viewer

import (
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Camera is an orbit camera around a target point, Y up
type Camera struct {
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in radians
	Distance float64
	Pitch    float64 // Elevation above the floor plane
	Yaw      float64 // Rotation around the Y axis
}

const (
	DefaultPitch = 0.55
	DefaultYaw   = 0.6
	minDistance  = 0.5
)

// NewCamera creates a camera looking at the center of bbox from far enough
// away to fit all of it
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	distance := bbox.Diagonal() * 1.3
	if distance < minDistance {
		distance = minDistance
	}

	return &Camera{
		Target:   center,
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4, // 45 degrees
		Distance: distance,
		Pitch:    DefaultPitch,
		Yaw:      DefaultYaw,
	}
}

// Position returns the eye position derived from the orbit angles
func (c *Camera) Position() geometry.Vector3 {
	x := c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw)
	y := c.Distance * math.Sin(c.Pitch)
	z := c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw)

	return c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits the camera by the given pitch and yaw deltas
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw

	// Clamp pitch to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.Pitch = geometry.Clamp(c.Pitch, -maxAngle, maxAngle)
}

// Zoom scales the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position()).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project maps a world point to screen coordinates and its view depth
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position())
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts screen coordinates to a world-space ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))

	return c.Position(), rayDir.Normalize()
}
