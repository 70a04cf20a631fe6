package geometry

import "math"

// Vector3 is a point or direction in the Y-up world space of the 3D preview
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales every component by s
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length is the Euclidean norm
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance between two points
func (v Vector3) Distance(o Vector3) float64 { return v.Sub(o).Length() }

// Normalize returns the unit vector along v, or the zero vector for a zero input
func (v Vector3) Normalize() Vector3 {
	if l := v.Length(); l != 0 {
		return v.Mul(1 / l)
	}
	return Vector3{}
}

// Min is the component-wise minimum, used to grow bounding boxes
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max is the component-wise maximum
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// RotateY turns v about the vertical axis by angle radians.
// Positive angles turn +X towards -Z, matching a right-handed Y-up scene.
func (v Vector3) RotateY(angle float64) Vector3 {
	sin, cos := math.Sincos(angle)
	return Vector3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
