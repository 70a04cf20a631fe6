package geometry

import "math"

// Angles in this package are compass-style degrees: 0° points "up" on a
// top-down plan (towards -Y in screen space), and angles grow clockwise.

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	wrapped := math.Mod(math.Mod(deg, 360)+360, 360)
	// math.Mod can hand back 360 for tiny negative inputs
	if wrapped >= 360 {
		return 0
	}
	return wrapped
}

// AngleToPoint maps a compass angle and a radial distance to planar screen
// coordinates relative to the plan center. scale is pixels per meter.
func AngleToPoint(angleDeg, radius, scale float64) (x, y float64) {
	a := DegToRad(angleDeg - 90)
	return math.Cos(a) * radius * scale, math.Sin(a) * radius * scale
}

// PointToAngle is the inverse of AngleToPoint: it returns the compass angle
// in [0, 360) of a point given relative to the plan center.
func PointToAngle(dx, dy float64) float64 {
	return NormalizeDegrees(RadToDeg(math.Atan2(dy, dx)) + 90)
}

// MidAngle returns the angular midpoint of a sector
func MidAngle(startDeg, endDeg float64) float64 {
	return (startDeg + endDeg) / 2
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
