package geometry

import "math"

// DefaultWallThickness is the assumed pressure-vessel wall thickness in meters
const DefaultWallThickness = 0.05

// UsableRadius returns the inner radius left after subtracting the wall
func UsableRadius(radius, wallThickness float64) float64 {
	return math.Max(0, radius-wallThickness)
}

// UsableHeight returns the inner height left after subtracting both end caps
func UsableHeight(height, wallThickness float64) float64 {
	return math.Max(0, height-2*wallThickness)
}

// UsableCylinderVolume returns the interior volume of a closed cylinder with
// the given wall thickness. It never returns a negative value.
func UsableCylinderVolume(radius, height, wallThickness float64) float64 {
	r := UsableRadius(radius, wallThickness)
	h := UsableHeight(height, wallThickness)
	return math.Pi * r * r * h
}

// SectorArea returns the area of a circular sector (pie slice).
// The result only depends on |endDeg-startDeg|.
func SectorArea(radius, startDeg, endDeg float64) float64 {
	theta := DegToRad(math.Abs(endDeg - startDeg))
	return 0.5 * radius * radius * theta
}

// ArcAngles samples the arc from startDeg to endDeg so that consecutive
// samples are at most maxStepDeg apart. Both ends are always included.
func ArcAngles(startDeg, endDeg, maxStepDeg float64) []float64 {
	span := endDeg - startDeg
	if maxStepDeg <= 0 {
		maxStepDeg = 1
	}
	steps := int(math.Ceil(math.Abs(span) / maxStepDeg))
	if steps < 1 {
		steps = 1
	}
	angles := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		angles[i] = startDeg + span*float64(i)/float64(steps)
	}
	return angles
}
