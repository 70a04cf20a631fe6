package habitat

import (
	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Envelope limits accepted from user input
const (
	MinRadiusM = 0.5
	MaxRadiusM = 20.0
	MinHeightM = 0.5
	MaxHeightM = 60.0

	MaxWallThicknessM = 1.0
)

// Envelope is the outer right circular cylinder being laid out
type Envelope struct {
	RadiusM        float64
	HeightM        float64
	WallThicknessM float64
}

// Clamped returns the envelope with every dimension forced into its UI range
func (e Envelope) Clamped() Envelope {
	return Envelope{
		RadiusM:        geometry.Clamp(e.RadiusM, MinRadiusM, MaxRadiusM),
		HeightM:        geometry.Clamp(e.HeightM, MinHeightM, MaxHeightM),
		WallThicknessM: geometry.Clamp(e.WallThicknessM, 0, MaxWallThicknessM),
	}
}

// UsableRadius is the inner radius after the wall
func (e Envelope) UsableRadius() float64 {
	return geometry.UsableRadius(e.RadiusM, e.WallThicknessM)
}

// UsableVolume is the interior volume after wall and end caps
func (e Envelope) UsableVolume() float64 {
	return geometry.UsableCylinderVolume(e.RadiusM, e.HeightM, e.WallThicknessM)
}

// Mission holds the inputs of the habitability rules
type Mission struct {
	CrewSize    int
	MissionDays int
}

// Clamped returns the mission with both counts at least one
func (m Mission) Clamped() Mission {
	return Mission{
		CrewSize:    max(1, m.CrewSize),
		MissionDays: max(1, m.MissionDays),
	}
}
