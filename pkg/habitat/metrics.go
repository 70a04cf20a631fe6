package habitat

import (
	"math"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Zone volume approximation constants: a fixed deck/ceiling allowance and a
// floor that keeps volumes meaningful for very short envelopes
const (
	DeckAllowanceM = 0.05
	MinZoneHeightM = 0.95
)

// ZoneMetrics holds the derived figures of one zone
type ZoneMetrics struct {
	ID       string
	Name     string
	Purpose  Purpose
	SpanDeg  float64
	AreaM2   float64
	VolumeM3 float64
}

// Metrics is recomputed from a State on every call and never cached
type Metrics struct {
	Zones          []ZoneMetrics
	TotalAreaM2    float64
	TotalVolumeM3  float64
	UsableVolumeM3 float64
	UsableRadiusM  float64
	FloorAreaM2    float64
}

// ZoneHeight returns the effective height used for zone volumes
func ZoneHeight(heightM float64) float64 {
	return math.Max(MinZoneHeightM, heightM-DeckAllowanceM)
}

// ZoneArea returns the floor area of z inside envelope e
func ZoneArea(e Envelope, z Zone) float64 {
	return geometry.SectorArea(e.UsableRadius(), z.Start, z.End)
}

// ZoneVolume returns the approximate volume of z inside envelope e
func ZoneVolume(e Envelope, z Zone) float64 {
	return ZoneArea(e, z) * ZoneHeight(e.HeightM)
}

// ComputeMetrics derives all metrics for s
func ComputeMetrics(s State) Metrics {
	r := s.Envelope.UsableRadius()
	m := Metrics{
		Zones:          make([]ZoneMetrics, 0, len(s.Zones)),
		UsableVolumeM3: s.Envelope.UsableVolume(),
		UsableRadiusM:  r,
		FloorAreaM2:    math.Pi * r * r,
	}

	for _, z := range s.Zones {
		zm := ZoneMetrics{
			ID:       z.ID,
			Name:     z.Name,
			Purpose:  z.Purpose,
			SpanDeg:  z.Span(),
			AreaM2:   ZoneArea(s.Envelope, z),
			VolumeM3: ZoneVolume(s.Envelope, z),
		}
		m.Zones = append(m.Zones, zm)
		m.TotalAreaM2 += zm.AreaM2
		m.TotalVolumeM3 += zm.VolumeM3
	}
	return m
}

// AreaByPurpose sums zone areas per purpose
func (m Metrics) AreaByPurpose() map[Purpose]float64 {
	out := make(map[Purpose]float64)
	for _, z := range m.Zones {
		out[z.Purpose] += z.AreaM2
	}
	return out
}
