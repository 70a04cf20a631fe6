package habitat

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Purpose tags what a zone is used for
type Purpose int

const (
	PurposeOther Purpose = iota
	PurposeSleep
	PurposeWork
	PurposeLifeSupport
	PurposeStorage
	PurposeHygiene
	PurposeGalley
	PurposeExercise
)

var purposeNames = [...]string{
	PurposeOther:       "other",
	PurposeSleep:       "sleep",
	PurposeWork:        "work",
	PurposeLifeSupport: "lifesupport",
	PurposeStorage:     "storage",
	PurposeHygiene:     "hygiene",
	PurposeGalley:      "galley",
	PurposeExercise:    "exercise",
}

// Purposes lists every purpose in declaration order
func Purposes() []Purpose {
	out := make([]Purpose, len(purposeNames))
	for i := range purposeNames {
		out[i] = Purpose(i)
	}
	return out
}

func (p Purpose) String() string {
	if p < 0 || int(p) >= len(purposeNames) {
		return fmt.Sprintf("purpose(%d)", int(p))
	}
	return purposeNames[p]
}

// ParsePurpose accepts the names produced by String, case-insensitively.
// "life support" and "life_support" are accepted as well.
func ParsePurpose(s string) (Purpose, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	for i, name := range purposeNames {
		if name == key {
			return Purpose(i), nil
		}
	}
	return PurposeOther, fmt.Errorf("unknown zone purpose %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (p Purpose) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Purpose) UnmarshalText(text []byte) error {
	parsed, err := ParsePurpose(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Zone is one angular sector of the envelope cross-section. It spans the
// full height. Angles are compass degrees; End is always greater than Start.
type Zone struct {
	ID        string
	Name      string
	Purpose   Purpose
	Start     float64
	End       float64
	Color     string
	AxialRank *int
}

// Span returns the angular extent in degrees
func (z Zone) Span() float64 {
	return z.End - z.Start
}

// MidAngle returns the angular midpoint used for labels
func (z Zone) MidAngle() float64 {
	return geometry.MidAngle(z.Start, z.End)
}

func (z Zone) clone() Zone {
	if z.AxialRank != nil {
		rank := *z.AxialRank
		z.AxialRank = &rank
	}
	return z
}

// enforceOrder re-establishes End > Start by bumping End to Start + 1°
func (z *Zone) enforceOrder() {
	if z.End <= z.Start {
		z.End = z.Start + MinSpanDeg
	}
}
