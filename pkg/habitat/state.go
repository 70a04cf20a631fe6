package habitat

// Angular limits applied to user-entered zone boundaries
const (
	MinSpanDeg     = 1.0
	NewZoneSpanDeg = 60.0
	MaxStartDeg    = 359.0
	MinEndDeg      = 1.0
	MaxEndDeg      = 360.0
)

// Boundary selects which edge of a zone is being dragged
type Boundary int

const (
	BoundaryStart Boundary = iota
	BoundaryEnd
)

func (b Boundary) String() string {
	if b == BoundaryEnd {
		return "end"
	}
	return "start"
}

// Drag is the transient pointer-drag state between pointer-down and pointer-up
type Drag struct {
	Active   bool
	Index    int
	Boundary Boundary
}

// State is an immutable snapshot of a design. Reducers never modify a State
// in place; they return a new one with its own zone slice.
type State struct {
	Envelope Envelope
	Mission  Mission
	Zones    []Zone
	Selected string
	Drag     Drag

	// LastAddedID is the identifier assigned by the most recent AddZone
	LastAddedID string
	Revision    uint64
}

// DefaultState returns the starter design: a 3 m × 8 m cylinder for a crew
// of four with four quadrant zones
func DefaultState() State {
	return State{
		Envelope: Envelope{RadiusM: 3.0, HeightM: 8.0, WallThicknessM: 0.05},
		Mission:  Mission{CrewSize: 4, MissionDays: 180},
		Zones: []Zone{
			{ID: "sleep", Name: "Sleep", Purpose: PurposeSleep, Start: 0, End: 90, Color: DefaultPalette.ColorAt(0)},
			{ID: "work", Name: "Work", Purpose: PurposeWork, Start: 90, End: 200, Color: DefaultPalette.ColorAt(1)},
			{ID: "lifesupport", Name: "Life Support", Purpose: PurposeLifeSupport, Start: 200, End: 280, Color: DefaultPalette.ColorAt(2)},
			{ID: "storage", Name: "Storage", Purpose: PurposeStorage, Start: 280, End: 360, Color: DefaultPalette.ColorAt(3)},
		},
	}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	zones := make([]Zone, len(s.Zones))
	for i, z := range s.Zones {
		zones[i] = z.clone()
	}
	s.Zones = zones
	return s
}

// Zone looks up a zone by identifier
func (s State) Zone(id string) (Zone, int, bool) {
	for i, z := range s.Zones {
		if z.ID == id {
			return z, i, true
		}
	}
	return Zone{}, -1, false
}

// SelectedZone returns the selected zone, if any
func (s State) SelectedZone() (Zone, bool) {
	if s.Selected == "" {
		return Zone{}, false
	}
	z, _, ok := s.Zone(s.Selected)
	return z, ok
}

func (s State) hasID(id string) bool {
	_, _, ok := s.Zone(id)
	return ok
}
