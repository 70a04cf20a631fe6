package habitat

import (
	"fmt"

	"github.com/philipparndt/gohabitat/pkg/geometry"
)

// Reducer turns (state, action) into a new state. It is safe to share
// between goroutines as long as its IDGenerator is.
type Reducer struct {
	ids      IDGenerator
	palette  Palette
	defaults State
}

// ReducerOption customizes a Reducer
type ReducerOption func(*Reducer)

// WithIDs sets the zone identifier generator
func WithIDs(ids IDGenerator) ReducerOption {
	return func(r *Reducer) { r.ids = ids }
}

// WithPalette sets the color palette used for new zones
func WithPalette(p Palette) ReducerOption {
	return func(r *Reducer) { r.palette = p }
}

// WithDefaults sets the state restored by Reset
func WithDefaults(s State) ReducerOption {
	return func(r *Reducer) { r.defaults = s.Clone() }
}

// NewReducer creates a reducer with counter IDs, the default palette and
// DefaultState as reset target
func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{
		ids:      NewCounterIDs("zone-"),
		palette:  DefaultPalette,
		defaults: DefaultState(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Defaults returns a copy of the reset state
func (r *Reducer) Defaults() State {
	return r.defaults.Clone()
}

// Reduce applies action to s. The input state is never modified.
func (r *Reducer) Reduce(s State, action Action) State {
	next := s.Clone()
	next.Revision = s.Revision + 1

	switch a := action.(type) {
	case AddZone:
		r.addZone(&next, a)
	case RemoveZone:
		removeZone(&next, a.ID)
	case UpdateZone:
		updateZone(&next, a)
	case BeginDrag:
		if a.Index >= 0 && a.Index < len(next.Zones) {
			next.Drag = Drag{Active: true, Index: a.Index, Boundary: a.Boundary}
		}
	case DragTo:
		dragTo(&next, a)
	case EndDrag:
		next.Drag = Drag{}
	case AutoPartition:
		autoPartition(&next, a.N)
	case Select:
		if a.ID == "" || next.hasID(a.ID) {
			next.Selected = a.ID
		}
	case SetEnvelope:
		wall := a.WallThicknessM
		if wall == 0 {
			wall = next.Envelope.WallThicknessM
		}
		next.Envelope = Envelope{RadiusM: a.RadiusM, HeightM: a.HeightM, WallThicknessM: wall}.Clamped()
	case SetMission:
		next.Mission = Mission{CrewSize: a.CrewSize, MissionDays: a.MissionDays}.Clamped()
	case LoadDesign:
		loaded := a.Design.Clone()
		next.Envelope = loaded.Envelope.Clamped()
		next.Mission = loaded.Mission.Clamped()
		next.Zones = loaded.Zones
		next.Drag = Drag{}
		if !next.hasID(next.Selected) {
			next.Selected = ""
		}
	case Reset:
		revision := next.Revision
		next = r.Defaults()
		next.Revision = revision
	default:
		// Unknown actions leave the design untouched
		next.Revision = s.Revision
	}

	return next
}

func (r *Reducer) addZone(s *State, a AddZone) {
	start := 0.0
	if n := len(s.Zones); n > 0 {
		start = geometry.NormalizeDegrees(s.Zones[n-1].End)
	}

	id := r.ids.NextID()
	for attempts := 0; s.hasID(id) && attempts < 1000; attempts++ {
		id = r.ids.NextID()
	}

	name := a.Name
	if name == "" {
		name = fmt.Sprintf("Zone %d", len(s.Zones)+1)
	}

	s.Zones = append(s.Zones, Zone{
		ID:      id,
		Name:    name,
		Purpose: a.Purpose,
		Start:   start,
		End:     start + NewZoneSpanDeg,
		Color:   r.palette.ColorAt(len(s.Zones)),
	})
	s.LastAddedID = id
}

func removeZone(s *State, id string) {
	_, idx, ok := s.Zone(id)
	if !ok {
		return
	}
	s.Zones = append(s.Zones[:idx], s.Zones[idx+1:]...)
	if s.Selected == id {
		s.Selected = ""
	}
	// Indices after idx shift, so an in-flight drag would grab the wrong zone
	s.Drag = Drag{}
}

func updateZone(s *State, a UpdateZone) {
	_, idx, ok := s.Zone(a.ID)
	if !ok {
		return
	}
	z := &s.Zones[idx]

	switch a.Field {
	case FieldName:
		z.Name = a.Text
	case FieldColor:
		if ValidColor(a.Text) {
			z.Color = a.Text
		}
	case FieldPurpose:
		if p, err := ParsePurpose(a.Text); err == nil {
			z.Purpose = p
		}
	case FieldStart:
		z.Start = geometry.Clamp(a.Number, 0, MaxStartDeg)
		z.enforceOrder()
	case FieldEnd:
		z.End = geometry.Clamp(a.Number, MinEndDeg, MaxEndDeg)
		z.enforceOrder()
	}
}

func dragTo(s *State, a DragTo) {
	d := s.Drag
	if !d.Active || d.Index < 0 || d.Index >= len(s.Zones) {
		return
	}
	angle := geometry.PointToAngle(a.DX, a.DY)

	z := &s.Zones[d.Index]
	if d.Boundary == BoundaryStart {
		z.Start = angle
	} else {
		z.End = angle
	}
	z.enforceOrder()
}

func autoPartition(s *State, n int) {
	if n < 1 {
		return
	}
	for i := range s.Zones {
		rank := i % n
		s.Zones[i].AxialRank = &rank
	}
}
