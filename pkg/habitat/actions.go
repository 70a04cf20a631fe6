package habitat

// Action is a user intent reduced into a new State
type Action interface {
	ActionName() string
}

// ZoneField names an editable zone attribute
type ZoneField int

const (
	FieldName ZoneField = iota
	FieldStart
	FieldEnd
	FieldColor
	FieldPurpose
)

func (f ZoneField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldStart:
		return "start"
	case FieldEnd:
		return "end"
	case FieldColor:
		return "color"
	case FieldPurpose:
		return "purpose"
	}
	return "unknown"
}

// AddZone appends a 60° zone after the last one
type AddZone struct {
	Name    string
	Purpose Purpose
}

// RemoveZone deletes the zone with the given identifier
type RemoveZone struct {
	ID string
}

// UpdateZone replaces one field of a zone. Text carries name, color and
// purpose values; Number carries start and end angles.
type UpdateZone struct {
	ID     string
	Field  ZoneField
	Text   string
	Number float64
}

// BeginDrag starts dragging a boundary of the zone at Index
type BeginDrag struct {
	Index    int
	Boundary Boundary
}

// DragTo moves the active boundary to the pointer position, given relative
// to the plan center in screen coordinates
type DragTo struct {
	DX, DY float64
}

// EndDrag releases the active boundary
type EndDrag struct{}

// AutoPartition labels zones with AxialRank = index mod N
type AutoPartition struct {
	N int
}

// Select marks a zone as selected; an empty ID clears the selection
type Select struct {
	ID string
}

// SetEnvelope replaces the cylinder dimensions. A zero wall thickness keeps
// the current one.
type SetEnvelope struct {
	RadiusM        float64
	HeightM        float64
	WallThicknessM float64
}

// SetMission replaces crew size and mission length
type SetMission struct {
	CrewSize    int
	MissionDays int
}

// LoadDesign replaces envelope, mission and zones, for example after a
// design file changed on disk
type LoadDesign struct {
	Design State
}

// Reset restores the reducer defaults
type Reset struct{}

func (AddZone) ActionName() string       { return "add_zone" }
func (RemoveZone) ActionName() string    { return "remove_zone" }
func (UpdateZone) ActionName() string    { return "update_zone" }
func (BeginDrag) ActionName() string     { return "begin_drag" }
func (DragTo) ActionName() string        { return "drag_to" }
func (EndDrag) ActionName() string       { return "end_drag" }
func (AutoPartition) ActionName() string { return "auto_partition" }
func (Select) ActionName() string        { return "select" }
func (SetEnvelope) ActionName() string   { return "set_envelope" }
func (SetMission) ActionName() string    { return "set_mission" }
func (LoadDesign) ActionName() string    { return "load_design" }
func (Reset) ActionName() string         { return "reset" }
