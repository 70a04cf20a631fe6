package habitat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultExportFilename is the name used by the editors' export action
const DefaultExportFilename = "habitat_design.json"

// ErrInvalidDocument is returned when a design document is structurally wrong
var ErrInvalidDocument = errors.New("invalid design document")

// Document is the on-disk JSON layout of an exported design
type Document struct {
	Envelope DocumentEnvelope `json:"envelope"`
	Crew     DocumentCrew     `json:"crew"`
	Zones    []DocumentZone   `json:"zones"`
}

// DocumentEnvelope describes the pressure vessel
type DocumentEnvelope struct {
	Type           string  `json:"type"`
	RadiusM        float64 `json:"radius_m"`
	HeightM        float64 `json:"height_m"`
	WallThicknessM float64 `json:"wall_thickness_m,omitempty"`
}

// DocumentCrew describes the mission inputs
type DocumentCrew struct {
	Size        int `json:"size"`
	MissionDays int `json:"mission_days"`
}

// DocumentZone is one zone entry
type DocumentZone struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Purpose   Purpose `json:"purpose"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Color     string  `json:"color"`
	AxialRank *int    `json:"axial_rank,omitempty"`
}

const envelopeTypeCylinder = "cylinder"

// NewDocument converts a state into its export form
func NewDocument(s State) Document {
	doc := Document{
		Envelope: DocumentEnvelope{
			Type:           envelopeTypeCylinder,
			RadiusM:        s.Envelope.RadiusM,
			HeightM:        s.Envelope.HeightM,
			WallThicknessM: s.Envelope.WallThicknessM,
		},
		Crew: DocumentCrew{
			Size:        s.Mission.CrewSize,
			MissionDays: s.Mission.MissionDays,
		},
		Zones: make([]DocumentZone, 0, len(s.Zones)),
	}
	for _, z := range s.Zones {
		z = z.clone()
		doc.Zones = append(doc.Zones, DocumentZone{
			ID:        z.ID,
			Name:      z.Name,
			Purpose:   z.Purpose,
			Start:     z.Start,
			End:       z.End,
			Color:     z.Color,
			AxialRank: z.AxialRank,
		})
	}
	return doc
}

// Validate checks the structural invariants of a document
func (d Document) Validate() error {
	if d.Envelope.Type != envelopeTypeCylinder {
		return fmt.Errorf("%w: envelope type %q is not %q", ErrInvalidDocument, d.Envelope.Type, envelopeTypeCylinder)
	}
	if d.Envelope.RadiusM <= 0 || d.Envelope.HeightM <= 0 {
		return fmt.Errorf("%w: envelope dimensions must be positive", ErrInvalidDocument)
	}
	seen := make(map[string]bool, len(d.Zones))
	for i, z := range d.Zones {
		if z.ID == "" {
			return fmt.Errorf("%w: zone %d has no id", ErrInvalidDocument, i)
		}
		if seen[z.ID] {
			return fmt.Errorf("%w: duplicate zone id %q", ErrInvalidDocument, z.ID)
		}
		seen[z.ID] = true
		if z.End <= z.Start {
			return fmt.Errorf("%w: zone %q ends at %.1f° before it starts at %.1f°", ErrInvalidDocument, z.ID, z.End, z.Start)
		}
	}
	return nil
}

// State converts the document into a design state. A missing wall thickness
// falls back to the default.
func (d Document) State() State {
	wall := d.Envelope.WallThicknessM
	if wall == 0 {
		wall = DefaultState().Envelope.WallThicknessM
	}
	s := State{
		Envelope: Envelope{RadiusM: d.Envelope.RadiusM, HeightM: d.Envelope.HeightM, WallThicknessM: wall}.Clamped(),
		Mission:  Mission{CrewSize: d.Crew.Size, MissionDays: d.Crew.MissionDays}.Clamped(),
		Zones:    make([]Zone, 0, len(d.Zones)),
	}
	for _, dz := range d.Zones {
		s.Zones = append(s.Zones, Zone{
			ID:        dz.ID,
			Name:      dz.Name,
			Purpose:   dz.Purpose,
			Start:     dz.Start,
			End:       dz.End,
			Color:     dz.Color,
			AxialRank: dz.AxialRank,
		}.clone())
	}
	return s
}

// WriteDocument writes s as indented JSON
func WriteDocument(w io.Writer, s State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(s)); err != nil {
		return fmt.Errorf("failed to encode design: %w", err)
	}
	return nil
}

// ExportFile writes s to path, creating parent directories as needed. The
// file is written to a temporary name first and renamed into place so that
// file watchers never observe a half-written document.
func ExportFile(path string, s State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".habitat-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", tmp.Name(), err)
	}
	if err := WriteDocument(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move design into place: %w", err)
	}
	return nil
}

// ReadDocument decodes and validates a design document
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadFile reads a design document from path and converts it to a state
func LoadFile(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("failed to open design: %w", err)
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		return State{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc.State(), nil
}
