// Package tui is a terminal editor for habitat designs. Every edit is an
// action dispatched to the shared store; the view is re-derived from the
// store snapshot after each message.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

const (
	nudgeDeg     = 5.0
	maxPartition = 4
)

// inputMode is what the text input is editing
type inputMode int

const (
	modeNormal inputMode = iota
	modeRename
	modeStart
	modeEnd
)

func (m inputMode) prompt() string {
	switch m {
	case modeRename:
		return "Name: "
	case modeStart:
		return "Start °: "
	case modeEnd:
		return "End °: "
	}
	return ""
}

// reloadMsg carries a design read from disk after it changed
type reloadMsg struct {
	state habitat.State
	err   error
}

// Model is the bubbletea model of the terminal editor
type Model struct {
	store      *habitat.Store
	rules      []habitat.Rule
	exportPath string

	state  habitat.State
	report analysis.Report

	table      table.Model
	input      textinput.Model
	mode       inputMode
	partitionN int

	width  int
	height int
	status string
	styles Styles
}

// New creates a model editing the design held by store
func New(store *habitat.Store, rules []habitat.Rule, exportPath string) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 12},
			{Title: "Name", Width: 16},
			{Title: "Purpose", Width: 12},
			{Title: "Start", Width: 6},
			{Title: "End", Width: 6},
			{Title: "Area", Width: 10},
			{Title: "Level", Width: 5},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	in := textinput.New()
	in.CharLimit = 40
	in.Width = 30

	m := Model{
		store:      store,
		rules:      rules,
		exportPath: exportPath,
		table:      t,
		input:      in,
		partitionN: 1,
		styles:     DefaultStyles(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the snapshot the view was last built from
func (m Model) State() habitat.State {
	return m.state
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(3, min(len(m.state.Zones)+1, msg.Height-16)))
		return m, nil

	case reloadMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Reload failed: %v", msg.err)
			return m, nil
		}
		m.store.Dispatch(habitat.LoadDesign{Design: msg.state})
		m.status = "Design reloaded from disk"
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		if cmd, done := m.handleKey(msg); done {
			m.refresh()
			return m, cmd
		}
	}

	return m, nil
}

// handleKey applies a normal-mode key. done is false for unbound keys.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := m.state
	zone, hasZone := s.SelectedZone()

	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit, true
	case "up", "k":
		m.store.Dispatch(habitat.Select{ID: neighbourID(s, -1)})
	case "down", "j":
		m.store.Dispatch(habitat.Select{ID: neighbourID(s, 1)})
	case "a":
		next := m.store.Dispatch(habitat.AddZone{})
		m.store.Dispatch(habitat.Select{ID: next.LastAddedID})
		m.status = "Added " + next.LastAddedID
	case "d", "delete":
		if hasZone {
			m.store.Dispatch(habitat.RemoveZone{ID: zone.ID})
			m.status = "Removed " + zone.ID
		}
	case "u":
		if hasZone {
			all := habitat.Purposes()
			next := all[(int(zone.Purpose)+1)%len(all)]
			m.store.Dispatch(habitat.UpdateZone{ID: zone.ID, Field: habitat.FieldPurpose, Text: next.String()})
		}
	case "[", "]":
		if hasZone {
			delta := nudgeDeg
			if msg.String() == "[" {
				delta = -nudgeDeg
			}
			m.store.Dispatch(habitat.UpdateZone{ID: zone.ID, Field: habitat.FieldStart, Number: zone.Start + delta})
		}
	case "{", "}":
		if hasZone {
			delta := nudgeDeg
			if msg.String() == "{" {
				delta = -nudgeDeg
			}
			m.store.Dispatch(habitat.UpdateZone{ID: zone.ID, Field: habitat.FieldEnd, Number: zone.End + delta})
		}
	case "n", "s", "e":
		if !hasZone {
			m.status = "Select a zone first"
			return nil, true
		}
		return m.beginInput(msg.String(), zone), true
	case "p":
		m.partitionN = m.partitionN%maxPartition + 1
		m.store.Dispatch(habitat.AutoPartition{N: m.partitionN})
		m.status = fmt.Sprintf("Partitioned into %d level(s)", m.partitionN)
	case "+", "=":
		m.store.Dispatch(habitat.SetMission{CrewSize: s.Mission.CrewSize + 1, MissionDays: s.Mission.MissionDays})
	case "-":
		m.store.Dispatch(habitat.SetMission{CrewSize: s.Mission.CrewSize - 1, MissionDays: s.Mission.MissionDays})
	case "ctrl+s":
		if err := habitat.ExportFile(m.exportPath, m.store.Snapshot()); err != nil {
			m.status = fmt.Sprintf("Export failed: %v", err)
		} else {
			m.status = "Exported " + m.exportPath
		}
	case "ctrl+r":
		m.store.Dispatch(habitat.Reset{})
		m.status = "Design reset"
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) beginInput(key string, zone habitat.Zone) tea.Cmd {
	switch key {
	case "n":
		m.mode = modeRename
		m.input.SetValue(zone.Name)
	case "s":
		m.mode = modeStart
		m.input.SetValue(strconv.FormatFloat(zone.Start, 'f', -1, 64))
	case "e":
		m.mode = modeEnd
		m.input.SetValue(strconv.FormatFloat(zone.End, 'f', -1, 64))
	}
	m.input.Prompt = m.mode.prompt()
	m.input.CursorEnd()
	return m.input.Focus()
}

// updateInput feeds keys to the text input and applies it on enter
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endInput()
		return m, nil
	case tea.KeyEnter:
		if err := m.applyInput(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.endInput()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) applyInput() error {
	zone, ok := m.state.SelectedZone()
	if !ok {
		return fmt.Errorf("zone no longer exists")
	}
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeRename:
		m.store.Dispatch(habitat.UpdateZone{ID: zone.ID, Field: habitat.FieldName, Text: value})
	case modeStart, modeEnd:
		deg, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", value)
		}
		field := habitat.FieldStart
		if m.mode == modeEnd {
			field = habitat.FieldEnd
		}
		m.store.Dispatch(habitat.UpdateZone{ID: zone.ID, Field: field, Number: deg})
	}
	return nil
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

// refresh re-derives rows and report from the store
func (m *Model) refresh() {
	m.state = m.store.Snapshot()
	m.report = analysis.Analyze(m.state, m.rules...)

	rows := make([]table.Row, 0, len(m.state.Zones))
	for i, z := range m.state.Zones {
		level := "-"
		if z.AxialRank != nil {
			level = strconv.Itoa(*z.AxialRank)
		}
		rows = append(rows, table.Row{
			z.ID,
			z.Name,
			z.Purpose.String(),
			analysis.FormatAngle(z.Start),
			analysis.FormatAngle(z.End),
			analysis.FormatMeasurement(m.report.Metrics.Zones[i].AreaM2, "m²"),
			level,
		})
	}
	m.table.SetRows(rows)

	if _, idx, ok := m.state.Zone(m.state.Selected); ok {
		m.table.SetCursor(idx)
	}
}

// neighbourID returns the zone dir steps from the selection, wrapping around
func neighbourID(s habitat.State, dir int) string {
	n := len(s.Zones)
	if n == 0 {
		return ""
	}
	_, idx, ok := s.Zone(s.Selected)
	if !ok {
		if dir < 0 {
			return s.Zones[n-1].ID
		}
		return s.Zones[0].ID
	}
	return s.Zones[((idx+dir)%n+n)%n].ID
}
