package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *habitat.Store) {
	t.Helper()
	reducer := habitat.NewReducer()
	store := habitat.NewStore(reducer, reducer.Defaults())
	return New(store, habitat.DefaultRules(), filepath.Join(t.TempDir(), "design.json")), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestSelectionCycles(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "sleep", store.Snapshot().Selected)

	m = send(m, runes("j"), runes("j"))
	assert.Equal(t, "lifesupport", m.State().Selected)

	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, runes("k"), runes("k"))
	assert.Equal(t, "storage", m.State().Selected, "selection wraps backwards")
}

func TestAddAndRemove(t *testing.T) {
	m, store := newTestModel(t)

	m = send(m, runes("a"))
	s := store.Snapshot()
	require.Len(t, s.Zones, 5)
	added := s.Zones[4]
	assert.Equal(t, added.ID, s.Selected)
	assert.Equal(t, 0.0, added.Start)
	assert.Equal(t, 60.0, added.End)
	assert.Contains(t, m.status, added.ID)

	m = send(m, tea.KeyMsg{Type: tea.KeyDelete})
	s = store.Snapshot()
	assert.Len(t, s.Zones, 4)
	assert.Empty(t, s.Selected)

	// Nothing selected: remove is a no-op
	send(m, runes("d"))
	assert.Len(t, store.Snapshot().Zones, 4)
}

func TestNudgeBoundaries(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "work"})
	m.refresh()

	send(m, runes("]"), runes("}"), runes("}"))
	z, _, _ := store.Snapshot().Zone("work")
	assert.Equal(t, 95.0, z.Start)
	assert.Equal(t, 210.0, z.End)
}

func TestEditStartThroughInput(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "sleep"})
	m.refresh()

	m = send(m, runes("s"))
	require.Equal(t, modeStart, m.mode)
	assert.Equal(t, "0", m.input.Value())

	m.input.SetValue("120")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)

	z, _, _ := store.Snapshot().Zone("sleep")
	assert.Equal(t, 120.0, z.Start)
	assert.Equal(t, 121.0, z.End, "end is bumped to keep the zone ordered")
}

func TestInvalidNumberKeepsInputOpen(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "sleep"})
	m.refresh()

	m = send(m, runes("e"))
	m.input.SetValue("ninety")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeEnd, m.mode)
	assert.Contains(t, m.status, "not a number")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeNormal, m.mode)
	z, _, _ := store.Snapshot().Zone("sleep")
	assert.Equal(t, 90.0, z.End)
}

func TestRename(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "work"})
	m.refresh()

	m = send(m, runes("n"))
	m.input.SetValue("Lab")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	z, _, _ := store.Snapshot().Zone("work")
	assert.Equal(t, "Lab", z.Name)
}

func TestPurposeCrewAndPartition(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "storage"})
	m.refresh()

	m = send(m, runes("u"), runes("+"), runes("+"), runes("p"), runes("p"))
	s := store.Snapshot()

	z, _, _ := s.Zone("storage")
	assert.Equal(t, habitat.PurposeHygiene, z.Purpose)
	assert.Equal(t, 6, s.Mission.CrewSize)
	require.NotNil(t, s.Zones[1].AxialRank)
	assert.Equal(t, 1, *s.Zones[1].AxialRank)
	assert.Equal(t, 2, *s.Zones[2].AxialRank)
	assert.Equal(t, 0, *s.Zones[3].AxialRank, "second press partitions into three levels")

	send(m, runes("-"), runes("-"), runes("-"), runes("-"), runes("-"), runes("-"), runes("-"))
	assert.Equal(t, 1, store.Snapshot().Mission.CrewSize, "crew is clamped at one")
}

func TestExportAndReset(t *testing.T) {
	m, store := newTestModel(t)
	m = send(m, runes("a"), tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.status, "Exported")

	saved, err := habitat.LoadFile(m.exportPath)
	require.NoError(t, err)
	assert.Len(t, saved.Zones, 5)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Len(t, store.Snapshot().Zones, 4)
	assert.Equal(t, "Design reset", m.status)
}

func TestReloadMessage(t *testing.T) {
	m, store := newTestModel(t)

	loaded := habitat.DefaultState()
	loaded.Zones = loaded.Zones[:2]
	m = send(m, reloadMsg{state: loaded})
	assert.Len(t, store.Snapshot().Zones, 2)
	assert.Len(t, m.State().Zones, 2)

	m = send(m, reloadMsg{err: errors.New("boom")})
	assert.Contains(t, m.status, "boom")
	assert.Len(t, store.Snapshot().Zones, 2)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, store := newTestModel(t)
	store.Dispatch(habitat.Select{ID: "sleep"})
	m.refresh()

	out := m.View()
	for _, want := range []string{"Sleep", "Life Support", "FAIL", "6.83 m²", "Crew", "ctrl+s export"} {
		assert.Contains(t, out, want)
	}
}
