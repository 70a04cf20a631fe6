package app

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/pkg/habitat"
)

const (
	radiusStepM  = 0.1
	heightStepM  = 0.5
	maxPartition = 4
)

// handleInput processes user input
func (app *App) handleInput() {
	app.handleKeys()

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	d := app.Design.diagram

	// Boundary drags on the plan
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case rl.CheckCollisionPointRec(mouse, app.Layout.preview):
			app.Interaction.orbiting = true
		case rl.CheckCollisionPointRec(mouse, app.Layout.plan):
			if h, ok := d.HitHandle(x, y); ok {
				app.Design.store.Dispatch(habitat.BeginDrag{Index: h.Index, Boundary: h.Boundary})
				app.Interaction.dragging = true
			} else if sec, ok := d.HitSector(x, y); ok {
				app.Design.store.Dispatch(habitat.Select{ID: sec.ZoneID})
			} else {
				app.Design.store.Dispatch(habitat.Select{})
			}
		}
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			switch {
			case app.Interaction.dragging:
				dx, dy := d.Relative(x, y)
				app.Design.store.Dispatch(habitat.DragTo{DX: dx, DY: dy})
			case app.Interaction.orbiting:
				app.orbit(delta)
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if app.Interaction.dragging {
			app.Design.store.Dispatch(habitat.EndDrag{})
		}
		app.Interaction.dragging = false
		app.Interaction.orbiting = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && rl.CheckCollisionPointRec(mouse, app.Layout.preview) {
		app.zoom(wheel)
	}
}

// handleKeys maps keyboard shortcuts to store actions
func (app *App) handleKeys() {
	store := app.Design.store
	s := app.Design.snapshot
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if ctrlPressed {
		if rl.IsKeyPressed(rl.KeyS) {
			app.exportDesign()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			store.Dispatch(habitat.Reset{})
			app.setStatus("Design reset")
		}
		return
	}

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraSideView()
	}

	if rl.IsKeyPressed(rl.KeyA) {
		next := store.Dispatch(habitat.AddZone{})
		store.Dispatch(habitat.Select{ID: next.LastAddedID})
	}
	if rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) {
		if s.Selected != "" {
			store.Dispatch(habitat.RemoveZone{ID: s.Selected})
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		store.Dispatch(habitat.Select{ID: nextZoneID(s, shiftPressed)})
	}
	if rl.IsKeyPressed(rl.KeyU) {
		if z, ok := s.SelectedZone(); ok {
			store.Dispatch(habitat.UpdateZone{ID: z.ID, Field: habitat.FieldPurpose, Text: nextPurpose(z.Purpose).String()})
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.Interaction.partitionN = app.Interaction.partitionN%maxPartition + 1
		store.Dispatch(habitat.AutoPartition{N: app.Interaction.partitionN})
		app.setStatus("Partitioned into %d level(s)", app.Interaction.partitionN)
	}

	env := s.Envelope
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		store.Dispatch(habitat.SetEnvelope{RadiusM: env.RadiusM + radiusStepM, HeightM: env.HeightM})
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		store.Dispatch(habitat.SetEnvelope{RadiusM: env.RadiusM - radiusStepM, HeightM: env.HeightM})
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		store.Dispatch(habitat.SetEnvelope{RadiusM: env.RadiusM, HeightM: env.HeightM + heightStepM})
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		store.Dispatch(habitat.SetEnvelope{RadiusM: env.RadiusM, HeightM: env.HeightM - heightStepM})
	}

	m := s.Mission
	if rl.IsKeyPressed(rl.KeyUp) {
		store.Dispatch(habitat.SetMission{CrewSize: m.CrewSize + 1, MissionDays: m.MissionDays})
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		store.Dispatch(habitat.SetMission{CrewSize: m.CrewSize - 1, MissionDays: m.MissionDays})
	}
}

// nextZoneID cycles the selection through the zones in order
func nextZoneID(s habitat.State, backwards bool) string {
	n := len(s.Zones)
	if n == 0 {
		return ""
	}
	_, idx, ok := s.Zone(s.Selected)
	switch {
	case !ok && backwards:
		idx = n - 1
	case !ok:
		idx = 0
	case backwards:
		idx = (idx + n - 1) % n
	default:
		idx = (idx + 1) % n
	}
	return s.Zones[idx].ID
}

func nextPurpose(p habitat.Purpose) habitat.Purpose {
	all := habitat.Purposes()
	return all[(int(p)+1)%len(all)]
}

func sameFile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
