package viewer

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanWidget(t *testing.T) (*PlanWidget, *habitat.Store) {
	test.NewTempApp(t)
	store := habitat.NewStore(habitat.NewReducer(), habitat.DefaultState())
	p := NewPlanWidget(store)
	p.Resize(fyne.NewSize(400, 400))
	return p, store
}

func dragEvent(from, to fyne.Position) *fyne.DragEvent {
	return &fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: to},
		Dragged:    fyne.Delta{DX: to.X - from.X, DY: to.Y - from.Y},
	}
}

func TestPlanWidgetGestureOffHandleNeverGrabs(t *testing.T) {
	p, store := newTestPlanWidget(t)
	before := store.Snapshot()
	d := p.diagram()
	center := fyne.NewPos(float32(d.Center.X), float32(d.Center.Y))
	handle := fyne.NewPos(float32(d.Handles[1].Pos.X), float32(d.Handles[1].Pos.Y))

	p.Dragged(dragEvent(center, center.AddXY(2, 2)))
	p.Dragged(dragEvent(center.AddXY(2, 2), handle))
	p.Dragged(dragEvent(handle, handle.AddXY(30, 30)))

	after := store.Snapshot()
	assert.False(t, after.Drag.Active)
	assert.Equal(t, before.Zones, after.Zones)

	p.DragEnd()
	assert.Equal(t, dragIdle, p.drag)
}

func TestPlanWidgetDragsHandle(t *testing.T) {
	p, store := newTestPlanWidget(t)
	d := p.diagram()
	hit, ok := d.HitHandle(d.Handles[1].Pos.X, d.Handles[1].Pos.Y)
	require.True(t, ok)

	start := fyne.NewPos(float32(hit.Pos.X), float32(hit.Pos.Y))
	r := math.Hypot(hit.Pos.X-d.Center.X, hit.Pos.Y-d.Center.Y)
	x, y := geometry.AngleToPoint(120, r, 1)
	target := fyne.NewPos(float32(d.Center.X+x), float32(d.Center.Y+y))

	p.Dragged(dragEvent(start, start))
	require.True(t, store.Snapshot().Drag.Active)
	p.Dragged(dragEvent(start, target))
	p.DragEnd()

	s := store.Snapshot()
	assert.False(t, s.Drag.Active)
	z := s.Zones[hit.Index]
	got := z.End
	if hit.Boundary == habitat.BoundaryStart {
		got = z.Start
	}
	assert.InDelta(t, 120, got, 0.5)
}

func TestPlanWidgetPixelViewportMatchesHitTesting(t *testing.T) {
	p, store := newTestPlanWidget(t)
	s := store.Snapshot()

	units := p.viewport(s)
	pixels := p.pixelViewport(s, 800, 800)
	assert.InDelta(t, 2*units.PixelsPerMeter, pixels.PixelsPerMeter, 1e-9)
	assert.InDelta(t, 2*units.CenterX, pixels.CenterX, 1e-9)
}
