package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/plan"
	"github.com/philipparndt/gohabitat/pkg/scene"
)

const planMarginPx = 24

// PreviewWidget shows the 3D preview and orbits it on drag
type PreviewWidget struct {
	widget.BaseWidget
	mu     sync.Mutex
	scene  scene.Scene
	camera *Camera
	raster *canvas.Raster
}

// NewPreviewWidget creates a preview of sc
func NewPreviewWidget(sc scene.Scene) *PreviewWidget {
	p := &PreviewWidget{
		scene:  sc,
		camera: NewCamera(sc.Bounds()),
	}
	p.raster = canvas.NewRaster(p.draw)
	p.raster.SetMinSize(fyne.NewSize(360, 360))
	p.ExtendBaseWidget(p)
	return p
}

// SetScene replaces the displayed scene, keeping the camera angles
func (p *PreviewWidget) SetScene(sc scene.Scene) {
	p.mu.Lock()
	p.scene = sc
	p.camera.Target = sc.Bounds().Center()
	p.mu.Unlock()
	p.Refresh()
}

func (p *PreviewWidget) draw(w, h int) image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return RenderScene(p.scene, p.camera, w, h)
}

// CreateRenderer creates the renderer for the widget
func (p *PreviewWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

// Dragged handles mouse drag events for rotation
func (p *PreviewWidget) Dragged(event *fyne.DragEvent) {
	p.mu.Lock()
	p.camera.Rotate(float64(event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
	p.mu.Unlock()
	p.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (p *PreviewWidget) DragEnd() {}

// Scrolled handles scroll events for zooming
func (p *PreviewWidget) Scrolled(event *fyne.ScrollEvent) {
	p.mu.Lock()
	p.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	p.mu.Unlock()
	p.raster.Refresh()
}

// PlanWidget shows the plan diagram and turns pointer input into store
// actions: dragging a handle resizes its zone, tapping a sector selects it.
type PlanWidget struct {
	widget.BaseWidget
	store  *habitat.Store
	raster *canvas.Raster
	drag   planDrag
}

type planDrag int

const (
	dragIdle planDrag = iota
	dragHandle
	dragMissed
)

// NewPlanWidget creates a plan view bound to store
func NewPlanWidget(store *habitat.Store) *PlanWidget {
	p := &PlanWidget{store: store}
	p.raster = canvas.NewRaster(func(w, h int) image.Image {
		s := store.Snapshot()
		return RenderPlan(plan.Build(s, p.pixelViewport(s, w, h)), w, h)
	})
	p.raster.SetMinSize(fyne.NewSize(360, 360))
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer creates the renderer for the widget
func (p *PlanWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

// viewport lays out the plan in widget units
func (p *PlanWidget) viewport(s habitat.State) plan.Viewport {
	size := p.Size()
	return plan.FitViewport(float64(size.Width), float64(size.Height), s.Envelope.RadiusM, planMarginPx)
}

// pixelViewport is viewport scaled to a w×h pixel raster, so the image and
// the hit tests agree on where each handle sits
func (p *PlanWidget) pixelViewport(s habitat.State, w, h int) plan.Viewport {
	size := p.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return plan.FitViewport(float64(w), float64(h), s.Envelope.RadiusM, planMarginPx)
	}
	return p.viewport(s).Scaled(float64(w) / float64(size.Width))
}

// diagram lays out the plan in widget coordinates for hit testing
func (p *PlanWidget) diagram() plan.Diagram {
	s := p.store.Snapshot()
	return plan.Build(s, p.viewport(s))
}

// Dragged decides on the first event of a gesture whether it grabbed a
// handle; a gesture that started elsewhere never grabs one later
func (p *PlanWidget) Dragged(event *fyne.DragEvent) {
	if p.drag == dragMissed {
		return
	}
	d := p.diagram()
	x, y := float64(event.Position.X), float64(event.Position.Y)

	if p.drag == dragIdle {
		startX, startY := x-float64(event.Dragged.DX), y-float64(event.Dragged.DY)
		h, ok := d.HitHandle(startX, startY)
		if !ok {
			p.drag = dragMissed
			return
		}
		p.store.Dispatch(habitat.BeginDrag{Index: h.Index, Boundary: h.Boundary})
		p.drag = dragHandle
	}

	dx, dy := d.Relative(x, y)
	p.store.Dispatch(habitat.DragTo{DX: dx, DY: dy})
}

// DragEnd handles the end of a drag event
func (p *PlanWidget) DragEnd() {
	if p.drag == dragHandle {
		p.store.Dispatch(habitat.EndDrag{})
	}
	p.drag = dragIdle
}

// Tapped selects the zone under the pointer, or clears the selection
func (p *PlanWidget) Tapped(event *fyne.PointEvent) {
	s, ok := p.diagram().HitSector(float64(event.Position.X), float64(event.Position.Y))
	if !ok {
		p.store.Dispatch(habitat.Select{})
		return
	}
	p.store.Dispatch(habitat.Select{ID: s.ZoneID})
}

// Refresh redraws the plan from the current store state
func (p *PlanWidget) Refresh() {
	p.raster.Refresh()
	p.BaseWidget.Refresh()
}
