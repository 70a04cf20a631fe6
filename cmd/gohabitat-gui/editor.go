package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/philipparndt/gohabitat/pkg/viewer"
	"go.uber.org/zap"
)

// selfWriteGrace hides watcher events caused by our own exports
const selfWriteGrace = 1500 * time.Millisecond

var partitionChoices = []string{"1", "2", "3", "4"}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// editor is the fyne window content bound to one store
type editor struct {
	window fyne.Window
	store  *habitat.Store
	rules  []habitat.Rule
	path   string
	logger *zap.Logger

	mu          sync.Mutex
	ignoreUntil time.Time

	plan    *viewer.PlanWidget
	preview *viewer.PreviewWidget

	zones    []habitat.Zone
	zoneList *widget.List
	updating bool

	radius, height, wall *widget.Entry
	crew, days           *widget.Entry

	name       *widget.Entry
	purpose    *widget.Select
	start, end *widget.Entry
	color      *widget.Entry
	partition  *widget.Select

	report  *widget.Label
	verdict *widget.Label
	status  *widget.Label
}

func newEditor(w fyne.Window, store *habitat.Store, rules []habitat.Rule, path string, logger *zap.Logger) *editor {
	return &editor{window: w, store: store, rules: rules, path: path, logger: logger}
}

// build creates the widgets and subscribes them to the store
func (e *editor) build() fyne.CanvasObject {
	s := e.store.Snapshot()

	e.plan = viewer.NewPlanWidget(e.store)
	e.preview = viewer.NewPreviewWidget(scene.Build(s))

	e.radius, e.height, e.wall = widget.NewEntry(), widget.NewEntry(), widget.NewEntry()
	e.crew, e.days = widget.NewEntry(), widget.NewEntry()
	envelopeForm := widget.NewForm(
		widget.NewFormItem("Radius (m)", e.radius),
		widget.NewFormItem("Height (m)", e.height),
		widget.NewFormItem("Wall (m)", e.wall),
		widget.NewFormItem("Crew", e.crew),
		widget.NewFormItem("Mission days", e.days),
	)
	envelopeForm.SubmitText = "Apply envelope"
	envelopeForm.OnSubmit = e.applyEnvelope

	e.zoneList = widget.NewList(
		func() int { return len(e.zones) },
		func() fyne.CanvasObject { return widget.NewLabel("zone template name") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			z := e.zones[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s  %s to %s  (%s)", z.Name,
				analysis.FormatAngle(z.Start), analysis.FormatAngle(z.End), z.Purpose))
		},
	)
	e.zoneList.OnSelected = func(id widget.ListItemID) {
		if e.updating || id >= len(e.zones) {
			return
		}
		e.store.Dispatch(habitat.Select{ID: e.zones[id].ID})
	}

	purposes := make([]string, 0, len(habitat.Purposes()))
	for _, p := range habitat.Purposes() {
		purposes = append(purposes, p.String())
	}
	e.name, e.start, e.end, e.color = widget.NewEntry(), widget.NewEntry(), widget.NewEntry(), widget.NewEntry()
	e.purpose = widget.NewSelect(purposes, nil)
	zoneForm := widget.NewForm(
		widget.NewFormItem("Name", e.name),
		widget.NewFormItem("Purpose", e.purpose),
		widget.NewFormItem("Start (°)", e.start),
		widget.NewFormItem("End (°)", e.end),
		widget.NewFormItem("Color", e.color),
	)
	zoneForm.SubmitText = "Apply zone"
	zoneForm.OnSubmit = e.applyZone

	e.partition = widget.NewSelect(partitionChoices, nil)
	e.partition.SetSelected("2")

	zoneButtons := container.NewGridWithColumns(2,
		widget.NewButton("Add zone", func() {
			next := e.store.Dispatch(habitat.AddZone{})
			e.store.Dispatch(habitat.Select{ID: next.LastAddedID})
		}),
		widget.NewButton("Remove zone", func() {
			if id := e.store.Snapshot().Selected; id != "" {
				e.store.Dispatch(habitat.RemoveZone{ID: id})
			}
		}),
		widget.NewButton("Auto-partition", func() {
			n, _ := strconv.Atoi(e.partition.Selected)
			e.store.Dispatch(habitat.AutoPartition{N: n})
		}),
		e.partition,
	)

	e.report = widget.NewLabel("")
	e.report.TextStyle = fyne.TextStyle{Monospace: true}
	e.verdict = widget.NewLabel("")
	e.verdict.TextStyle = fyne.TextStyle{Bold: true}
	e.status = widget.NewLabel("")

	fileButtons := container.NewGridWithColumns(3,
		widget.NewButton("Open…", e.showOpenDialog),
		widget.NewButton("Export", e.export),
		widget.NewButton("Reset", func() { e.store.Dispatch(habitat.Reset{}) }),
	)

	sidebar := container.NewVBox(
		widget.NewLabel("Envelope & crew:"),
		envelopeForm,
		widget.NewSeparator(),
		widget.NewLabel("Zones:"),
		container.NewGridWrap(fyne.NewSize(340, 160), e.zoneList),
		zoneButtons,
		zoneForm,
		widget.NewSeparator(),
		e.verdict,
		e.report,
		widget.NewSeparator(),
		fileButtons,
		e.status,
	)
	sidebarScroll := container.NewVScroll(sidebar)
	sidebarScroll.SetMinSize(fyne.NewSize(360, 0))

	e.store.Subscribe(func(s habitat.State) {
		fyne.Do(func() { e.refresh(s) })
	})
	e.refresh(s)

	views := container.NewHSplit(e.plan, e.preview)
	return container.NewBorder(nil, nil, nil, sidebarScroll, views)
}

// refresh pushes a snapshot into every widget
func (e *editor) refresh(s habitat.State) {
	e.updating = true
	defer func() { e.updating = false }()

	e.plan.Refresh()
	e.preview.SetScene(scene.Build(s))

	e.radius.SetText(formatFloat(s.Envelope.RadiusM))
	e.height.SetText(formatFloat(s.Envelope.HeightM))
	e.wall.SetText(formatFloat(s.Envelope.WallThicknessM))
	e.crew.SetText(strconv.Itoa(s.Mission.CrewSize))
	e.days.SetText(strconv.Itoa(s.Mission.MissionDays))

	e.zones = s.Zones
	e.zoneList.Refresh()
	if z, idx, ok := s.Zone(s.Selected); ok {
		e.zoneList.Select(idx)
		e.name.SetText(z.Name)
		e.purpose.SetSelected(z.Purpose.String())
		e.start.SetText(formatFloat(z.Start))
		e.end.SetText(formatFloat(z.End))
		e.color.SetText(z.Color)
	} else {
		e.zoneList.UnselectAll()
		for _, entry := range []*widget.Entry{e.name, e.start, e.end, e.color} {
			entry.SetText("")
		}
		e.purpose.ClearSelected()
	}

	report := analysis.Analyze(s, e.rules...)
	var buf bytes.Buffer
	if err := analysis.WriteSections(&buf, report.Sections...); err != nil {
		e.logger.Error("failed to format report", zap.Error(err))
	}
	e.report.SetText(strings.TrimRight(buf.String(), "\n"))
	if report.Compliant {
		e.verdict.SetText("Result: compliant")
	} else {
		e.verdict.SetText("Result: non-compliant")
	}
}

func (e *editor) applyEnvelope() {
	radius, errR := strconv.ParseFloat(e.radius.Text, 64)
	height, errH := strconv.ParseFloat(e.height.Text, 64)
	wall, errW := strconv.ParseFloat(e.wall.Text, 64)
	crew, errC := strconv.Atoi(e.crew.Text)
	days, errD := strconv.Atoi(e.days.Text)
	if err := errors.Join(errR, errH, errW, errC, errD); err != nil {
		dialog.ShowError(fmt.Errorf("invalid envelope: %w", err), e.window)
		return
	}
	e.store.Dispatch(habitat.SetEnvelope{RadiusM: radius, HeightM: height, WallThicknessM: wall})
	e.store.Dispatch(habitat.SetMission{CrewSize: crew, MissionDays: days})
}

func (e *editor) applyZone() {
	id := e.store.Snapshot().Selected
	if id == "" {
		dialog.ShowInformation("No zone selected", "Select a zone in the list or on the plan first.", e.window)
		return
	}
	start, errS := strconv.ParseFloat(e.start.Text, 64)
	end, errE := strconv.ParseFloat(e.end.Text, 64)
	if err := errors.Join(errS, errE); err != nil {
		dialog.ShowError(fmt.Errorf("invalid angle: %w", err), e.window)
		return
	}
	if !habitat.ValidColor(e.color.Text) {
		dialog.ShowError(fmt.Errorf("invalid color %q", e.color.Text), e.window)
		return
	}

	for _, a := range []habitat.UpdateZone{
		{ID: id, Field: habitat.FieldName, Text: e.name.Text},
		{ID: id, Field: habitat.FieldPurpose, Text: e.purpose.Selected},
		{ID: id, Field: habitat.FieldColor, Text: e.color.Text},
		{ID: id, Field: habitat.FieldEnd, Number: end},
		{ID: id, Field: habitat.FieldStart, Number: start},
	} {
		e.store.Dispatch(a)
	}
}

func (e *editor) export() {
	e.mu.Lock()
	e.ignoreUntil = time.Now().Add(selfWriteGrace)
	e.mu.Unlock()

	if err := habitat.ExportFile(e.path, e.store.Snapshot()); err != nil {
		e.logger.Error("export failed", zap.Error(err))
		dialog.ShowError(err, e.window)
		return
	}
	e.logger.Info("design exported", zap.String("path", e.path))
	e.status.SetText("Exported " + e.path)
}

func (e *editor) showOpenDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, e.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		doc, err := habitat.ReadDocument(reader)
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to load design: %w", err), e.window)
			return
		}
		e.store.Dispatch(habitat.LoadDesign{Design: doc.State()})
		e.status.SetText("Opened " + reader.URI().Path())
	}, e.window)
}

// reloadFromDisk runs on the watcher goroutine
func (e *editor) reloadFromDisk(path string) {
	e.mu.Lock()
	skip := time.Now().Before(e.ignoreUntil)
	e.mu.Unlock()
	if skip {
		return
	}

	s, err := habitat.LoadFile(path)
	fyne.Do(func() {
		if err != nil {
			e.status.SetText(fmt.Sprintf("Reload failed: %v", err))
			return
		}
		e.store.Dispatch(habitat.LoadDesign{Design: s})
		e.status.SetText("Reloaded " + path)
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
