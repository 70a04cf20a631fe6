package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/version"
)

const statusSeconds = 4

var helpLines = []string{
	"Drag handle: move boundary   Click: select",
	"A: add zone   Del: remove   Tab: next   U: purpose",
	"P: partition levels   [ ]: radius   - =: height",
	"Up/Down: crew   Ctrl+S: export   Ctrl+R: reset",
	"Home: reset view   T: top   1: side",
}

// drawUI draws the metrics panel, status line and help
func (app *App) drawUI() {
	panel := app.Layout.panel
	x := panel.X + 12
	y := panel.Y + 10
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	rl.DrawRectangleRec(panel, rl.NewColor(22, 26, 34, 255))

	report := app.Design.report
	for _, section := range panelSections(report) {
		rl.DrawTextEx(app.UI.font, section.Title+":", rl.Vector2{X: x, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		for _, row := range section.Rows {
			rl.DrawTextEx(app.UI.font, row.Label, rl.Vector2{X: x + 8, Y: y}, fontSize14, 1, rl.LightGray)
			rl.DrawTextEx(app.UI.font, row.Value, rl.Vector2{X: x + 150, Y: y}, fontSize14, 1, rl.White)
			y += lineHeight
		}
		y += 4
	}

	verdict, verdictColor := "COMPLIANT", rl.Lime
	if !report.Compliant {
		verdict, verdictColor = "NON-COMPLIANT", rl.NewColor(255, 100, 100, 255)
	}
	rl.DrawTextEx(app.UI.font, verdict, rl.Vector2{X: x, Y: y}, fontSize16, 1, verdictColor)
	y += lineHeight * 1.5

	if z, ok := app.Design.snapshot.SelectedZone(); ok {
		text := fmt.Sprintf("Selected: %s (%s) %s to %s", z.Name, z.Purpose,
			analysis.FormatAngle(z.Start), analysis.FormatAngle(z.End))
		rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: x, Y: y}, fontSize14, 1, selectedColor)
		y += lineHeight
	}

	for _, line := range helpLines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: x, Y: y}, fontSize12, 1, rl.Gray)
		y += lineHeight * 0.8
	}

	// Loading indicator
	app.FileWatch.mu.Lock()
	loading, started := app.FileWatch.isLoading, app.FileWatch.loadStart
	app.FileWatch.mu.Unlock()
	if loading {
		elapsed := time.Since(started).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[int(elapsed*10)%len(spinnerChars)], elapsed)
		rl.DrawRectangle(10, 10, 250, 40, rl.NewColor(0, 0, 0, 200))
		rl.DrawTextEx(app.UI.font, loadingText, rl.Vector2{X: 20, Y: 22}, fontSize16, 1, rl.Yellow)
	}

	// Status message and version in the bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	if app.UI.status != "" && rl.GetTime()-app.UI.statusTime < statusSeconds {
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: 10, Y: bottomY - lineHeight}, fontSize14, 1, rl.SkyBlue)
	}
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}

// panelSections keeps the sections that fit the side panel; per-zone rows
// are shown on the plan instead
func panelSections(r analysis.Report) []analysis.Section {
	var out []analysis.Section
	for _, s := range r.Sections {
		if s.Title == "Zones" {
			continue
		}
		out = append(out, s)
	}
	return out
}
