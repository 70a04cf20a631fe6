package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/geometry"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/plan"
	"github.com/philipparndt/gohabitat/pkg/scene"
)

const (
	planMarginPx     = 24
	sectorAlpha      = 150
	selectedShade    = 0.35
	planLabelSize    = 16
	planAreaSize     = 13
	previewLabelSize = 14
)

var (
	floorColor    = rl.NewColor(34, 40, 52, 255)
	hullColor     = rl.NewColor(120, 130, 150, 255)
	selectedColor = rl.NewColor(255, 215, 0, 255)
	shellColor    = rl.Fade(rl.NewColor(180, 200, 230, 255), scene.ShellAlpha)
)

// litTriangle is a block facet with lighting baked into its color
type litTriangle struct {
	v1, v2, v3 rl.Vector3
	color      rl.Color
}

// derive rebuilds the plan, scene and report from the latest snapshot
func (app *App) derive() {
	if !app.Design.dirty {
		return
	}
	app.Design.dirty = false

	s := app.Design.store.Snapshot()
	app.Design.snapshot = s
	app.Design.revision = s.Revision

	r := app.Layout.plan
	vp := plan.FitViewport(float64(r.Width), float64(r.Height), s.Envelope.RadiusM, planMarginPx)
	vp.CenterX += float64(r.X)
	vp.CenterY += float64(r.Y)
	app.Design.diagram = plan.Build(s, vp)

	app.Design.scene = scene.Build(s)
	app.Design.faces = bakeLighting(app.Design.scene)
	app.Design.report = analysis.Analyze(s, app.Design.rules...)
}

// bakeLighting converts scene blocks to triangles with diffuse lighting
// baked into the vertex color
func bakeLighting(sc scene.Scene) []litTriangle {
	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	var faces []litTriangle
	for _, b := range sc.Blocks {
		hex := b.Color
		if b.Selected {
			hex = habitat.Shade(hex, selectedShade)
		}
		base := habitat.RGBA(hex, 255)

		for _, t := range b.Triangles() {
			normal := t.CalculateNormal()
			// Min 30% ambient, max 100% diffuse
			intensity := math.Max(0.3, -normal.Dot(lightDir))
			faces = append(faces, litTriangle{
				v1: vec3(t.V1),
				v2: vec3(t.V2),
				v3: vec3(t.V3),
				color: rl.NewColor(
					uint8(float64(base.R)*intensity),
					uint8(float64(base.G)*intensity),
					uint8(float64(base.B)*intensity),
					255,
				),
			})
		}
	}
	return faces
}

func vec3(v geometry.Vector3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func vec2(p plan.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// drawPlan draws the 2D cross-section with sectors, labels and handles
func (app *App) drawPlan() {
	d := app.Design.diagram
	center := vec2(d.Center)

	rl.DrawCircleV(center, float32(d.OuterRadiusPx), rl.NewColor(26, 30, 40, 255))
	rl.DrawCircleV(center, float32(d.UsableRadiusPx), floorColor)

	for _, sec := range d.Sectors {
		fill := habitat.RGBA(sec.Color, sectorAlpha)
		pts := sec.Outline
		// Compass order is clockwise on screen; raylib wants counter-clockwise
		for i := 1; i+1 < len(pts); i++ {
			rl.DrawTriangle(vec2(pts[0]), vec2(pts[i+1]), vec2(pts[i]), fill)
		}

		stroke := habitat.RGBA(habitat.Shade(sec.Color, -0.4), 255)
		thick := float32(1.5)
		if sec.Selected {
			stroke = selectedColor
			thick = 3
		}
		for i := range pts {
			rl.DrawLineEx(vec2(pts[i]), vec2(pts[(i+1)%len(pts)]), thick, stroke)
		}
	}

	rl.DrawCircleLinesV(center, float32(d.OuterRadiusPx), hullColor)
	rl.DrawCircleLinesV(center, float32(d.UsableRadiusPx), rl.Gray)

	for _, sec := range d.Sectors {
		app.drawCenteredText(sec.LabelText, vec2(sec.Label), planLabelSize, rl.White)
		below := vec2(sec.Label)
		below.Y += planLabelSize
		app.drawCenteredText(sec.AreaText, below, planAreaSize, rl.LightGray)
	}

	for _, h := range d.Handles {
		col := rl.White
		if h.Active {
			col = selectedColor
		}
		rl.DrawCircleV(vec2(h.Pos), plan.HandleRadiusPx, col)
		rl.DrawCircleLinesV(vec2(h.Pos), plan.HandleRadiusPx, rl.DarkGray)
	}
}

// drawPreviewTexture renders the 3D scene into the preview render texture
func (app *App) drawPreviewTexture() {
	sc := app.Design.scene
	tex := app.UI.preview
	w, h := tex.Texture.Width, tex.Texture.Height

	rl.BeginTextureMode(tex)
	rl.ClearBackground(rl.NewColor(20, 24, 32, 255))

	rl.BeginMode3D(app.Camera.camera)
	rl.DrawGrid(int32(math.Ceil(sc.UsableRadiusM*2))+2, 1)

	for _, f := range app.Design.faces {
		rl.DrawTriangle3D(f.v1, f.v2, f.v3, f.color)
	}
	for _, b := range sc.Blocks {
		if b.Selected {
			drawBlockEdges(b, selectedColor)
		}
	}

	radius := float32(sc.UsableRadiusM)
	height := float32(sc.UsableHeightM)
	rl.DrawCylinderWires(rl.NewVector3(0, 0, 0), radius, radius, height, scene.ShellSegments/4, rl.Fade(hullColor, 0.5))
	rl.DrawCylinder(rl.NewVector3(0, 0, 0), radius, radius, height, scene.ShellSegments, shellColor)
	rl.EndMode3D()

	cam := app.Camera.camera
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	for _, l := range sc.Labels {
		pos := vec3(l.Position)
		if rl.Vector3DotProduct(rl.Vector3Subtract(pos, cam.Position), forward) <= 0 {
			continue
		}
		screen := rl.GetWorldToScreenEx(pos, cam, w, h)
		app.drawCenteredText(l.Text, screen, previewLabelSize, habitat.RGBA(l.Color, 255))
	}

	rl.EndTextureMode()
}

// drawPreview blits the preview texture into its layout slot
func (app *App) drawPreview() {
	tex := app.UI.preview.Texture
	// Render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.NewVector2(app.Layout.preview.X, app.Layout.preview.Y), rl.White)
	rl.DrawRectangleLinesEx(app.Layout.preview, 1, rl.DarkGray)
}

// drawBlockEdges outlines a block's twelve edges
func drawBlockEdges(b scene.Block, col rl.Color) {
	signs := [2]float64{-1, 1}
	for _, sx := range signs {
		for _, sy := range signs {
			for _, sz := range signs {
				from := b.Corner(sx, sy, sz)
				if sx < 0 {
					rl.DrawLine3D(vec3(from), vec3(b.Corner(1, sy, sz)), col)
				}
				if sy < 0 {
					rl.DrawLine3D(vec3(from), vec3(b.Corner(sx, 1, sz)), col)
				}
				if sz < 0 {
					rl.DrawLine3D(vec3(from), vec3(b.Corner(sx, sy, 1)), col)
				}
			}
		}
	}
}

func (app *App) drawCenteredText(text string, at rl.Vector2, size float32, col rl.Color) {
	if text == "" {
		return
	}
	m := rl.MeasureTextEx(app.UI.font, text, size, 1)
	rl.DrawTextEx(app.UI.font, text, rl.Vector2{X: at.X - m.X/2, Y: at.Y - m.Y/2}, size, 1, col)
}
