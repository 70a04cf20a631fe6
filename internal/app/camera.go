package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/pkg/geometry"
)

const (
	minPitch = -math.Pi/2 + 0.1
	maxPitch = math.Pi/2 - 0.1
)

// initCamera frames the current scene with the default orbit angles
func (app *App) initCamera() {
	bounds := app.Design.scene.Bounds()
	center := bounds.Center()

	app.Camera.target = rl.NewVector3(float32(center.X), float32(center.Y), float32(center.Z))
	app.Camera.defaultDist = float32(math.Max(bounds.Diagonal()*1.3, 2))
	app.Camera.defaultAngleX = 0.55
	app.Camera.defaultAngleY = 0.6
	app.Camera.camera = rl.Camera3D{
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	app.resetCameraView()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.sceneCenter()
}

// setCameraTopView looks straight down the habitat axis with compass 0° up
func (app *App) setCameraTopView() {
	app.Camera.angleX = maxPitch
	app.Camera.angleY = 0
	app.Camera.target = app.sceneCenter()
}

// setCameraSideView looks at the habitat from the compass 180° side
func (app *App) setCameraSideView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
	app.Camera.target = app.sceneCenter()
}

func (app *App) sceneCenter() rl.Vector3 {
	c := app.Design.scene.Bounds().Center()
	return rl.NewVector3(float32(c.X), float32(c.Y), float32(c.Z))
}

// orbit rotates the camera by a mouse delta in pixels
func (app *App) orbit(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01
	app.Camera.angleX = float32(geometry.Clamp(float64(app.Camera.angleX), minPitch, maxPitch))
}

// zoom scales the orbit distance by a wheel movement
func (app *App) zoom(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	app.Camera.distance = float32(geometry.Clamp(float64(app.Camera.distance), 0.5, 200))
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}
