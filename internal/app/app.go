// Package app is the raylib habitat editor: a 2D plan with draggable zone
// boundaries, a 3D preview and a metrics panel, all driven by one store.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"go.uber.org/zap"
)

// Options configures an editor session
type Options struct {
	DesignFile string // loaded at start, watched and used as export target
	ConfigFile string // watched for live reload when set
	Config     *config.Config
	Logger     *zap.Logger
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reducer := cfg.NewReducer()
	initial := reducer.Defaults()
	if opts.DesignFile != "" {
		loaded, err := habitat.LoadFile(opts.DesignFile)
		switch {
		case err == nil:
			initial = reducer.Reduce(initial, habitat.LoadDesign{Design: loaded})
		case isNotExist(err):
			logger.Info("design file does not exist yet, starting from defaults", zap.String("path", opts.DesignFile))
		default:
			return fmt.Errorf("failed to load design: %w", err)
		}
	}

	app := &App{
		Config: cfg,
		Logger: logger,
		Design: DesignState{
			reducer: reducer,
			rules:   cfg.RuleSet(),
			store:   habitat.NewStore(reducer, initial),
			dirty:   true,
		},
		FileWatch: FileWatchState{
			designFile: opts.DesignFile,
			configFile: opts.ConfigFile,
		},
		Interaction: InteractionState{partitionN: 1},
	}
	if app.FileWatch.designFile == "" {
		app.FileWatch.designFile = cfg.Export.Filename
	}

	app.Design.store.Subscribe(func(habitat.State) {
		app.Design.dirty = true
	})

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Editor.Width), int32(cfg.Editor.Height), "gohabitat")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	if err := app.setupFileWatcher(); err != nil {
		logger.Warn("auto-reload not available", zap.Error(err))
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	app.UI.font = rl.GetFontDefault()
	app.updateLayout()
	app.derive()
	app.initCamera()

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// File changes are flagged by the watcher goroutine and applied here
		app.applyReload()

		if rl.IsWindowResized() {
			app.updateLayout()
			app.Design.dirty = true
		}

		app.handleInput()
		app.derive()
		app.updateCamera()

		app.drawPreviewTexture()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))
		app.drawPlan()
		app.drawPreview()
		app.drawUI()
		rl.EndDrawing()
	}

	rl.UnloadRenderTexture(app.UI.preview)
	return nil
}

// updateLayout places the plan on the left, the preview top right and the
// panel below the preview
func (app *App) updateLayout() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	panelWidth := float32(380)
	planWidth := w - panelWidth

	app.Layout = Layout{
		plan:    rl.NewRectangle(0, 0, planWidth, h),
		preview: rl.NewRectangle(planWidth, 0, panelWidth, panelWidth),
		panel:   rl.NewRectangle(planWidth, panelWidth, panelWidth, h-panelWidth),
	}

	if app.UI.preview.ID != 0 {
		rl.UnloadRenderTexture(app.UI.preview)
	}
	app.UI.preview = rl.LoadRenderTexture(int32(panelWidth), int32(panelWidth))
}

// setStatus shows a transient message in the panel and logs it
func (app *App) setStatus(format string, args ...any) {
	app.UI.status = fmt.Sprintf(format, args...)
	app.UI.statusTime = rl.GetTime()
	app.Logger.Info(app.UI.status)
}
