package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gohabitat/internal/config"
	"github.com/philipparndt/gohabitat/pkg/analysis"
	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/philipparndt/gohabitat/pkg/plan"
	"github.com/philipparndt/gohabitat/pkg/scene"
	"github.com/philipparndt/gohabitat/pkg/watcher"
	"go.uber.org/zap"
)

// CameraState holds the orbit camera of the 3D preview
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// DesignState holds the store and everything derived from its last snapshot
type DesignState struct {
	store    *habitat.Store
	reducer  *habitat.Reducer
	rules    []habitat.Rule
	snapshot habitat.State
	diagram  plan.Diagram
	scene    scene.Scene
	faces    []litTriangle
	report   analysis.Report
	revision uint64
	dirty    bool // snapshot changed since the last derive
}

// Layout splits the window into plan, preview and side panel
type Layout struct {
	plan    rl.Rectangle
	preview rl.Rectangle
	panel   rl.Rectangle
}

// InteractionState holds mouse state
type InteractionState struct {
	dragging   bool // a zone boundary is held
	orbiting   bool
	partitionN int
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	designFile  string
	configFile  string
	fileWatcher *watcher.FileWatcher
	mu          sync.Mutex
	pending     []string // changed paths not yet handled on the main loop
	ignoreUntil time.Time
	isLoading   bool
	loaded      *habitat.State
	loadErr     error
	loadStart   time.Time
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	status     string
	statusTime float64
	preview    rl.RenderTexture2D
}

// App is the interactive habitat editor
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Camera      CameraState
	Design      DesignState
	Layout      Layout
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}
