// Package app wires the editor to a raylib window: it polls input, runs the
// wall editor, draws the scene and handles saving.
package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/editor"
	"github.com/pthm-cable/wallgrid/export"
	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/renderer"
	"github.com/pthm-cable/wallgrid/telemetry"
	"github.com/pthm-cable/wallgrid/ui"
	"github.com/pthm-cable/wallgrid/viewport"
	"github.com/pthm-cable/wallgrid/world"
)

// Options configures an App beyond the config file.
type Options struct {
	WallsPath string // Overrides data.walls when set
	OutputDir string // Session CSV output (empty = disabled)
}

// App holds the complete editor session.
type App struct {
	cfg       *config.Config
	wallsPath string

	world  *world.World
	editor *editor.Editor

	// Rendering
	scene  *renderer.Scene
	canvas *renderer.RaylibCanvas
	hud    *ui.HUD
	xf     viewport.Transform

	// Telemetry
	perf    *telemetry.FrameCollector
	output  *telemetry.OutputManager
	lastLog time.Time

	input      inputState
	lastExport string
	quit       bool
}

// New creates the session: builds the world, loads saved walls and opens
// session output. It does not touch the window.
func New(cfg *config.Config, opts Options) (*App, error) {
	a := &App{
		cfg:       cfg,
		wallsPath: cfg.Data.Walls,
		world:     world.New(cfg.World),
		scene:     renderer.NewScene(),
		canvas:    renderer.NewRaylibCanvas(),
		hud:       ui.NewHUD(),
		perf:      telemetry.NewFrameCollector(cfg.Telemetry.FrameWindow),
		lastLog:   time.Now(),
	}
	if opts.WallsPath != "" {
		a.wallsPath = opts.WallsPath
	}

	n, err := a.world.Load(a.wallsPath)
	if err != nil {
		return nil, err
	}
	slog.Info("walls loaded", "path", a.wallsPath, "walls", n)

	a.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := a.output.WriteConfig(cfg); err != nil {
		a.output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	if dir := a.output.Dir(); dir != "" {
		slog.Info("session output", "dir", dir)
	}

	a.editor = editor.New(a.world, cfg.Editor.Nudge)
	a.editor.OnCommit = a.onCommit

	return a, nil
}

// World returns the edited world.
func (a *App) World() *world.World {
	return a.world
}

// ShouldClose reports whether a close was requested.
func (a *App) ShouldClose() bool {
	return a.quit
}

// Frame runs one frame: rebuild the transform, handle input, draw.
func (a *App) Frame() {
	a.perf.StartFrame()

	xf, err := viewport.New(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
		a.cfg.Derived.WorldW64, a.cfg.Derived.WorldH64)
	if err != nil {
		// Minimised: keep the event loop alive without editing or drawing
		a.input.focused = false
		if rl.WindowShouldClose() {
			a.quit = true
		}
		rl.BeginDrawing()
		rl.EndDrawing()
		a.perf.EndFrame()
		return
	}
	a.xf = xf

	a.perf.StartPhase(telemetry.PhaseInput)
	hudData := a.hudData()
	for _, ev := range a.input.events(pollInput(), a.hud.Controls(hudData)) {
		a.Handle(ev)
	}

	a.perf.StartPhase(telemetry.PhaseDraw)
	a.canvas.SetTransform(a.xf)
	a.scene.DrawFrame(a.canvas, a.frame(), func() {
		if a.hud.Draw(a.hudData()).ExportClicked {
			a.ExportSVG()
		}
		a.hud.DrawControls(int32(rl.GetScreenHeight()))
	})

	a.perf.EndFrame()
	a.recordStats()
}

// Handle applies one input event with the current frame's transform and
// runs the resulting action.
func (a *App) Handle(ev editor.InputEvent) {
	switch a.editor.Handle(ev, a.xf) {
	case editor.ActionExportSVG:
		a.ExportSVG()
	case editor.ActionToggleHUD:
		a.hud.Toggle()
	case editor.ActionQuit:
		a.quit = true
	}
}

// ExportSVG writes the SVG snapshot. Failures are logged, not fatal.
func (a *App) ExportSVG() {
	path := a.cfg.Export.SVGPath
	if err := export.SaveSVG(path, a.world, a.cfg.Export.Scale); err != nil {
		slog.Error("svg export failed", "path", path, "error", err)
		return
	}
	a.lastExport = path
	slog.Info("svg saved", "path", path, "walls", a.world.WallCount())
}

// Unload saves the walls and closes session output.
func (a *App) Unload() error {
	var firstErr error
	if err := a.world.Save(a.wallsPath); err != nil {
		firstErr = err
	} else {
		slog.Info("walls saved", "path", a.wallsPath, "walls", a.world.WallCount())
	}
	if err := a.output.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

func (a *App) onCommit(wall geom.Line) {
	slog.Info("wall added", "p", wall.P, "q", wall.Q, "walls", a.world.WallCount())
	rec := telemetry.NewEditRecord(a.perf.Frames(), time.Now(), wall, a.world.WallCount())
	if err := a.output.WriteEdit(rec); err != nil {
		slog.Error("edit log failed", "error", err)
	}
}

func (a *App) frame() renderer.Frame {
	preview, ok := a.editor.Preview(a.xf)
	return renderer.Frame{
		World:      a.world,
		Transform:  a.xf,
		Preview:    preview,
		HasPreview: ok,
	}
}

func (a *App) hudData() ui.HUDData {
	stats := a.perf.Stats()
	cursor, ok := a.editor.Preview(a.xf)
	if a.world.Drawing() {
		cursor, ok = a.world.LastWall().Q, true
	}
	return ui.HUDData{
		Walls:      a.world.WallCount(),
		Drawing:    a.world.Drawing(),
		Cursor:     cursor,
		HasCursor:  ok,
		Rows:       a.world.Rows(),
		Cols:       a.world.Cols(),
		FPS:        stats.FPS,
		FrameMS:    float64(stats.AvgFrame.Microseconds()) / 1000,
		LastExport: a.lastExport,
	}
}

// recordStats writes a frames.csv row per full window and logs periodically.
func (a *App) recordStats() {
	if a.perf.WindowFull() {
		rec := a.perf.Stats().ToCSV(a.perf.Frames(), a.world.WallCount())
		if err := a.output.WriteFrames(rec); err != nil {
			slog.Error("frame log failed", "error", err)
		}
	}

	interval := a.cfg.Telemetry.LogInterval
	if interval <= 0 {
		return
	}
	if now := time.Now(); now.Sub(a.lastLog).Seconds() >= interval {
		a.lastLog = now
		slog.Info("frames", "stats", a.perf.Stats(), "walls", a.world.WallCount())
	}
}
