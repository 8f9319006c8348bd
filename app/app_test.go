package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/editor"
	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/viewport"
	"github.com/pthm-cable/wallgrid/world"
)

// newTestApp builds a session on a 10x10 world seen through a 100x100
// framebuffer, with all files in a temp dir.
func newTestApp(t *testing.T, outputDir string) (*App, string) {
	t.Helper()
	dir := t.TempDir()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World = config.WorldConfig{Width: 10, Height: 10, Spacing: 1}
	cfg.Export.SVGPath = filepath.Join(dir, "shot.svg")
	cfg.Data.Walls = filepath.Join(dir, "walls.txt")
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	a, err := New(cfg, Options{OutputDir: outputDir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.xf, err = viewport.New(100, 100, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	return a, dir
}

func TestSessionDrawSaveReload(t *testing.T) {
	a, dir := newTestApp(t, "")

	a.Handle(editor.Release(geom.Vec{X: 32, Y: 46}, 0))
	a.Handle(editor.Move(geom.Vec{X: 50, Y: 50}))
	a.Handle(editor.Release(geom.Vec{X: 64, Y: 51}, 0))

	if a.World().WallCount() != 1 {
		t.Fatalf("expected 1 wall, got %d", a.World().WallCount())
	}
	if err := a.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}

	walls, err := world.LoadWalls(filepath.Join(dir, "walls.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Line{P: geom.Vec{X: 3, Y: 5}, Q: geom.Vec{X: 6, Y: 5}}
	if len(walls) != 1 || !walls[0].ApproxEqual(want, 1e-9) {
		t.Errorf("expected saved %v, got %v", want, walls)
	}
}

func TestNewLoadsExistingWalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walls.txt")
	if err := os.WriteFile(path, []byte("1 1 2 2\n3 3 4 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	a, err := New(cfg, Options{WallsPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if a.World().WallCount() != 2 {
		t.Errorf("expected 2 loaded walls, got %d", a.World().WallCount())
	}
}

func TestExportAction(t *testing.T) {
	a, dir := newTestApp(t, "")

	a.Handle(editor.InputEvent{Kind: editor.KeyReleased, Key: editor.KeyExport})

	data, err := os.ReadFile(filepath.Join(dir, "shot.svg"))
	if err != nil {
		t.Fatalf("expected svg written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("export is not an svg document")
	}
	if a.lastExport == "" {
		t.Error("expected last export to be recorded")
	}
}

func TestQuitAction(t *testing.T) {
	a, _ := newTestApp(t, "")
	if a.ShouldClose() {
		t.Fatal("new session should not close")
	}
	a.Handle(editor.InputEvent{Kind: editor.CloseRequested})
	if !a.ShouldClose() {
		t.Error("expected close after close request")
	}
}

func TestEditLogWritten(t *testing.T) {
	out := filepath.Join(t.TempDir(), "session")
	a, _ := newTestApp(t, out)

	a.Handle(editor.Release(geom.Vec{X: 10, Y: 10}, 0))
	a.Handle(editor.Release(geom.Vec{X: 20, Y: 10}, 0))
	if err := a.Unload(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(out, "edits.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Errorf("expected header + 1 edit, got %v", lines)
	}
	if a.output.Dir() != out {
		t.Errorf("expected output dir %q, got %q", out, a.output.Dir())
	}
	if _, err := os.Stat(filepath.Join(out, "config.yaml")); err != nil {
		t.Errorf("expected config snapshot: %v", err)
	}
}

func TestHUDDataFollowsEditor(t *testing.T) {
	a, _ := newTestApp(t, "")

	a.Handle(editor.Move(geom.Vec{X: 32, Y: 46}))
	d := a.hudData()
	if d.Drawing || !d.HasCursor || !geom.ApproxEqual(d.Cursor, geom.Vec{X: 3.2, Y: 4.6}, 1e-9) {
		t.Errorf("unexpected idle HUD data %+v", d)
	}

	a.Handle(editor.Release(geom.Vec{X: 32, Y: 46}, 0))
	d = a.hudData()
	if !d.Drawing || d.Cursor != (geom.Vec{X: 3, Y: 5}) {
		t.Errorf("expected snapped cursor while drawing, got %+v", d)
	}
	if d.Rows != 11 || d.Cols != 11 {
		t.Errorf("expected 11x11 grid, got %dx%d", d.Cols, d.Rows)
	}
}

func TestWallEndpointUnderPanel(t *testing.T) {
	a, _ := newTestApp(t, "")
	a.world = world.New(config.WorldConfig{Width: 40, Height: 40, Spacing: 1})
	a.editor = editor.New(a.world, a.cfg.Editor.Nudge)
	xf, err := viewport.New(648, 648, 40, 40)
	if err != nil {
		t.Fatal(err)
	}
	a.xf = xf

	release := func(p geom.Vec) {
		snap := inputSnapshot{Focused: true, Pointer: xf.WorldToScreen(p), Released: [3]bool{true, false, false}}
		for _, ev := range a.input.events(snap, a.hud.Controls(a.hudData())) {
			a.Handle(ev)
		}
	}

	release(geom.Vec{X: 5, Y: 5})
	release(geom.Vec{X: 20, Y: 5})

	want := geom.Line{P: geom.Vec{X: 5, Y: 5}, Q: geom.Vec{X: 20, Y: 5}}
	if a.world.WallCount() != 1 || a.world.Walls()[0] != want {
		t.Errorf("expected wall %v, got %v", want, a.world.Walls())
	}
}

func TestHUDToggleAction(t *testing.T) {
	a, _ := newTestApp(t, "")

	a.Handle(editor.InputEvent{Kind: editor.KeyReleased, Key: editor.KeyToggleHUD})
	if !a.hud.Hidden() {
		t.Fatal("expected HUD hidden after toggle key")
	}
	if len(a.hud.Controls(a.hudData())) != 0 {
		t.Error("hidden HUD should not claim any clicks")
	}
	a.Handle(editor.InputEvent{Kind: editor.KeyReleased, Key: editor.KeyToggleHUD})
	if a.hud.Hidden() {
		t.Error("expected HUD shown after second toggle")
	}
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(1000, 0.6, 40, 20)
	if h != 600 || w != 1200 {
		t.Errorf("expected 1200x600, got %dx%d", w, h)
	}
	w, h = WindowSize(1440, 0.5, 10, 10)
	if h != 720 || w != 720 {
		t.Errorf("expected 720x720, got %dx%d", w, h)
	}
}
