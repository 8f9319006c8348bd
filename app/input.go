package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wallgrid/editor"
	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/ui"
)

// inputSnapshot is the toolkit state sampled once per frame.
type inputSnapshot struct {
	Close          bool
	Focused        bool
	Pointer        geom.Vec
	Pressed        [3]bool // indexed by editor.Button
	Released       [3]bool
	Keys           editor.NudgeKeys
	ExportReleased bool
	HUDReleased    bool
}

// inputState remembers what the previous frame saw so polled state can be
// turned into edge events.
type inputState struct {
	pointer    geom.Vec
	hasPointer bool
	focused    bool
}

var mouseButtons = [3]rl.MouseButton{
	editor.ButtonLeft:   rl.MouseButtonLeft,
	editor.ButtonRight:  rl.MouseButtonRight,
	editor.ButtonMiddle: rl.MouseButtonMiddle,
}

// pollInput samples raylib input state.
func pollInput() inputSnapshot {
	mp := rl.GetMousePosition()
	snap := inputSnapshot{
		Close:          rl.WindowShouldClose(),
		Focused:        rl.IsWindowFocused(),
		Pointer:        geom.Vec{X: float64(mp.X), Y: float64(mp.Y)},
		ExportReleased: rl.IsKeyReleased(rl.KeyS),
		HUDReleased:    rl.IsKeyReleased(rl.KeyH),
	}
	for i, b := range mouseButtons {
		snap.Pressed[i] = rl.IsMouseButtonPressed(b)
		snap.Released[i] = rl.IsMouseButtonReleased(b)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		snap.Keys |= editor.NudgeLeft
	}
	if rl.IsKeyDown(rl.KeyRight) {
		snap.Keys |= editor.NudgeRight
	}
	if rl.IsKeyDown(rl.KeyUp) {
		snap.Keys |= editor.NudgeUp
	}
	if rl.IsKeyDown(rl.KeyDown) {
		snap.Keys |= editor.NudgeDown
	}
	return snap
}

// events converts a snapshot into editor events, in the order focus loss,
// motion, buttons, keys, close. Button events over a toolbar widget are
// dropped so clicking one never starts or finishes a wall.
func (s *inputState) events(snap inputSnapshot, controls []ui.Bounds) []editor.InputEvent {
	var evs []editor.InputEvent

	if s.focused && !snap.Focused {
		evs = append(evs, editor.InputEvent{Kind: editor.FocusLost, Pos: snap.Pointer})
	}
	s.focused = snap.Focused

	if !s.hasPointer || snap.Pointer != s.pointer {
		evs = append(evs, editor.InputEvent{Kind: editor.PointerMoved, Pos: snap.Pointer, Keys: snap.Keys})
		s.pointer = snap.Pointer
		s.hasPointer = true
	}

	overControl := false
	for _, b := range controls {
		if b.Contains(snap.Pointer) {
			overControl = true
			break
		}
	}
	for i := range snap.Pressed {
		if overControl {
			break
		}
		b := editor.Button(i)
		if snap.Pressed[i] {
			evs = append(evs, editor.InputEvent{Kind: editor.ButtonPressed, Pos: snap.Pointer, Button: b, Keys: snap.Keys})
		}
		if snap.Released[i] {
			evs = append(evs, editor.InputEvent{Kind: editor.ButtonReleased, Pos: snap.Pointer, Button: b, Keys: snap.Keys})
		}
	}

	if snap.ExportReleased {
		evs = append(evs, editor.InputEvent{Kind: editor.KeyReleased, Key: editor.KeyExport, Keys: snap.Keys})
	}
	if snap.HUDReleased {
		evs = append(evs, editor.InputEvent{Kind: editor.KeyReleased, Key: editor.KeyToggleHUD, Keys: snap.Keys})
	}
	if snap.Close {
		evs = append(evs, editor.InputEvent{Kind: editor.CloseRequested})
	}
	return evs
}
