// Package editor implements the wall-drawing interaction.
//
// The editor has two states. In Idle a button release starts a wall at the
// snapped pointer position. In Drawing pointer motion drags the free end and
// the next release commits the wall. Presses are not transitions.
package editor

import (
	"log/slog"

	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/viewport"
	"github.com/pthm-cable/wallgrid/world"
)

// DefaultNudge is the arrow-key offset in world units.
const DefaultNudge = 0.1

// State is the interaction state.
type State uint8

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Action is a request from the editor to its host.
type Action uint8

const (
	ActionNone Action = iota
	ActionExportSVG
	ActionToggleHUD
	ActionQuit
)

// Editor applies input events to a world.
type Editor struct {
	world *world.World
	nudge float64

	// Last known pointer position in framebuffer pixels
	pointer    geom.Vec
	hasPointer bool

	// OnCommit is called after a wall is appended.
	OnCommit func(geom.Line)
}

// New creates an editor for w. A non-positive nudge uses DefaultNudge.
func New(w *world.World, nudge float64) *Editor {
	if nudge <= 0 {
		nudge = DefaultNudge
	}
	return &Editor{world: w, nudge: nudge}
}

// State returns the current interaction state, derived from the world.
func (e *Editor) State() State {
	if e.world.Drawing() {
		return Drawing
	}
	return Idle
}

// Preview returns the raw world position under the pointer in the given
// frame's transform, and whether the pointer position is known. It is only
// drawn while Idle.
func (e *Editor) Preview(xf viewport.Transform) (geom.Vec, bool) {
	if !e.hasPointer {
		return geom.Vec{}, false
	}
	return xf.ScreenToWorld(e.pointer), true
}

// Handle applies one event using the transform of the current frame.
func (e *Editor) Handle(ev InputEvent, xf viewport.Transform) Action {
	switch ev.Kind {
	case ButtonPressed:
		e.track(ev.Pos)

	case ButtonReleased:
		e.track(ev.Pos)
		w := e.snap(ev, xf)
		if e.world.Drawing() {
			wall, _ := e.world.CommitWall(w)
			slog.Debug("wall committed", "p", wall.P, "q", wall.Q, "walls", e.world.WallCount())
			if e.OnCommit != nil {
				e.OnCommit(wall)
			}
		} else {
			e.world.BeginWall(w)
		}

	case PointerMoved:
		e.track(ev.Pos)
		if e.world.Drawing() {
			e.world.ExtendWall(geom.Round(xf.ScreenToWorld(ev.Pos)))
		}

	case FocusLost:
		if e.world.Drawing() {
			slog.Debug("wall cancelled on focus loss", "p", e.world.LastWall().P)
			e.world.CancelWall()
		}
		e.hasPointer = false

	case KeyReleased:
		switch ev.Key {
		case KeyExport:
			return ActionExportSVG
		case KeyToggleHUD:
			return ActionToggleHUD
		}

	case CloseRequested:
		return ActionQuit
	}

	return ActionNone
}

func (e *Editor) track(pos geom.Vec) {
	e.pointer = pos
	e.hasPointer = true
}

// snap converts a button event position to a grid-snapped world position.
// Held arrow keys nudge the raw position before rounding; opposite keys cancel.
func (e *Editor) snap(ev InputEvent, xf viewport.Transform) geom.Vec {
	w := xf.ScreenToWorld(ev.Pos)
	if ev.Keys.Has(NudgeLeft) {
		w.X -= e.nudge
	}
	if ev.Keys.Has(NudgeRight) {
		w.X += e.nudge
	}
	if ev.Keys.Has(NudgeUp) {
		w.Y -= e.nudge
	}
	if ev.Keys.Has(NudgeDown) {
		w.Y += e.nudge
	}
	return geom.Round(w)
}
