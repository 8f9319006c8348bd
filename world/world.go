// Package world holds the editable scene: fixed extents, the reference grid
// and the wall segments drawn by the user.
package world

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/geom"
)

// Node is a grid point component. Nodes are laid out at
// (Col*Spacing, Row*Spacing) and never move.
type Node struct {
	X, Y     float64
	Row, Col int
}

// World is the editor state. It has no knowledge of rendering or input.
type World struct {
	Width, Height int
	Spacing       float64

	rows, cols int

	// walls only grows during a session
	walls []geom.Line

	// drawing is true while lastWall is an uncommitted segment
	drawing  bool
	lastWall geom.Line

	ecs        *ecs.World
	nodeMapper *ecs.Map1[Node]
	nodeFilter *ecs.Filter1[Node]
}

// New creates a world with the given extents and spawns its grid nodes.
// The config is assumed to be validated.
func New(cfg config.WorldConfig) *World {
	ecsWorld := ecs.NewWorld()

	w := &World{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Spacing:    cfg.Spacing,
		rows:       config.GridCount(cfg.Height, cfg.Spacing),
		cols:       config.GridCount(cfg.Width, cfg.Spacing),
		ecs:        ecsWorld,
		nodeMapper: ecs.NewMap1[Node](ecsWorld),
		nodeFilter: ecs.NewFilter1[Node](ecsWorld),
	}
	w.spawnGrid()
	return w
}

// spawnGrid creates one entity per grid point, row-major.
func (w *World) spawnGrid() {
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			node := Node{
				X:   float64(j) * w.Spacing,
				Y:   float64(i) * w.Spacing,
				Row: i,
				Col: j,
			}
			w.nodeMapper.NewEntity(&node)
		}
	}
}

// Rows returns the number of grid rows, floor(Height/Spacing)+1.
func (w *World) Rows() int { return w.rows }

// Cols returns the number of grid columns, floor(Width/Spacing)+1.
func (w *World) Cols() int { return w.cols }

// EachNode calls fn for every grid node.
func (w *World) EachNode(fn func(Node)) {
	query := w.nodeFilter.Query()
	for query.Next() {
		fn(*query.Get())
	}
}

// NodeCount returns the number of spawned grid nodes.
func (w *World) NodeCount() int {
	count := 0
	w.EachNode(func(Node) { count++ })
	return count
}

// Walls returns the committed walls in the order they were added.
// The slice must not be modified.
func (w *World) Walls() []geom.Line { return w.walls }

// WallCount returns the number of committed walls.
func (w *World) WallCount() int { return len(w.walls) }

// AddWall appends a committed wall.
func (w *World) AddWall(l geom.Line) {
	w.walls = append(w.walls, l)
}

// Drawing reports whether a wall is being drawn.
func (w *World) Drawing() bool { return w.drawing }

// LastWall returns the in-progress wall. Only meaningful while Drawing.
func (w *World) LastWall() geom.Line { return w.lastWall }

// BeginWall starts a new in-progress wall collapsed to p.
func (w *World) BeginWall(p geom.Vec) {
	w.lastWall = geom.Line{P: p, Q: p}
	w.drawing = true
}

// ExtendWall moves the free end of the in-progress wall. No-op when idle.
func (w *World) ExtendWall(q geom.Vec) {
	if !w.drawing {
		return
	}
	w.lastWall.Q = q
}

// CommitWall sets the free end to q and appends the finished wall.
// Returns the committed wall and false if nothing was being drawn.
func (w *World) CommitWall(q geom.Vec) (geom.Line, bool) {
	if !w.drawing {
		return geom.Line{}, false
	}
	w.lastWall.Q = q
	w.walls = append(w.walls, w.lastWall)
	w.drawing = false
	return w.lastWall, true
}

// CancelWall discards the in-progress wall.
func (w *World) CancelWall() {
	w.drawing = false
	w.lastWall = geom.Line{}
}
