// Package geom provides the 2D point and segment types shared by the editor.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a point or offset in 2D space.
type Vec = r2.Vec

// Round snaps both coordinates to the nearest integer, halves away from zero.
func Round(v Vec) Vec {
	return Vec{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// ApproxEqual reports whether a and b differ by at most eps on each axis.
func ApproxEqual(a, b Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Line is a segment from P to Q.
type Line struct {
	P, Q Vec
}

// ApproxEqual reports whether both endpoints match within eps.
func (l Line) ApproxEqual(o Line, eps float64) bool {
	return ApproxEqual(l.P, o.P, eps) && ApproxEqual(l.Q, o.Q, eps)
}
