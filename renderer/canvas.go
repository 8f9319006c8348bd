// Package renderer draws the editor scene onto a vector canvas.
package renderer

//go:generate go tool mockgen -destination=./mocks/canvas_mock.go -package=mocks . Canvas

import (
	"image/color"

	"github.com/pthm-cable/wallgrid/geom"
)

// Canvas is the drawing capability the scene needs. All positions and sizes
// are in world units; the implementation owns the mapping to pixels.
type Canvas interface {
	BeginFrame()
	Clear(c color.RGBA)
	FillCircle(center geom.Vec, radius float64, c color.RGBA)
	StrokeLine(p, q geom.Vec, width float64, c color.RGBA)
	// EndFrame presents the frame.
	EndFrame()
}

// Drawable is anything that can paint itself on a Canvas.
type Drawable interface {
	Draw(c Canvas)
}

// Dot is a filled circle.
type Dot struct {
	Center geom.Vec
	Radius float64
	Color  color.RGBA
}

// Draw implements Drawable.
func (d Dot) Draw(c Canvas) {
	c.FillCircle(d.Center, d.Radius, d.Color)
}

// Stroke is a line segment drawn with a fixed width.
type Stroke struct {
	Line  geom.Line
	Width float64
	Color color.RGBA
}

// Draw implements Drawable.
func (s Stroke) Draw(c Canvas) {
	c.StrokeLine(s.Line.P, s.Line.Q, s.Width, s.Color)
}
