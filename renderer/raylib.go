package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/viewport"
)

// RaylibCanvas draws world-space shapes with raylib. Must only be used
// between window creation and close, on the main thread.
type RaylibCanvas struct {
	xf viewport.Transform
}

// NewRaylibCanvas creates a canvas. Call SetTransform every frame before drawing.
func NewRaylibCanvas() *RaylibCanvas {
	return &RaylibCanvas{}
}

// SetTransform sets the world-to-framebuffer mapping for the current frame.
func (c *RaylibCanvas) SetTransform(xf viewport.Transform) {
	c.xf = xf
}

// BeginFrame implements Canvas.
func (c *RaylibCanvas) BeginFrame() {
	rl.BeginDrawing()
}

// Clear implements Canvas.
func (c *RaylibCanvas) Clear(col color.RGBA) {
	rl.ClearBackground(toColor(col))
}

// FillCircle implements Canvas. The radius uses the mean axis scale, which is
// exact when the window keeps the world aspect ratio.
func (c *RaylibCanvas) FillCircle(center geom.Vec, radius float64, col color.RGBA) {
	sx, sy := c.xf.Scale()
	rl.DrawCircleV(c.point(center), float32(radius*(sx+sy)/2), toColor(col))
}

// StrokeLine implements Canvas.
func (c *RaylibCanvas) StrokeLine(p, q geom.Vec, width float64, col color.RGBA) {
	sx, _ := c.xf.Scale()
	rl.DrawLineEx(c.point(p), c.point(q), float32(width*sx), toColor(col))
}

// EndFrame implements Canvas.
func (c *RaylibCanvas) EndFrame() {
	rl.EndDrawing()
}

func (c *RaylibCanvas) point(p geom.Vec) rl.Vector2 {
	s := c.xf.WorldToScreen(p)
	return rl.Vector2{X: float32(s.X), Y: float32(s.Y)}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
