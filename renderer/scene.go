package renderer

import (
	"image/color"

	"github.com/pthm-cable/wallgrid/geom"
	"github.com/pthm-cable/wallgrid/viewport"
	"github.com/pthm-cable/wallgrid/world"
)

// Scene colours and sizes.
var (
	BackgroundColor = color.RGBA{R: 77, G: 77, B: 82, A: 255}
	GridColor       = color.RGBA{A: 255}
	WallColor       = color.RGBA{B: 255, A: 128}
	PreviewColor    = color.RGBA{B: 255, A: 179}
)

const (
	GridRadius    = 0.2
	PreviewRadius = 0.3
	// WallWidthPixels is the on-screen wall thickness, independent of zoom.
	WallWidthPixels = 3
)

// Frame is everything one frame of the scene depends on.
type Frame struct {
	World     *world.World
	Transform viewport.Transform

	Preview    geom.Vec
	HasPreview bool
}

// Scene draws the grid, walls and cursor preview.
type Scene struct{}

// NewScene creates a scene renderer.
func NewScene() *Scene {
	return &Scene{}
}

// DrawFrame renders one full frame. overlay, if not nil, runs after the
// scene and before the frame is presented.
func (s *Scene) DrawFrame(c Canvas, f Frame, overlay func()) {
	c.BeginFrame()
	c.Clear(BackgroundColor)

	for _, d := range s.Drawables(f) {
		d.Draw(c)
	}

	if overlay != nil {
		overlay()
	}
	c.EndFrame()
}

// Drawables lists the scene contents in paint order: grid nodes, committed
// walls, the in-progress wall, then the placement preview.
func (s *Scene) Drawables(f Frame) []Drawable {
	w := f.World
	items := make([]Drawable, 0, w.Rows()*w.Cols()+w.WallCount()+1)

	w.EachNode(func(n world.Node) {
		items = append(items, Dot{Center: geom.Vec{X: n.X, Y: n.Y}, Radius: GridRadius, Color: GridColor})
	})

	width := WallWidthPixels * f.Transform.OnePixel()
	for _, wall := range w.Walls() {
		items = append(items, Stroke{Line: wall, Width: width, Color: WallColor})
	}

	if w.Drawing() {
		items = append(items, Stroke{Line: w.LastWall(), Width: width, Color: WallColor})
	} else if f.HasPreview {
		items = append(items, Dot{Center: f.Preview, Radius: PreviewRadius, Color: PreviewColor})
	}

	return items
}
