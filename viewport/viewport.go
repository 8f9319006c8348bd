// Package viewport maps between framebuffer pixels and world coordinates.
package viewport

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/wallgrid/geom"
)

// Transform is the affine map from world space to framebuffer space for one
// frame. The whole world is stretched to fill the framebuffer, so each axis
// has its own scale. Build a fresh Transform every frame; it holds no
// reference to the window.
type Transform struct {
	// Framebuffer dimensions in pixels
	FramebufferW, FramebufferH float64

	// World dimensions in world units
	WorldW, WorldH float64

	forward *mat.Dense
	inverse *mat.Dense
}

// New builds the transform for the given framebuffer and world sizes:
// translate to the framebuffer centre, scale by fb/world per axis, then
// translate the world centre to the origin.
func New(fbW, fbH, worldW, worldH float64) (Transform, error) {
	if fbW <= 0 || fbH <= 0 {
		return Transform{}, fmt.Errorf("framebuffer %gx%g has no area", fbW, fbH)
	}
	if worldW <= 0 || worldH <= 0 {
		return Transform{}, fmt.Errorf("world %gx%g has no area", worldW, worldH)
	}

	var forward mat.Dense
	forward.Product(
		translation(fbW/2, fbH/2),
		scaling(fbW/worldW, fbH/worldH),
		translation(-worldW/2, -worldH/2),
	)

	var inverse mat.Dense
	if err := inverse.Inverse(&forward); err != nil {
		return Transform{}, fmt.Errorf("inverting view transform: %w", err)
	}

	return Transform{
		FramebufferW: fbW,
		FramebufferH: fbH,
		WorldW:       worldW,
		WorldH:       worldH,
		forward:      &forward,
		inverse:      &inverse,
	}, nil
}

// WorldToScreen converts a world position to framebuffer pixels.
func (t Transform) WorldToScreen(p geom.Vec) geom.Vec {
	return apply(t.forward, p)
}

// ScreenToWorld converts framebuffer pixels to a world position. The result
// is not snapped to the grid.
func (t Transform) ScreenToWorld(p geom.Vec) geom.Vec {
	return apply(t.inverse, p)
}

// Scale returns pixels per world unit on each axis.
func (t Transform) Scale() (sx, sy float64) {
	return t.forward.At(0, 0), t.forward.At(1, 1)
}

// OnePixel returns the width of one framebuffer pixel in world units.
// Stroke widths are expressed as multiples of it so they keep the same
// on-screen thickness at any window size.
func (t Transform) OnePixel() float64 {
	return t.WorldW / t.FramebufferW
}

func apply(m *mat.Dense, p geom.Vec) geom.Vec {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return geom.Vec{X: out.AtVec(0), Y: out.AtVec(1)}
}

func translation(dx, dy float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	})
}

func scaling(sx, sy float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	})
}
