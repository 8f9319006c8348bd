package ui

import (
	"testing"

	"github.com/pthm-cable/wallgrid/geom"
)

func TestStatusLines(t *testing.T) {
	data := HUDData{
		Walls:     3,
		Drawing:   true,
		Cursor:    geom.Vec{X: 3.256, Y: 4.5},
		HasCursor: true,
		Rows:      11,
		Cols:      21,
	}

	lines := StatusLines(data)
	want := []Line{
		{Label: "Walls", Value: "3"},
		{Label: "Mode", Value: "drawing", Highlight: true},
		{Label: "Cursor", Value: "3.26, 4.50"},
		{Label: "Grid", Value: "21 x 11"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestStatusLinesIdleWithExport(t *testing.T) {
	lines := StatusLines(HUDData{LastExport: "screenshot.svg"})

	if lines[1].Value != "idle" || lines[1].Highlight {
		t.Errorf("expected plain idle mode, got %+v", lines[1])
	}
	if lines[2].Value != "-" {
		t.Errorf("expected placeholder cursor, got %q", lines[2].Value)
	}
	last := lines[len(lines)-1]
	if last.Label != "Export" || last.Value != "screenshot.svg" {
		t.Errorf("expected export line, got %+v", last)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, W: 100, H: 50}

	tests := []struct {
		p    geom.Vec
		want bool
	}{
		{geom.Vec{X: 10, Y: 10}, true},
		{geom.Vec{X: 109.9, Y: 59.9}, true},
		{geom.Vec{X: 110, Y: 30}, false},
		{geom.Vec{X: 50, Y: 9.9}, false},
		{geom.Vec{X: 500, Y: 500}, false},
	}
	for _, tc := range tests {
		if got := b.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestHUDBoundsGrowWithRows(t *testing.T) {
	h := NewHUD()
	base := h.Bounds(HUDData{})
	withExport := h.Bounds(HUDData{LastExport: "x.svg"})

	if withExport.H != base.H+h.renderer.Theme.LineHeight {
		t.Errorf("expected one extra line of height, got %d vs %d", withExport.H, base.H)
	}

	h.showStats = false
	if h.Bounds(HUDData{}).H != base.H-h.renderer.Theme.LineHeight {
		t.Error("hiding stats should remove one line")
	}
}

func TestControlsLeaveLabelsClickable(t *testing.T) {
	h := NewHUD()
	data := HUDData{}
	panel := h.Bounds(data)
	controls := h.Controls(data)
	if len(controls) != 2 {
		t.Fatalf("expected button and checkbox, got %d controls", len(controls))
	}

	t.Run("widgets inside panel", func(t *testing.T) {
		for _, c := range controls {
			if c.X < panel.X || c.Y < panel.Y || c.X+c.W > panel.X+panel.W || c.Y+c.H > panel.Y+panel.H {
				t.Errorf("control %+v outside panel %+v", c, panel)
			}
		}
	})

	t.Run("labels not claimed", func(t *testing.T) {
		label := geom.Vec{X: 81, Y: 81}
		for _, c := range controls {
			if c.Contains(label) {
				t.Errorf("control %+v covers the status labels", c)
			}
		}
	})

	t.Run("button claimed", func(t *testing.T) {
		b := controls[0]
		if !b.Contains(geom.Vec{X: float64(b.X + b.W/2), Y: float64(b.Y + b.H/2)}) {
			t.Error("button centre should be claimed")
		}
	})
}

func TestHiddenHUDHasNoControls(t *testing.T) {
	h := NewHUD()
	h.Toggle()
	if !h.Hidden() || h.Controls(HUDData{}) != nil {
		t.Error("hidden HUD should expose no controls")
	}
}
