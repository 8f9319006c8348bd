package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wallgrid/geom"
)

// Bounds is a screen rectangle in pixels.
type Bounds struct {
	X, Y, W, H int32
}

// Contains reports whether the screen point p lies inside b.
func (b Bounds) Contains(p geom.Vec) bool {
	return p.X >= float64(b.X) && p.X < float64(b.X+b.W) &&
		p.Y >= float64(b.Y) && p.Y < float64(b.Y+b.H)
}

func (b Bounds) rect() rl.Rectangle {
	return rl.Rectangle{X: float32(b.X), Y: float32(b.Y), Width: float32(b.W), Height: float32(b.H)}
}

// HUDData holds everything the status panel shows.
type HUDData struct {
	Walls      int
	Drawing    bool
	Cursor     geom.Vec // Raw world position under the pointer
	HasCursor  bool
	Rows, Cols int
	FPS        float64
	FrameMS    float64
	LastExport string
}

// Line is one label/value row of the status panel.
type Line struct {
	Label     string
	Value     string
	Highlight bool
}

// StatusLines formats the panel rows for data.
func StatusLines(data HUDData) []Line {
	mode := "idle"
	if data.Drawing {
		mode = "drawing"
	}
	cursor := "-"
	if data.HasCursor {
		cursor = fmt.Sprintf("%.2f, %.2f", data.Cursor.X, data.Cursor.Y)
	}

	lines := []Line{
		{Label: "Walls", Value: fmt.Sprintf("%d", data.Walls)},
		{Label: "Mode", Value: mode, Highlight: data.Drawing},
		{Label: "Cursor", Value: cursor},
		{Label: "Grid", Value: fmt.Sprintf("%d x %d", data.Cols, data.Rows)},
	}
	if data.LastExport != "" {
		lines = append(lines, Line{Label: "Export", Value: data.LastExport})
	}
	return lines
}

// HUDResult reports toolbar interactions for the frame.
type HUDResult struct {
	ExportClicked bool
}

// HUD renders the status panel in the top-left corner.
type HUD struct {
	renderer  *Renderer
	showStats bool
	hidden    bool
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer(), showStats: true}
}

// panelWidth fits the longest value in the default font.
const panelWidth = 200

// hudLayout holds the panel rectangles for one frame.
type hudLayout struct {
	panel  Bounds
	button Bounds
	toggle Bounds // checkbox square
	label  Bounds // checkbox square plus its label, which raygui also treats as clickable
}

func (h *HUD) layout(data HUDData) hudLayout {
	t := h.renderer.Theme
	rows := int32(len(StatusLines(data)))
	if h.showStats {
		rows++
	}
	height := t.Padding*3 + rows*t.LineHeight + 2*t.ButtonH + t.Padding
	panel := Bounds{X: 10, Y: 10, W: panelWidth, H: height}

	x := panel.X + t.Padding
	y := panel.Y + t.Padding + rows*t.LineHeight + t.Padding
	button := Bounds{X: x, Y: y, W: panel.W - 2*t.Padding, H: t.ButtonH}

	y += t.ButtonH + t.Padding/2
	toggle := Bounds{X: x, Y: y + 4, W: t.ButtonH - 8, H: t.ButtonH - 8}
	label := Bounds{X: x, Y: toggle.Y, W: button.W, H: toggle.H}

	return hudLayout{panel: panel, button: button, toggle: toggle, label: label}
}

// Hidden reports whether the panel is hidden.
func (h *HUD) Hidden() bool { return h.hidden }

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.hidden = !h.hidden }

// Bounds returns the panel rectangle for data.
func (h *HUD) Bounds(data HUDData) Bounds {
	return h.layout(data).panel
}

// Controls returns the rectangles of the clickable widgets. Pointer button
// events inside them belong to the toolbar; everywhere else, including over
// the panel's labels, they reach the editor. A hidden panel has no controls.
func (h *HUD) Controls(data HUDData) []Bounds {
	if h.hidden {
		return nil
	}
	l := h.layout(data)
	return []Bounds{l.button, l.label}
}

// Draw renders the panel and toolbar and returns what was clicked.
func (h *HUD) Draw(data HUDData) HUDResult {
	var res HUDResult
	if h.hidden {
		return res
	}
	t := h.renderer.Theme
	l := h.layout(data)
	h.renderer.DrawPanel(l.panel)

	x := l.panel.X + t.Padding
	y := l.panel.Y + t.Padding
	for _, line := range StatusLines(data) {
		y = h.renderer.DrawLabelValue(x, y, line.Label, line.Value, line.Highlight)
	}
	if h.showStats {
		h.renderer.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%.1f ms  %.0f fps", data.FrameMS, data.FPS), false)
	}

	if gui.Button(l.button.rect(), "Export SVG [S]") {
		res.ExportClicked = true
	}
	h.showStats = gui.CheckBox(l.toggle.rect(), "Frame stats", h.showStats)

	return res
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText("Click: start/finish wall | Arrows+click: nudge | S: export SVG | H: hide panel | Esc: save & quit",
		10, screenHeight-20, h.renderer.Theme.FontSize, rl.LightGray)
}
