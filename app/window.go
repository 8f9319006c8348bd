package app

import "math"

// WindowSize returns the initial window size: a fraction of the monitor
// height, with the width following the world aspect ratio.
func WindowSize(monitorH int, fraction float64, worldW, worldH int) (w, h int) {
	h = int(math.Round(float64(monitorH) * fraction))
	w = int(math.Round(float64(h) * float64(worldW) / float64(worldH)))
	return w, h
}
