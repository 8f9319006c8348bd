// SVG export tool - renders a wall file to SVG without opening a window.
//
// Usage: go run ./cmd/svgexport -walls walls.txt -out walls.svg
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/wallgrid/config"
	"github.com/pthm-cable/wallgrid/export"
	"github.com/pthm-cable/wallgrid/world"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	wallsPath := flag.String("walls", "", "Wall file to render (empty = use config)")
	outPath := flag.String("out", "", "SVG output path (empty = use config)")
	scale := flag.Float64("scale", 0, "SVG group scale (0 = use config)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	walls := cfg.Data.Walls
	if *wallsPath != "" {
		walls = *wallsPath
	}
	out := cfg.Export.SVGPath
	if *outPath != "" {
		out = *outPath
	}
	s := cfg.Export.Scale
	if *scale > 0 {
		s = *scale
	}

	w := world.New(cfg.World)
	n, err := w.Load(walls)
	if err != nil {
		slog.Error("failed to load walls", "path", walls, "error", err)
		os.Exit(1)
	}

	if err := export.SaveSVG(out, w, s); err != nil {
		slog.Error("failed to write svg", "path", out, "error", err)
		os.Exit(1)
	}
	slog.Info("svg saved", "path", out, "walls", n, "nodes", w.NodeCount())
}
