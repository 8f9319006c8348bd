package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wallgrid/app"
	"github.com/pthm-cable/wallgrid/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	wallsPath := flag.String("walls", "", "Wall file to load and save (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Wall Grid")
	if !rl.IsWindowReady() {
		slog.Error("failed to open window")
		os.Exit(1)
	}
	defer rl.CloseWindow()

	if cfg.Screen.MonitorFraction > 0 {
		monitor := rl.GetCurrentMonitor()
		w, h := app.WindowSize(rl.GetMonitorHeight(monitor), cfg.Screen.MonitorFraction,
			cfg.World.Width, cfg.World.Height)
		rl.SetWindowSize(w, h)
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a, err := app.New(cfg, app.Options{
		WallsPath: *wallsPath,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to start editor", "error", err)
		os.Exit(1)
	}

	slog.Info("editor started",
		"world_w", cfg.World.Width,
		"world_h", cfg.World.Height,
		"spacing", cfg.World.Spacing,
		"walls", a.World().WallCount(),
	)

	for !a.ShouldClose() {
		a.Frame()
	}

	if err := a.Unload(); err != nil {
		slog.Error("failed to save walls", "error", err)
	}
}
