package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"terramap/internal/config"
	"terramap/internal/logger"
	"terramap/internal/terrain"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	worldCfg := terrain.Config{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Points: cfg.World.Points,
		Seed:   cfg.World.Seed,
	}
	if worldCfg.Points <= 0 {
		// Roughly one cell per 1000 square units of domain area.
		worldCfg.Points = int(worldCfg.Width * worldCfg.Height / 1000)
	}
	if worldCfg.Seed == 0 {
		worldCfg.Seed = time.Now().UnixNano()
	}

	if err := glfw.Init(); err != nil {
		logger.Error("glfw init failed", zap.Error(err))
		os.Exit(1)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Graphics)
	if err != nil {
		logger.Error("window setup failed", zap.Error(err))
		os.Exit(1)
	}

	v, err := setupViewer(cfg, worldCfg)
	if err != nil {
		logger.Error("viewer setup failed", zap.Error(err))
		os.Exit(1)
	}
	defer v.renderer.Dispose()

	setupInputHandlers(window, v)

	runLoop(window, v, cfg.Graphics)
}
