package main

import (
	"time"

	"terramap/internal/config"
	"terramap/internal/graphics/renderables/hud"
	"terramap/internal/graphics/renderables/mapview"
	"terramap/internal/graphics/renderables/riverlayer"
	renderer "terramap/internal/graphics/renderer"
	"terramap/internal/logger"
	"terramap/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func setupWindow(g config.GraphicsConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(g.WindowWidth, g.WindowHeight, "terramap", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	if g.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

// viewer holds the renderer, the HUD handle for pick updates and the
// generation parameters for the current world.
type viewer struct {
	renderer *renderer.Renderer
	hud      *hud.HUD
	worldCfg terrain.Config
	world    *terrain.World
}

func setupViewer(cfg *config.Config, worldCfg terrain.Config) (*viewer, error) {
	mapRenderer := mapview.NewMapView()
	riverRenderer := riverlayer.NewRiverLayer()
	hudRenderer := hud.NewHUD(cfg.Graphics.WindowWidth, cfg.Graphics.WindowHeight, cfg.Graphics.ShowHUD)

	r, err := renderer.NewRenderer(
		cfg.Graphics.WindowWidth,
		cfg.Graphics.WindowHeight,
		mapRenderer,
		riverRenderer,
		hudRenderer,
	)
	if err != nil {
		return nil, err
	}

	v := &viewer{
		renderer: r,
		hud:      hudRenderer,
		worldCfg: worldCfg,
	}
	v.regenerate(worldCfg.Seed)

	return v, nil
}

// regenerate builds a world for the given seed and hands it to every
// renderable through the renderer.
func (v *viewer) regenerate(seed int64) {
	v.worldCfg.Seed = seed

	start := time.Now()
	w := terrain.Generate(v.worldCfg)
	elapsed := time.Since(start)

	v.world = w
	v.renderer.SetWorld(w)

	logger.Info("world generated",
		zap.Int64("seed", seed),
		zap.Int("cells", w.CellCount()),
		zap.Int("river_segments", len(w.Rivers())),
		zap.Duration("elapsed", elapsed),
	)
}
