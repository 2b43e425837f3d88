package renderer

import (
	"terramap/internal/graphics"
	"terramap/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	World  *terrain.World
	DT     float64
	Proj   mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features.
// SetWorld is invoked whenever a map is (re)generated so features can
// rebuild their GPU buffers from the new world.
type Renderable interface {
	Init() error
	SetWorld(w *terrain.World)
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
