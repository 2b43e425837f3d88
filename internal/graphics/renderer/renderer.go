package renderer

import (
	"terramap/internal/graphics"
	"terramap/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	world       *terrain.World
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(viewportWidth, viewportHeight int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL. Everything terramap draws is flat geometry, so
	// depth testing and face culling stay off.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	camera := graphics.NewCamera(viewportWidth, viewportHeight, 1, 1)

	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// SetWorld swaps in a freshly generated world, refits the camera to its
// bounds and rebuilds every renderable's GPU data.
func (r *Renderer) SetWorld(w *terrain.World) {
	r.world = w
	width, height := w.Bounds()
	r.camera.FitDomain(width, height)
	for _, renderable := range r.renderables {
		renderable.SetWorld(w)
	}
}

// Render executes the main render pass
func (r *Renderer) Render(dt float64) {
	// Ocean blue backdrop; cells never cover the whole viewport when
	// zoomed out past the domain bounds.
	gl.ClearColor(0.08, 0.18, 0.35, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if r.world == nil {
		return
	}

	ctx := RenderContext{
		Camera: r.camera,
		World:  r.world,
		DT:     dt,
		Proj:   r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
