// Package hud renders the on-screen text overlay.
package hud

import (
	"fmt"

	"terramap/internal/graphics"
	renderer "terramap/internal/graphics/renderer"
	"terramap/internal/profiling"
	"terramap/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 16
	lineStep   = 20
	marginX    = 10
	marginY    = 24
)

// HUD implements the text overlay: frame rate, world summary, the
// currently picked cell and an optional profiling readout.
type HUD struct {
	atlas *graphics.FontAtlasInfo
	font  *graphics.FontRenderer

	viewportWidth  int
	viewportHeight int

	world      *terrain.World
	pickedLine string

	visible     bool
	showProfile bool

	// FPS averaged over a half-second window
	fpsAccum  float64
	fpsFrames int
	fps       float64
}

// NewHUD creates a new HUD renderable
func NewHUD(viewportWidth, viewportHeight int, visible bool) *HUD {
	return &HUD{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		visible:        visible,
	}
}

// Init bakes the font atlas and creates the text renderer
func (h *HUD) Init() error {
	var err error
	h.atlas, err = graphics.BuildFontAtlas(fontPixels)
	if err != nil {
		return err
	}
	h.font, err = graphics.NewFontRenderer(h.atlas, h.viewportWidth, h.viewportHeight)
	return err
}

// SetWorld stores the world for the summary line and clears any pick
func (h *HUD) SetWorld(w *terrain.World) {
	h.world = w
	h.pickedLine = ""
}

// SetPickedCell updates the picked-cell line from the world's per-cell
// queries. Pass a negative index to clear the line.
func (h *HUD) SetPickedCell(cell int) {
	if h.world == nil || cell < 0 {
		h.pickedLine = ""
		return
	}
	pos := h.world.Position(cell)
	h.pickedLine = fmt.Sprintf("cell %d  at (%.0f, %.0f)  elev %.3f  moist %.3f  flux %.0f",
		cell, pos.X(), pos.Y(),
		h.world.Elevation(cell), h.world.Moisture(cell), h.world.Flux(cell))
}

// ToggleVisible flips the whole overlay on or off
func (h *HUD) ToggleVisible() {
	h.visible = !h.visible
}

// ToggleProfile flips the per-frame profiling readout
func (h *HUD) ToggleProfile() {
	h.showProfile = !h.showProfile
}

// Render draws the overlay text
func (h *HUD) Render(ctx renderer.RenderContext) {
	h.fpsAccum += ctx.DT
	h.fpsFrames++
	if h.fpsAccum >= 0.5 {
		h.fps = float64(h.fpsFrames) / h.fpsAccum
		h.fpsAccum = 0
		h.fpsFrames = 0
	}

	if !h.visible {
		return
	}

	lines := make([]string, 0, 8)
	lines = append(lines, fmt.Sprintf("%.0f fps  zoom %.2f", h.fps, ctx.Camera.Zoom))
	if ctx.World != nil {
		lines = append(lines, fmt.Sprintf("seed %d  cells %d  rivers %d",
			ctx.World.Seed(), ctx.World.CellCount(), len(ctx.World.Rivers())))
	}
	if h.pickedLine != "" {
		lines = append(lines, h.pickedLine)
	}
	if h.showProfile {
		lines = append(lines, "")
		for _, s := range profiling.TopN(3) {
			lines = append(lines, s)
		}
	}

	h.font.RenderLines(lines, marginX, marginY, lineStep, 1.0, mgl32.Vec3{1, 1, 1})
}

// Dispose releases text rendering resources
func (h *HUD) Dispose() {}

// SetViewport keeps the pixel-space projection in sync with the window
func (h *HUD) SetViewport(width, height int) {
	h.viewportWidth = width
	h.viewportHeight = height
	if h.font != nil {
		h.font.SetViewport(width, height)
	}
}
