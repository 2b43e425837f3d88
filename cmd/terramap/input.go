package main

import (
	"math"
	"time"

	"terramap/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// A press-release pair that moves less than this many pixels counts as
// a click rather than a drag.
const clickSlopPixels = 4.0

func setupInputHandlers(window *glfw.Window, v *viewer) {
	var (
		dragging     bool
		dragDistance float64
		lastX, lastY float64
	)

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			dragging = true
			dragDistance = 0
			lastX, lastY = w.GetCursorPos()
		case glfw.Release:
			dragging = false
			if dragDistance < clickSlopPixels {
				pickCell(w, v)
			}
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !dragging {
			return
		}
		dx := xpos - lastX
		dy := ypos - lastY
		lastX, lastY = xpos, ypos
		dragDistance += math.Hypot(dx, dy)
		v.renderer.GetCamera().Pan(dx, dy)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		cx, cy := w.GetCursorPos()
		factor := math.Pow(1.1, yoff)
		v.renderer.GetCamera().ZoomAt(cx, cy, factor)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyR:
			v.regenerate(time.Now().UnixNano())
		case glfw.KeyH:
			v.hud.ToggleVisible()
		case glfw.KeyV:
			v.hud.ToggleProfile()
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		v.renderer.UpdateViewport(width, height)
	})
}

// pickCell resolves the cell under the cursor and pushes its details to
// the HUD.
func pickCell(window *glfw.Window, v *viewer) {
	cx, cy := window.GetCursorPos()
	x, y := v.renderer.GetCamera().ScreenToDomain(cx, cy)

	cell := v.world.CellAt(x, y)
	v.hud.SetPickedCell(cell)
	if cell >= 0 {
		logger.Debug("cell picked",
			zap.Int("cell", cell),
			zap.Float64("x", x),
			zap.Float64("y", y),
			zap.Float64("elevation", v.world.Elevation(cell)),
		)
	}
}
