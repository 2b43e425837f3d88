package main

import (
	"time"

	"terramap/internal/config"
	"terramap/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func runLoop(window *glfw.Window, v *viewer, g config.GraphicsConfig) {
	limiter := newFPSLimiter(g.FPSLimit)
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		v.renderer.Render(dt)

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		limiter.Wait()
	}
}
