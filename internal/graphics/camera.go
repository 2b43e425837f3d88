package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minZoom = 0.05
	maxZoom = 200.0
)

// Camera is a 2D orthographic camera over the map domain. Zoom is
// expressed in screen pixels per domain unit, and (CenterX, CenterY)
// is the domain point shown at the viewport center. Screen Y grows
// downward, matching the domain's coordinate convention.
type Camera struct {
	ViewportWidth  int
	ViewportHeight int

	CenterX float64
	CenterY float64
	Zoom    float64
}

// NewCamera creates a camera fitted so the whole domain is visible.
func NewCamera(viewportWidth, viewportHeight int, domainWidth, domainHeight float64) *Camera {
	c := &Camera{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
	c.FitDomain(domainWidth, domainHeight)
	return c
}

// FitDomain centers the camera on the domain and picks the largest zoom
// that keeps the whole domain inside the viewport.
func (c *Camera) FitDomain(domainWidth, domainHeight float64) {
	c.CenterX = domainWidth / 2
	c.CenterY = domainHeight / 2
	c.Zoom = 1
	if domainWidth > 0 && domainHeight > 0 {
		zx := float64(c.ViewportWidth) / domainWidth
		zy := float64(c.ViewportHeight) / domainHeight
		c.Zoom = clampZoom(math.Min(zx, zy))
	}
}

// SetViewport updates the viewport size in pixels.
func (c *Camera) SetViewport(width, height int) {
	c.ViewportWidth = width
	c.ViewportHeight = height
}

// Pan shifts the camera by a screen-space delta in pixels.
func (c *Camera) Pan(dxPixels, dyPixels float64) {
	c.CenterX -= dxPixels / c.Zoom
	c.CenterY -= dyPixels / c.Zoom
}

// ZoomAt scales the zoom by factor while keeping the domain point under
// the given screen position fixed.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	wx, wy := c.ScreenToDomain(screenX, screenY)
	c.Zoom = clampZoom(c.Zoom * factor)
	// Re-center so (wx, wy) lands back under the cursor.
	c.CenterX = wx - (screenX-float64(c.ViewportWidth)/2)/c.Zoom
	c.CenterY = wy - (screenY-float64(c.ViewportHeight)/2)/c.Zoom
}

// ScreenToDomain converts a screen position in pixels to domain coordinates.
func (c *Camera) ScreenToDomain(screenX, screenY float64) (float64, float64) {
	x := c.CenterX + (screenX-float64(c.ViewportWidth)/2)/c.Zoom
	y := c.CenterY + (screenY-float64(c.ViewportHeight)/2)/c.Zoom
	return x, y
}

// ProjectionMatrix returns the orthographic projection for the current
// viewport, zoom and center. Top maps to smaller Y so the domain renders
// with Y growing downward on screen.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	halfW := float64(c.ViewportWidth) / 2 / c.Zoom
	halfH := float64(c.ViewportHeight) / 2 / c.Zoom
	return mgl32.Ortho(
		float32(c.CenterX-halfW), float32(c.CenterX+halfW),
		float32(c.CenterY+halfH), float32(c.CenterY-halfH),
		-1, 1,
	)
}

func clampZoom(z float64) float64 {
	if z < minZoom {
		return minZoom
	}
	if z > maxZoom {
		return maxZoom
	}
	return z
}
