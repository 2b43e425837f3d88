// Package mapview renders the terrain cells as flat-shaded polygons.
package mapview

import (
	"terramap/internal/graphics"
	renderer "terramap/internal/graphics/renderer"
	"terramap/internal/profiling"
	"terramap/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec3 color;

uniform mat4 projection;

out vec3 Color;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    Color = color;
}
`

const fragmentShader = `#version 410 core
in vec3 Color;
out vec4 fragColor;

void main() {
    fragColor = vec4(Color, 1.0);
}
`

// MapView implements polygon rendering for all terrain cells
type MapView struct {
	shader      *graphics.Shader
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewMapView creates a new map view renderable
func NewMapView() *MapView {
	return &MapView{}
}

// Init initializes the map view rendering system
func (m *MapView) Init() error {
	var err error
	m.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	// Layout: position (2 floats) + color (3 floats)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 5*4, 2*4)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// SetWorld rebuilds the cell geometry from a freshly generated world.
// Each cell polygon is triangulated as a fan around the cell site, which
// is safe because polygons are star-shaped with respect to their site.
func (m *MapView) SetWorld(w *terrain.World) {
	defer profiling.Track("mapview.SetWorld")()

	vertices := make([]float32, 0, w.CellCount()*6*5)
	for i := 0; i < w.CellCount(); i++ {
		poly := w.PolygonOf(i)
		if len(poly) < 3 {
			continue
		}
		color := cellColor(w.Elevation(i), w.Moisture(i))
		site := w.Position(i)
		for j := 0; j < len(poly); j++ {
			k := (j + 1) % len(poly)
			vertices = append(vertices,
				float32(site.X()), float32(site.Y()), color[0], color[1], color[2],
				float32(poly[j].X()), float32(poly[j].Y()), color[0], color[1], color[2],
				float32(poly[k].X()), float32(poly[k].Y()), color[0], color[1], color[2],
			)
		}
	}

	m.vertexCount = int32(len(vertices) / 5)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render draws all cell polygons
func (m *MapView) Render(ctx renderer.RenderContext) {
	if m.vertexCount == 0 {
		return
	}
	defer profiling.Track("mapview.Render")()

	m.shader.Use()
	m.shader.SetMatrix4("projection", &ctx.Proj[0])

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (m *MapView) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

// SetViewport is a no-op; the projection arrives through the render context.
func (m *MapView) SetViewport(width, height int) {}
