// Package riverlayer renders extracted river segments on top of the map.
package riverlayer

import (
	"terramap/internal/graphics"
	renderer "terramap/internal/graphics/renderer"
	"terramap/internal/profiling"
	"terramap/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 position;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
out vec4 fragColor;

uniform vec3 riverColor;

void main() {
    fragColor = vec4(riverColor, 1.0);
}
`

// Flux cutoffs separating thin, medium and wide river strokes.
const (
	mediumFlux = 120.0
	wideFlux   = 300.0
)

type bucket struct {
	first int32
	count int32
	width float32
}

// RiverLayer implements line rendering for river segments, batched into
// width buckets so each stroke class is a single draw call.
type RiverLayer struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	buckets [3]bucket
}

// NewRiverLayer creates a new river layer renderable
func NewRiverLayer() *RiverLayer {
	return &RiverLayer{}
}

// Init initializes the river rendering system
func (r *RiverLayer) Init() error {
	var err error
	r.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// SetWorld rebuilds the line geometry from a freshly generated world
func (r *RiverLayer) SetWorld(w *terrain.World) {
	defer profiling.Track("riverlayer.SetWorld")()

	segments := w.Rivers()

	// Sort segments into width classes, widest drawn last.
	classes := [3][]terrain.RiverSegment{}
	for _, seg := range segments {
		switch {
		case seg.Flux >= wideFlux:
			classes[2] = append(classes[2], seg)
		case seg.Flux >= mediumFlux:
			classes[1] = append(classes[1], seg)
		default:
			classes[0] = append(classes[0], seg)
		}
	}

	widths := [3]float32{1.5, 2.5, 3.5}
	vertices := make([]float32, 0, len(segments)*4)
	var first int32
	for i, class := range classes {
		r.buckets[i] = bucket{first: first, count: int32(len(class) * 2), width: widths[i]}
		for _, seg := range class {
			vertices = append(vertices,
				float32(seg.From.X()), float32(seg.From.Y()),
				float32(seg.To.X()), float32(seg.To.Y()),
			)
		}
		first += int32(len(class) * 2)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render draws all river segments
func (r *RiverLayer) Render(ctx renderer.RenderContext) {
	defer profiling.Track("riverlayer.Render")()

	r.shader.Use()
	r.shader.SetMatrix4("projection", &ctx.Proj[0])
	r.shader.SetVector3("riverColor", 0.15, 0.35, 0.70)

	gl.BindVertexArray(r.vao)
	for _, b := range r.buckets {
		if b.count == 0 {
			continue
		}
		gl.LineWidth(b.width)
		gl.DrawArrays(gl.LINES, b.first, b.count)
	}
	gl.LineWidth(1.0)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (r *RiverLayer) Dispose() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
}

// SetViewport is a no-op; the projection arrives through the render context.
func (r *RiverLayer) SetViewport(width, height int) {}
