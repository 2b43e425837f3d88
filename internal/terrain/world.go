// Package terrain generates a planar polygonal terrain model: blue-noise
// sampled cells, Delaunay-derived adjacency, noise-synthesized elevation
// and moisture fields, a depression-free drainage surface and a river
// network accumulated from simulated runoff.
package terrain

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Config is the immutable generation input. Degenerate values (zero or
// negative dimensions or point count) produce an empty world rather than
// an error.
type Config struct {
	Width  float64
	Height float64
	Points int
	Seed   int64
}

// World holds the generated terrain as parallel per-cell arrays, sized to
// the realized sample count and allocated once at generation start. Each
// pipeline stage mutates exactly one aspect in turn; after Generate
// returns, the world is read-only.
type World struct {
	cfg  Config
	mesh *Mesh

	positions []mgl64.Vec2
	elevation []float64
	moisture  []float64
	downhill  []int32
	coastDist []int32
	flux      []float64

	rivers []RiverSegment
}

// Generate runs the full pipeline: sampling, graph construction, field
// synthesis, drainage enforcement, flow routing. It is single-threaded
// and fully synchronous; each stage consumes the previous stage's
// committed output.
func Generate(cfg Config) *World {
	rng := rand.New(rand.NewSource(cfg.Seed))

	w := &World{cfg: cfg}
	w.positions = samplePoints(rng, cfg.Width, cfg.Height, cfg.Points)

	n := len(w.positions)
	w.elevation = make([]float64, n)
	w.moisture = make([]float64, n)
	w.downhill = make([]int32, n)
	w.coastDist = make([]int32, n)
	w.flux = make([]float64, n)

	w.mesh = buildMesh(w.positions, cfg.Width, cfg.Height)
	synthesizeFields(w, rng)
	enforceDrainage(w)
	routeFlow(w)
	return w
}

// Seed returns the seed the world was generated from.
func (w *World) Seed() int64 { return w.cfg.Seed }

// Bounds returns the domain rectangle dimensions.
func (w *World) Bounds() (width, height float64) {
	return w.cfg.Width, w.cfg.Height
}

// CellCount returns the realized number of cells, which is the system's
// N everywhere downstream (not the requested target count).
func (w *World) CellCount() int { return len(w.positions) }

// Position returns the sample position of cell i.
func (w *World) Position(i int) mgl64.Vec2 { return w.positions[i] }

// Elevation returns cell i's elevation; values at or below zero are
// ocean.
func (w *World) Elevation(i int) float64 { return w.elevation[i] }

// Moisture returns cell i's moisture, an unbounded signed scalar used
// only for classification by consumers.
func (w *World) Moisture(i int) float64 { return w.moisture[i] }

// Flux returns cell i's accumulated drainage volume.
func (w *World) Flux(i int) float64 { return w.flux[i] }

// Downhill returns the index of the cell i drains into, or -1 when i is
// at or below sea level or has no lower neighbor. Both are valid terminal
// states, not failures.
func (w *World) Downhill(i int) int32 { return w.downhill[i] }

// CoastDistance returns cell i's hop distance to the nearest ocean cell,
// or -1 when no ocean cell is reachable.
func (w *World) CoastDistance(i int) int32 { return w.coastDist[i] }

// NeighborsOf returns the cached adjacent cell indices of cell i.
func (w *World) NeighborsOf(i int) []int32 { return w.mesh.NeighborsOf(i) }

// PolygonOf returns cell i's boundary polygon as an ordered vertex list.
func (w *World) PolygonOf(i int) []mgl64.Vec2 { return w.mesh.PolygonOf(i) }

// Rivers returns the river segment list, recomputed wholesale on every
// generation run.
func (w *World) Rivers() []RiverSegment { return w.rivers }

// CellAt returns the index of the cell nearest to the given domain
// coordinate, or -1 for an empty world. A linear scan is fine for the
// occasional picking query.
func (w *World) CellAt(x, y float64) int {
	best := -1
	bestDist := 0.0
	p := mgl64.Vec2{x, y}
	for i, q := range w.positions {
		d := q.Sub(p)
		dist := d.Dot(d)
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
