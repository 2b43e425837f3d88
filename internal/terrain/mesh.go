package terrain

import (
	"math"
	"sort"

	"github.com/fogleman/delaunay"
	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is the cached planar-graph view of the sampled points: per-cell
// neighbor lists and per-cell bounding polygons, both derived once from a
// Delaunay triangulation and never recomputed. Later pipeline stages only
// ever consult this cache.
type Mesh struct {
	neighbors [][]int32
	polygons  [][]mgl64.Vec2
}

// NeighborsOf returns the cached adjacent cell indices of cell i.
// The returned slice is shared; callers must not modify it.
func (m *Mesh) NeighborsOf(i int) []int32 {
	return m.neighbors[i]
}

// PolygonOf returns the cached boundary polygon of cell i as an ordered
// vertex list. The returned slice is shared; callers must not modify it.
func (m *Mesh) PolygonOf(i int) []mgl64.Vec2 {
	return m.polygons[i]
}

// buildMesh triangulates the point set and extracts the adjacency and
// polygon caches. Fewer than three points (or a fully collinear set)
// yields a mesh with empty neighbor lists, which downstream stages treat
// as a trivial world.
func buildMesh(points []mgl64.Vec2, width, height float64) *Mesh {
	n := len(points)
	mesh := &Mesh{
		neighbors: make([][]int32, n),
		polygons:  make([][]mgl64.Vec2, n),
	}
	if n < 3 {
		return mesh
	}

	sites := make([]delaunay.Point, n)
	for i, p := range points {
		sites[i] = delaunay.Point{X: p.X(), Y: p.Y()}
	}
	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		// Degenerate geometry (e.g. all points collinear). Treated like an
		// empty adjacency, not a failure.
		return mesh
	}

	// Each halfedge pairs a directed triangle edge with its twin; visiting
	// only the canonical one of each pair yields every undirected edge once.
	for e := 0; e < len(tri.Triangles); e++ {
		if e > tri.Halfedges[e] {
			p := int32(tri.Triangles[e])
			q := int32(tri.Triangles[nextHalfedge(e)])
			mesh.neighbors[p] = append(mesh.neighbors[p], q)
			mesh.neighbors[q] = append(mesh.neighbors[q], p)
		}
	}

	// Cell polygons are the circumcenters of the triangles around each
	// point, ordered by angle about the point and clamped to the domain
	// rectangle. Hull cells come out truncated; consumers only need a
	// drawable boundary, not an exact Voronoi partition.
	centers := make([]mgl64.Vec2, len(tri.Triangles)/3)
	for t := range centers {
		a := points[tri.Triangles[3*t]]
		b := points[tri.Triangles[3*t+1]]
		c := points[tri.Triangles[3*t+2]]
		centers[t] = clampToRect(circumcenter(a, b, c), width, height)
	}
	for t := range centers {
		for k := 0; k < 3; k++ {
			p := tri.Triangles[3*t+k]
			mesh.polygons[p] = append(mesh.polygons[p], centers[t])
		}
	}
	for i := range mesh.polygons {
		sortByAngle(mesh.polygons[i], points[i])
	}
	return mesh
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// circumcenter of the triangle abc. Near-degenerate triangles fall back
// to the centroid to keep the polygon bounded.
func circumcenter(a, b, c mgl64.Vec2) mgl64.Vec2 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * (ab.X()*ac.Y() - ab.Y()*ac.X())
	if math.Abs(d) < 1e-12 {
		return a.Add(b).Add(c).Mul(1.0 / 3.0)
	}
	abLen := ab.Dot(ab)
	acLen := ac.Dot(ac)
	ux := (ac.Y()*abLen - ab.Y()*acLen) / d
	uy := (ab.X()*acLen - ac.X()*abLen) / d
	return mgl64.Vec2{a.X() + ux, a.Y() + uy}
}

func clampToRect(p mgl64.Vec2, width, height float64) mgl64.Vec2 {
	x := math.Min(math.Max(p.X(), 0), width)
	y := math.Min(math.Max(p.Y(), 0), height)
	return mgl64.Vec2{x, y}
}

func sortByAngle(poly []mgl64.Vec2, center mgl64.Vec2) {
	sort.Slice(poly, func(i, j int) bool {
		ai := math.Atan2(poly[i].Y()-center.Y(), poly[i].X()-center.X())
		aj := math.Atan2(poly[j].Y()-center.Y(), poly[j].X()-center.X())
		return ai < aj
	})
}
