package terrain

// drainageEpsilon is the strictly positive step added when a pit cell is
// raised above the cell it will drain through, so the gradient back to
// the coast is strictly downhill rather than a plateau.
const drainageEpsilon = 1e-5

// enforceDrainage eliminates local minima strictly above sea level by
// priority-flooding outward from the coastline: every cell at or below
// sea level seeds a min-heap ordered by current elevation, and the
// frontier is expanded lowest-first. An unvisited neighbor lower than the
// frontier cell is raised just above it before being enqueued, which
// leaves every reachable above-sea cell with a monotonically
// non-increasing elevation path to some below-sea cell.
//
// Cells unreachable from any seed (a landmass with no coastline in the
// domain) keep their raw elevation; that is an accepted edge case, not an
// error. Runs in O(N log N).
func enforceDrainage(w *World) {
	n := len(w.elevation)
	if n == 0 {
		return
	}

	visited := make([]bool, n)
	queue := NewHeap(func(a, b int32) bool {
		return w.elevation[a] < w.elevation[b]
	})

	for i := 0; i < n; i++ {
		if w.elevation[i] <= 0 {
			visited[i] = true
			queue.Push(int32(i))
		}
	}

	for {
		u, ok := queue.Pop()
		if !ok {
			break
		}
		for _, v := range w.mesh.NeighborsOf(int(u)) {
			if visited[v] {
				continue
			}
			if w.elevation[v] < w.elevation[u] {
				w.elevation[v] = w.elevation[u] + drainageEpsilon
			}
			visited[v] = true
			queue.Push(v)
		}
	}
}
