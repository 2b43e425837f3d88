package terrain

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// downhillThreshold keeps near-sea cells out of the drainage forest;
	// only cells above it get a downhill target.
	downhillThreshold = 0.05

	// riverFluxThreshold is the accumulated flow volume a drainage link
	// must carry before it is emitted as a river segment.
	riverFluxThreshold = 50.0

	// noCell marks "no downhill target" / "coast distance unknown".
	noCell = int32(-1)
)

// RiverSegment is one drainage link whose accumulated flow crossed the
// river threshold. Flux is the carried volume, usable as a width hint.
type RiverSegment struct {
	From mgl64.Vec2
	To   mgl64.Vec2
	Flux float64
}

// routeFlow derives the river network from the drainage-enforced
// elevation field. Pass order is a correctness dependency, not a
// performance choice: coast distances must be stable before downhill
// assignment (its tiebreak reads them), and flux must accumulate in
// strict high-to-low order so every cell is finalized before the cell it
// drains into.
func routeFlow(w *World) {
	assignCoastDistance(w)
	assignDownhill(w)
	accumulateFlux(w)
	w.rivers = extractRivers(w)
}

// assignCoastDistance runs a multi-source BFS from every below-sea-level
// cell over the adjacency cache, assigning each cell its hop count to the
// nearest ocean cell. Unreached cells keep the noCell sentinel.
func assignCoastDistance(w *World) {
	frontier := make([]int32, 0, len(w.coastDist))
	for i := range w.coastDist {
		if w.elevation[i] <= 0 {
			w.coastDist[i] = 0
			frontier = append(frontier, int32(i))
		} else {
			w.coastDist[i] = noCell
		}
	}
	for len(frontier) > 0 {
		var next []int32
		for _, u := range frontier {
			for _, v := range w.mesh.NeighborsOf(int(u)) {
				if w.coastDist[v] == noCell {
					w.coastDist[v] = w.coastDist[u] + 1
					next = append(next, v)
				}
			}
		}
		frontier = next
	}
}

// assignDownhill picks, for every cell meaningfully above sea level, the
// strictly lower neighbor its drainage is routed to. Elevation ties among
// candidates are broken toward the neighbor closer to the coast, which
// biases flow onto shorter, more natural drainage paths. A cell with no
// strictly lower neighbor is a local drainage endpoint.
func assignDownhill(w *World) {
	for i := range w.downhill {
		w.downhill[i] = noCell
		if w.elevation[i] <= downhillThreshold {
			continue
		}
		best := noCell
		for _, v := range w.mesh.NeighborsOf(i) {
			if w.elevation[v] >= w.elevation[i] {
				continue
			}
			if best == noCell || lowerOrNearerCoast(w, v, best) {
				best = v
			}
		}
		w.downhill[i] = best
	}
}

func lowerOrNearerCoast(w *World, a, b int32) bool {
	if w.elevation[a] != w.elevation[b] {
		return w.elevation[a] < w.elevation[b]
	}
	return coastRank(w.coastDist[a]) < coastRank(w.coastDist[b])
}

// coastRank orders unknown coast distances after every known one.
func coastRank(d int32) int32 {
	if d == noCell {
		return 1<<31 - 1
	}
	return d
}

// accumulateFlux seeds every cell with one unit of runoff, then pushes
// volumes along downhill links in (elevation desc, coast distance desc)
// order. Drainage always moves to strictly lower elevation, so by the
// time a cell is processed every upstream contributor has already added
// its final volume; the accumulation is exact in a single pass.
func accumulateFlux(w *World) {
	n := len(w.flux)
	for i := range w.flux {
		w.flux[i] = 1
	}

	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if w.elevation[i] != w.elevation[j] {
			return w.elevation[i] > w.elevation[j]
		}
		// Farthest from the coast first, consistent with the downhill
		// tiebreak.
		return coastRank(w.coastDist[i]) > coastRank(w.coastDist[j])
	})

	for _, i := range order {
		if w.elevation[i] > 0 && w.downhill[i] != noCell {
			w.flux[w.downhill[i]] += w.flux[i]
		}
	}
}

// extractRivers emits one segment per drainage link whose accumulated
// flow exceeds the river threshold. The output is a flat unordered list;
// chained segments are not merged into polylines.
func extractRivers(w *World) []RiverSegment {
	var rivers []RiverSegment
	for i := range w.flux {
		if w.flux[i] <= riverFluxThreshold || w.elevation[i] <= 0 || w.downhill[i] == noCell {
			continue
		}
		rivers = append(rivers, RiverSegment{
			From: w.positions[i],
			To:   w.positions[w.downhill[i]],
			Flux: w.flux[i],
		})
	}
	return rivers
}
