package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestCoastDistanceChain verifies hop counts on a hand-wired path graph.
func TestCoastDistanceChain(t *testing.T) {
	w := chainWorld([]float64{1.0, 0.8, 0.6, -0.2})
	assignCoastDistance(w)

	want := []int32{3, 2, 1, 0}
	for i, expected := range want {
		if w.coastDist[i] != expected {
			t.Errorf("cell %d coast distance = %d, expected %d", i, w.coastDist[i], expected)
		}
	}
}

// TestCoastDistanceUnreachable verifies cells with no path to the ocean
// keep the unknown sentinel.
func TestCoastDistanceUnreachable(t *testing.T) {
	w := chainWorld([]float64{0.5, 0.7})
	assignCoastDistance(w)

	for i := range w.coastDist {
		if w.coastDist[i] != noCell {
			t.Errorf("cell %d coast distance = %d, expected unknown (-1)", i, w.coastDist[i])
		}
	}
}

// TestDownhillChain verifies downhill targets and flux accumulation on a
// simple descending chain into the ocean.
func TestDownhillChain(t *testing.T) {
	w := chainWorld([]float64{1.0, 0.8, 0.6, -0.2})
	routeFlow(w)

	wantDownhill := []int32{1, 2, 3, noCell}
	for i, expected := range wantDownhill {
		if w.downhill[i] != expected {
			t.Errorf("cell %d downhill = %d, expected %d", i, w.downhill[i], expected)
		}
	}

	wantFlux := []float64{1, 2, 3, 4}
	for i, expected := range wantFlux {
		if math.Abs(w.flux[i]-expected) > 1e-12 {
			t.Errorf("cell %d flux = %v, expected %v", i, w.flux[i], expected)
		}
	}

	if len(w.rivers) != 0 {
		t.Errorf("chain flux never crosses the river threshold, got %d segments", len(w.rivers))
	}
}

// TestDownhillNearSeaExcluded verifies cells at or below the near-sea
// threshold get no downhill target.
func TestDownhillNearSeaExcluded(t *testing.T) {
	w := chainWorld([]float64{0.04, -0.2})
	routeFlow(w)

	if w.downhill[0] != noCell {
		t.Errorf("cell below the downhill threshold got target %d", w.downhill[0])
	}
}

// TestDownhillTiebreakPrefersCoast verifies that among equally low
// neighbors, drainage routes toward the one closer to the sea.
func TestDownhillTiebreakPrefersCoast(t *testing.T) {
	// 0 is a peak with two equal-elevation neighbors: 1 drains to the
	// ocean (3), 2 is landlocked.
	w := &World{
		positions: []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}, {2, 0}},
		elevation: []float64{1.0, 0.5, 0.5, -1.0},
		downhill:  make([]int32, 4),
		coastDist: make([]int32, 4),
		flux:      make([]float64, 4),
		mesh: &Mesh{
			neighbors: [][]int32{{1, 2}, {0, 3}, {0}, {1}},
			polygons:  make([][]mgl64.Vec2, 4),
		},
	}
	routeFlow(w)

	if w.downhill[0] != 1 {
		t.Errorf("peak drains to %d, expected the coast-nearer neighbor 1", w.downhill[0])
	}
}

// TestRiverExtractionThreshold verifies segments are emitted exactly for
// links whose accumulated flux exceeds the threshold.
func TestRiverExtractionThreshold(t *testing.T) {
	// A 60-cell slope into the ocean: flux at cell i is i+1, so cells
	// 50..58 carry more than the 50-unit threshold.
	elevations := make([]float64, 60)
	for i := range elevations {
		elevations[i] = 6.0 - float64(i)*0.1
	}
	elevations[59] = -0.1
	w := chainWorld(elevations)
	routeFlow(w)

	if len(w.rivers) != 9 {
		t.Fatalf("got %d river segments, expected 9", len(w.rivers))
	}
	for _, seg := range w.rivers {
		if seg.Flux <= riverFluxThreshold {
			t.Errorf("segment with flux %v emitted at threshold %v", seg.Flux, riverFluxThreshold)
		}
	}
}

// TestDownhillNoCycles verifies the downhill relation on a generated
// world is a forest: following targets terminates within N steps.
func TestDownhillNoCycles(t *testing.T) {
	w := generatedTestWorld(t, 42)

	n := w.CellCount()
	for i := 0; i < n; i++ {
		cur := int32(i)
		for steps := 0; cur != noCell; steps++ {
			if steps > n {
				t.Fatalf("downhill chain from cell %d did not terminate within %d steps", i, n)
			}
			cur = w.Downhill(int(cur))
		}
	}
}

// TestFluxConservation verifies every cell's final volume is exactly its
// own runoff plus the inflow of all cells draining into it.
func TestFluxConservation(t *testing.T) {
	w := generatedTestWorld(t, 42)

	n := w.CellCount()
	inflow := make([]float64, n)
	for i := 0; i < n; i++ {
		if target := w.Downhill(i); target != noCell && w.Elevation(i) > 0 {
			inflow[target] += w.Flux(i)
		}
	}
	for i := 0; i < n; i++ {
		want := 1 + inflow[i]
		if math.Abs(w.Flux(i)-want) > 1e-9 {
			t.Fatalf("cell %d flux = %v, expected 1 + inflow = %v", i, w.Flux(i), want)
		}
	}
}

// TestRiverSegmentsValid verifies every emitted segment starts at an
// above-sea cell with a downhill target and carries suprathreshold flux.
func TestRiverSegmentsValid(t *testing.T) {
	w := generatedTestWorld(t, 1337)

	for _, seg := range w.Rivers() {
		if seg.Flux <= riverFluxThreshold {
			t.Errorf("river segment carries flux %v at threshold %v", seg.Flux, riverFluxThreshold)
		}
		i := w.CellAt(seg.From.X(), seg.From.Y())
		if w.Elevation(i) <= 0 {
			t.Errorf("river segment starts at below-sea cell %d", i)
		}
		if w.Downhill(i) == noCell {
			t.Errorf("river segment starts at cell %d with no downhill target", i)
		}
	}
}
