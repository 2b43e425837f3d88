package terrain

import (
	"math"
	"math/rand"
)

const (
	// Octave counts for the layered noise terms.
	elevationOctaves = 5
	ridgeOctaves     = 4
	moistureOctaves  = 4

	// ridgeWeight scales the rectified higher-frequency term that injects
	// ridged detail into the elevation field.
	ridgeWeight = 0.3

	// elevationBias pushes the mean elevation below the sea-level
	// threshold so a coastline exists.
	elevationBias = 0.22

	// coastalMoistureBonus biases cells whose raw elevation is below sea
	// level (and, pre-smoothing, their surroundings) wetter.
	coastalMoistureBonus = 0.3

	// smoothingIterations bounds the neighbor-averaging blur. It is a
	// fixed-cost blur, not an iterate-to-convergence solve.
	smoothingIterations = 2
)

// synthesizeFields fills the elevation and moisture arrays from layered
// coherent noise and then relaxes both with the smoothing blur.
//
// The sample-space scale is derived from the domain so that the base
// octave spans a handful of coherent features regardless of domain size.
func synthesizeFields(w *World, rng *rand.Rand) {
	n := len(w.positions)
	if n == 0 {
		return
	}

	scale := math.Max(w.cfg.Width, w.cfg.Height) / 4
	base := newFBMNoise(w.cfg.Seed, rng)
	ridge := newFBMNoise(w.cfg.Seed+1, rng)
	wet := newFBMNoise(w.cfg.Seed+2, rng)

	for i, p := range w.positions {
		x := p.X() / scale
		y := p.Y() / scale
		elev := base.at(x, y, elevationOctaves)
		// Rectified higher-frequency term: ridged detail.
		elev += ridgeWeight * math.Abs(ridge.at(x*2, y*2, ridgeOctaves))
		elev -= elevationBias
		w.elevation[i] = elev

		moisture := wet.at(x, y, moistureOctaves)
		if elev < 0 {
			moisture += coastalMoistureBonus
		}
		w.moisture[i] = moisture
	}

	smoothField(w.elevation, w.mesh, smoothingIterations)
	smoothField(w.moisture, w.mesh, smoothingIterations)
}

// smoothField runs the neighbor-averaging blur: each iteration replaces
// every cell's value with the mean of itself and its cached neighbors.
// The pass ping-pongs between two buffers so no iteration reads values
// already updated within the same pass; smoothing in place would change
// the averaging semantics mid-iteration.
func smoothField(field []float64, mesh *Mesh, iterations int) {
	if len(field) == 0 {
		return
	}
	next := make([]float64, len(field))
	cur := field
	for iter := 0; iter < iterations; iter++ {
		for i := range cur {
			sum := cur[i]
			neighbors := mesh.NeighborsOf(i)
			for _, nb := range neighbors {
				sum += cur[nb]
			}
			next[i] = sum / float64(len(neighbors)+1)
		}
		cur, next = next, cur
	}
	if &cur[0] != &field[0] {
		copy(field, cur)
	}
}
