package terrain

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// offsetRange decorrelates successive generation runs: each fbmNoise gets
// a random sample-space offset in [-offsetRange, offsetRange).
const offsetRange = 1000.0

// fbmNoise evaluates fractal Brownian motion over a coherent simplex
// noise source: octaves are summed with amplitude halving and frequency
// doubling per step.
type fbmNoise struct {
	noise   opensimplex.Noise
	offsetX float64
	offsetY float64
}

func newFBMNoise(seed int64, rng *rand.Rand) *fbmNoise {
	return &fbmNoise{
		noise:   opensimplex.New(seed),
		offsetX: (rng.Float64()*2 - 1) * offsetRange,
		offsetY: (rng.Float64()*2 - 1) * offsetRange,
	}
}

// at sums octaves of signed noise at the given sample-space coordinate.
// With amplitudes 1, 1/2, 1/4, ... the result stays within (-2, 2).
func (f *fbmNoise) at(x, y float64, octaves int) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	for o := 0; o < octaves; o++ {
		sum += amplitude * f.noise.Eval2(x*frequency+f.offsetX, y*frequency+f.offsetY)
		amplitude *= 0.5
		frequency *= 2.0
	}
	return sum
}
