package terrain

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// separationFactor scales the density-derived minimum distance between
	// sampled points. Lower values pack more points in at the cost of a
	// less even distribution.
	separationFactor = 0.85

	// triesPerCandidate bounds the dart-throwing retries for each requested
	// point before it is given up on. The realized point count is therefore
	// approximate, not exact.
	triesPerCandidate = 10
)

// minSeparation derives the blue-noise minimum distance from the target
// density over the domain.
func minSeparation(width, height float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Sqrt(width*height/float64(target)) * separationFactor
}

// samplePoints throws darts at the domain rectangle, accepting a candidate
// only if it keeps minSeparation from every accepted point. A background
// grid with cell size r/sqrt(2) holds at most one point per cell, so the
// distance check only inspects the 5x5 neighborhood around a candidate.
//
// Degenerate input (non-positive dimensions or target) yields an empty
// slice; every later pipeline stage treats an empty cell set as a no-op.
func samplePoints(rng *rand.Rand, width, height float64, target int) []mgl64.Vec2 {
	if width <= 0 || height <= 0 || target <= 0 {
		return nil
	}

	r := minSeparation(width, height, target)
	r2 := r * r
	cellSize := r / math.Sqrt2
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	// Grid stores an index into points, or -1 for an empty cell.
	grid := make([]int32, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	toCell := func(p mgl64.Vec2) (int, int) {
		gx := int(p.X() / cellSize)
		gy := int(p.Y() / cellSize)
		if gx >= gridW {
			gx = gridW - 1
		}
		if gy >= gridH {
			gy = gridH - 1
		}
		return gx, gy
	}

	farEnough := func(p mgl64.Vec2, points []mgl64.Vec2) bool {
		gx, gy := toCell(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				nx, ny := gx+dx, gy+dy
				if nx < 0 || nx >= gridW || ny < 0 || ny >= gridH {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx < 0 {
					continue
				}
				d := points[idx].Sub(p)
				if d.Dot(d) < r2 {
					return false
				}
			}
		}
		return true
	}

	points := make([]mgl64.Vec2, 0, target)
	for k := 0; k < target; k++ {
		for try := 0; try < triesPerCandidate; try++ {
			p := mgl64.Vec2{rng.Float64() * width, rng.Float64() * height}
			if farEnough(p, points) {
				gx, gy := toCell(p)
				grid[gy*gridW+gx] = int32(len(points))
				points = append(points, p)
				break
			}
		}
	}
	return points
}
