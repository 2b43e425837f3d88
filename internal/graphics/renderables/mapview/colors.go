package mapview

const snowLine = 0.85

var (
	deepWater    = [3]float32{0.04, 0.12, 0.30}
	shallowWater = [3]float32{0.13, 0.34, 0.55}
	drySand      = [3]float32{0.78, 0.72, 0.52}
	wetGrass     = [3]float32{0.27, 0.53, 0.26}
	dryRock      = [3]float32{0.55, 0.48, 0.38}
	wetForest    = [3]float32{0.22, 0.40, 0.25}
	snow         = [3]float32{0.93, 0.94, 0.95}
)

// cellColor maps a cell's elevation and moisture to a flat fill color.
// Water shades darker with depth, land blends dry-to-wet palettes along
// the moisture axis and low-to-high along the elevation axis, and peaks
// above the snow line render white.
func cellColor(elevation, moisture float64) [3]float32 {
	if elevation <= 0 {
		depth := clamp01(-elevation / 0.6)
		return lerpColor(shallowWater, deepWater, depth)
	}
	if elevation >= snowLine {
		return snow
	}

	wetness := clamp01((moisture + 1) / 2)
	height := clamp01(elevation / snowLine)
	low := lerpColor(drySand, wetGrass, wetness)
	high := lerpColor(dryRock, wetForest, wetness)
	return lerpColor(low, high, height)
}

func lerpColor(a, b [3]float32, t float64) [3]float32 {
	f := float32(t)
	return [3]float32{
		a[0] + (b[0]-a[0])*f,
		a[1] + (b[1]-a[1])*f,
		a[2] + (b[2]-a[2])*f,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
