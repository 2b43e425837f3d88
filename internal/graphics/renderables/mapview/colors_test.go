package mapview

import "testing"

func TestCellColorWaterDarkensWithDepth(t *testing.T) {
	shallow := cellColor(-0.05, 0)
	deep := cellColor(-0.8, 0)

	for i := 0; i < 3; i++ {
		if deep[i] > shallow[i] {
			t.Errorf("channel %d: deep water %v brighter than shallow %v", i, deep[i], shallow[i])
		}
	}
}

func TestCellColorSnowAboveSnowLine(t *testing.T) {
	got := cellColor(0.95, 0.5)
	if got != snow {
		t.Errorf("expected snow color above snow line, got %v", got)
	}
}

func TestCellColorMoistureGreensLowland(t *testing.T) {
	dry := cellColor(0.1, -1.5)
	wet := cellColor(0.1, 1.5)

	if wet[1] <= wet[0] {
		t.Errorf("wet lowland should be green dominant, got %v", wet)
	}
	if dry[0] <= wet[0] {
		t.Errorf("dry lowland should carry more red than wet, got dry %v wet %v", dry, wet)
	}
}

func TestCellColorChannelsInRange(t *testing.T) {
	for _, elev := range []float64{-2, -0.3, 0, 0.01, 0.4, 0.84, 0.85, 2} {
		for _, moist := range []float64{-2, -0.5, 0, 0.5, 2} {
			c := cellColor(elev, moist)
			for i := 0; i < 3; i++ {
				if c[i] < 0 || c[i] > 1 {
					t.Errorf("cellColor(%v, %v) channel %d out of range: %v", elev, moist, i, c[i])
				}
			}
		}
	}
}
