package terrain

import (
	"testing"
)

// TestGenerateScenario runs the reference scenario: a 1000x1000 domain
// with a 1000-point target.
func TestGenerateScenario(t *testing.T) {
	w := Generate(Config{Width: 1000, Height: 1000, Points: 1000, Seed: 42})

	n := w.CellCount()
	if n < 500 || n > 1500 {
		t.Fatalf("realized cell count %d outside the 50%%-150%% band of 1000", n)
	}

	for i := 0; i < n; i++ {
		if len(w.NeighborsOf(i)) == 0 {
			t.Errorf("cell %d has no neighbors", i)
		}
	}

	ocean := 0
	for i := 0; i < n; i++ {
		if w.Elevation(i) <= 0 {
			ocean++
		}
	}
	if ocean == 0 {
		t.Error("generated world has no ocean")
	}
}

// TestGenerateDegenerate verifies degenerate inputs produce an empty
// world and every query short-circuits instead of failing.
func TestGenerateDegenerate(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 0, Height: 1000, Points: 1000},
		{Width: 1000, Height: -1, Points: 1000},
		{Width: 1000, Height: 1000, Points: 0},
	} {
		w := Generate(cfg)
		if w.CellCount() != 0 {
			t.Errorf("config %+v produced %d cells, expected 0", cfg, w.CellCount())
		}
		if len(w.Rivers()) != 0 {
			t.Errorf("config %+v produced %d river segments, expected 0", cfg, len(w.Rivers()))
		}
		if w.CellAt(10, 10) != -1 {
			t.Errorf("CellAt on empty world returned %d, expected -1", w.CellAt(10, 10))
		}
	}
}

// TestGenerateDeterministic verifies a full pipeline run is reproducible
// from the seed, including the derived river network.
func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Width: 1000, Height: 800, Points: 800, Seed: 7}
	a := Generate(cfg)
	b := Generate(cfg)

	if a.CellCount() != b.CellCount() {
		t.Fatalf("cell counts differ: %d vs %d", a.CellCount(), b.CellCount())
	}
	for i := 0; i < a.CellCount(); i++ {
		if a.Elevation(i) != b.Elevation(i) || a.Flux(i) != b.Flux(i) ||
			a.Downhill(i) != b.Downhill(i) || a.CoastDistance(i) != b.CoastDistance(i) {
			t.Fatalf("cell %d differs between identical runs", i)
		}
	}
	if len(a.Rivers()) != len(b.Rivers()) {
		t.Fatalf("river counts differ: %d vs %d", len(a.Rivers()), len(b.Rivers()))
	}
}

// TestCellAt verifies picking returns the cell whose sample position is
// nearest the query point.
func TestCellAt(t *testing.T) {
	w := generatedTestWorld(t, 7)

	for _, i := range []int{0, w.CellCount() / 2, w.CellCount() - 1} {
		p := w.Position(i)
		if got := w.CellAt(p.X(), p.Y()); got != i {
			t.Errorf("CellAt(position of %d) = %d", i, got)
		}
	}
}

// BenchmarkGenerate measures a full pipeline run at the reference size.
func BenchmarkGenerate(b *testing.B) {
	cfg := Config{Width: 1000, Height: 1000, Points: 1000, Seed: 42}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(cfg)
	}
}
