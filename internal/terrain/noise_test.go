package terrain

import (
	"math"
	"math/rand"
	"testing"
)

// TestFBMDeterministic verifies identical seeds produce identical noise.
func TestFBMDeterministic(t *testing.T) {
	a := newFBMNoise(42, rand.New(rand.NewSource(1)))
	b := newFBMNoise(42, rand.New(rand.NewSource(1)))

	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 500; i++ {
		x := rng.Float64()*20 - 10
		y := rng.Float64()*20 - 10
		va := a.at(x, y, 5)
		vb := b.at(x, y, 5)
		if va != vb {
			t.Fatalf("fbm not deterministic at (%f,%f): %f vs %f", x, y, va, vb)
		}
	}
}

// TestFBMOffsetDecorrelates verifies different run offsets change the
// field even for the same noise seed.
func TestFBMOffsetDecorrelates(t *testing.T) {
	a := newFBMNoise(42, rand.New(rand.NewSource(1)))
	b := newFBMNoise(42, rand.New(rand.NewSource(2)))

	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.37
		if a.at(x, -x, 4) == b.at(x, -x, 4) {
			same++
		}
	}
	if same == 100 {
		t.Error("fbm fields with different offsets are identical")
	}
}

// TestFBMRange verifies the octave sum stays inside the amplitude bound
// (1 + 1/2 + 1/4 + ... < 2).
func TestFBMRange(t *testing.T) {
	f := newFBMNoise(7, rand.New(rand.NewSource(3)))
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 2000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		v := f.at(x, y, 5)
		if math.Abs(v) >= 2 {
			t.Fatalf("fbm(%f,%f) = %f, outside (-2, 2)", x, y, v)
		}
	}
}

// TestFBMContinuity verifies nearby samples stay close; coherent noise
// must not jump.
func TestFBMContinuity(t *testing.T) {
	f := newFBMNoise(42, rand.New(rand.NewSource(1)))

	v1 := f.at(1.0, 1.0, 5)
	v2 := f.at(1.001, 1.0, 5)
	if diff := math.Abs(v1 - v2); diff >= 0.1 {
		t.Errorf("fbm not continuous: f(1.0)=%f f(1.001)=%f diff=%f", v1, v2, diff)
	}
}
