package physics

import (
	"math"
	"testing"

	"github.com/san-kum/gravlab/internal/vec"
)

const testG = 1000.0

func TestForceAntisymmetry(t *testing.T) {
	pairs := []struct {
		a, b vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}},
		{vec.Vec2{X: 3, Y: 7}, vec.Vec2{X: -20, Y: 45}},
		{vec.Vec2{X: 0.1, Y: 0.1}, vec.Vec2{X: 0.2, Y: 0.3}},
	}

	for _, tt := range pairs {
		fab := Force(tt.a, tt.b, testG)
		fba := Force(tt.b, tt.a, testG)

		if fab != fba.Scale(-1) {
			t.Errorf("force %v->%v not antisymmetric: %v vs %v", tt.a, tt.b, fab, fba)
		}
	}
}

func TestForceMagnitudeAndDirection(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 100, Y: 0}

	f := Force(a, b, testG)

	// magnitude g/d³ scaled by the separation vector gives |f| = g/d²
	expected := testG / (100.0 * 100.0)
	if math.Abs(f.Length()-expected) > 1e-12 {
		t.Errorf("expected magnitude %g, got %g", expected, f.Length())
	}

	if f.X <= 0 || f.Y != 0 {
		t.Errorf("force should point from a toward b, got %v", f)
	}
}

func TestForceCoincidentParticles(t *testing.T) {
	p := vec.Vec2{X: 42, Y: 17}

	f := Force(p, p, testG)

	if f != vec.Zero() {
		t.Errorf("expected zero force for coincident particles, got %v", f)
	}
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Error("coincident particles must not produce NaN")
	}
}

func TestForceDistanceFloor(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}
	b := vec.Vec2{X: 0.5, Y: 0}

	// d < 1 is floored to 1, so magnitude is g and the force is g * r
	f := Force(a, b, testG)
	expected := testG * 0.5
	if math.Abs(f.X-expected) > 1e-9 {
		t.Errorf("expected floored force %g, got %g", expected, f.X)
	}
}

func TestForceNonNormalGuard(t *testing.T) {
	a := vec.Vec2{X: 0, Y: 0}

	// extreme separation underflows g/d³ to zero or subnormal
	far := vec.Vec2{X: 1e150, Y: 0}
	if f := Force(a, far, testG); f != vec.Zero() {
		t.Errorf("expected zero force at extreme separation, got %v", f)
	}

	// pathological constants must not propagate NaN/Inf
	for _, g := range []float64{math.Inf(1), math.NaN(), 0} {
		f := Force(a, vec.Vec2{X: 10, Y: 0}, g)
		if math.IsNaN(f.X) || math.IsInf(f.X, 0) {
			t.Errorf("g=%v produced non-finite force %v", g, f)
		}
	}
}

func TestIsNormal(t *testing.T) {
	tests := []struct {
		f        float64
		expected bool
	}{
		{1.0, true},
		{-1e300, true},
		{minNormal, true},
		{0, false},
		{minNormal / 2, false},
		{math.SmallestNonzeroFloat64, false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := isNormal(tt.f); got != tt.expected {
			t.Errorf("isNormal(%v): expected %v, got %v", tt.f, tt.expected, got)
		}
	}
}
