package vec

import (
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	sum := a.Add(b)
	if sum != (Vec2{4, -2}) {
		t.Errorf("expected (4,-2), got %v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec2{-2, 6}) {
		t.Errorf("expected (-2,6), got %v", diff)
	}

	if a.Add(b) != b.Add(a) {
		t.Error("addition should commute")
	}
}

func TestScale(t *testing.T) {
	v := Vec2{2, -3}

	if got := v.Scale(2); got != (Vec2{4, -6}) {
		t.Errorf("expected (4,-6), got %v", got)
	}

	if got := v.Scale(0); got != Zero() {
		t.Errorf("expected zero vector, got %v", got)
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{Vec2{3, 4}, 5},
		{Vec2{0, 0}, 0},
		{Vec2{-1, 0}, 1},
		{Vec2{0, -2}, 2},
	}

	for _, tt := range tests {
		if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("length of %v: expected %f, got %f", tt.v, tt.expected, got)
		}
	}
}

func TestZeroIdentity(t *testing.T) {
	v := Vec2{1.5, -2.5}
	if v.Add(Zero()) != v {
		t.Error("adding zero should be identity")
	}
}
