package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/vec"
)

func TestTotalEnergy(t *testing.T) {
	g := 1000.0
	ps := []physics.Particle{
		physics.NewParticle(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 4}),
		physics.NewParticle(vec.Vec2{X: 100, Y: 0}, vec.Zero()),
	}

	// ke = ½·25, pe = -g/100
	expected := 12.5 - g/100.0
	if got := Total(ps, g); math.Abs(got-expected) > 1e-9 {
		t.Errorf("expected energy %g, got %g", expected, got)
	}
}

func TestTotalEnergyCoincident(t *testing.T) {
	// the separation floor keeps potential finite for coincident pairs
	pos := vec.Vec2{X: 5, Y: 5}
	ps := []physics.Particle{
		physics.NewParticle(pos, vec.Zero()),
		physics.NewParticle(pos, vec.Zero()),
	}

	got := Total(ps, 1000.0)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected finite energy, got %v", got)
	}
	if got != -1000.0 {
		t.Errorf("expected -1000 (floored separation), got %g", got)
	}
}

func TestEnergyMetricReset(t *testing.T) {
	m := NewEnergy(1000.0)
	ps := []physics.Particle{
		physics.NewParticle(vec.Zero(), vec.Vec2{X: 1, Y: 0}),
	}

	m.Observe(ps, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestDrift(t *testing.T) {
	d := NewDrift(1000.0)

	slow := []physics.Particle{physics.NewParticle(vec.Zero(), vec.Vec2{X: 2, Y: 0})}
	fast := []physics.Particle{physics.NewParticle(vec.Zero(), vec.Vec2{X: 4, Y: 0})}

	d.Observe(slow, 0)
	if d.Value() != 0 {
		t.Errorf("drift after first observation should be 0, got %g", d.Value())
	}

	// energy goes 2 → 8, relative drift 3
	d.Observe(fast, 1)
	if math.Abs(d.Value()-3.0) > 1e-12 {
		t.Errorf("expected drift 3, got %g", d.Value())
	}

	// drift is a running max: dropping back does not lower it
	d.Observe(slow, 2)
	if math.Abs(d.Value()-3.0) > 1e-12 {
		t.Errorf("drift should keep its max, got %g", d.Value())
	}
}

func TestMomentum(t *testing.T) {
	m := NewMomentum()
	ps := []physics.Particle{
		physics.NewParticle(vec.Zero(), vec.Vec2{X: 1, Y: 2}),
		physics.NewParticle(vec.Zero(), vec.Vec2{X: 2, Y: 2}),
	}

	m.Observe(ps, 0)
	if math.Abs(m.Value()-5.0) > 1e-12 {
		t.Errorf("expected |p| = 5, got %g", m.Value())
	}
}

func TestWallContact(t *testing.T) {
	w := NewWallContact(100, 100)

	inside := []physics.Particle{physics.NewParticle(vec.Vec2{X: 50, Y: 50}, vec.Zero())}
	onWall := []physics.Particle{physics.NewParticle(vec.Vec2{X: 0, Y: 50}, vec.Zero())}

	w.Observe(inside, 0)
	w.Observe(onWall, 1)

	if math.Abs(w.Value()-0.5) > 1e-12 {
		t.Errorf("expected contact fraction 0.5, got %g", w.Value())
	}
}

func TestCollect(t *testing.T) {
	ms := []Metric{NewMomentum(), NewWallContact(10, 10)}
	got := Collect(ms)

	if _, ok := got["momentum"]; !ok {
		t.Error("missing momentum")
	}
	if _, ok := got["wall_contact"]; !ok {
		t.Error("missing wall_contact")
	}
}
