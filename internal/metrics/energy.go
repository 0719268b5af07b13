package metrics

import (
	"math"

	"github.com/san-kum/gravlab/internal/physics"
)

// Energy tracks total mechanical energy: kinetic ½|v|² per unit-mass
// particle plus pairwise potential -g/d with the same separation floor
// the force kernel uses.
type Energy struct {
	g       float64
	current float64
	samples int
}

func NewEnergy(g float64) *Energy {
	return &Energy{g: g}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(ps []physics.Particle, t float64) {
	e.current = Total(ps, e.g)
	e.samples++
}

// Value returns the most recently observed total energy.
func (e *Energy) Value() float64 { return e.current }

func (e *Energy) Reset() {
	e.current = 0
	e.samples = 0
}

// Total computes the instantaneous mechanical energy of a snapshot.
func Total(ps []physics.Particle, g float64) float64 {
	ke := 0.0
	pe := 0.0
	for i := range ps {
		v := ps[i].Vel
		ke += 0.5 * (v.X*v.X + v.Y*v.Y)
		for j := i + 1; j < len(ps); j++ {
			d := math.Max(ps[j].Pos.Sub(ps[i].Pos).Length(), physics.MinDistance)
			pe -= g / d
		}
	}
	return ke + pe
}

// Drift tracks the maximum relative deviation of total energy from its
// first observation. Wall damping removes energy, so over a bounded run
// this measures dissipation rather than integrator error alone.
type Drift struct {
	g        float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewDrift(g float64) *Drift {
	return &Drift{g: g}
}

func (d *Drift) Name() string { return "energy_drift" }

func (d *Drift) Observe(ps []physics.Particle, t float64) {
	energy := Total(ps, d.g)
	if d.samples == 0 {
		d.initial = energy
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(energy-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *Drift) Value() float64 { return d.maxDrift }

func (d *Drift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
