package sim

import (
	"math/rand"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/vec"
)

// MaxInitialSpeed bounds the per-axis velocity of randomly seeded
// particles to [-MaxInitialSpeed, MaxInitialSpeed].
const MaxInitialSpeed = 5.0

// Simulation owns a fixed, ordered set of particles confined to a
// rectangular domain. Particle order is stable and only affects
// floating-point summation order, not the physics.
//
// A Simulation is not safe for concurrent use: one driver alternates
// Step and Snapshot calls.
type Simulation struct {
	cfg       Config
	particles []physics.Particle
}

// New builds a simulation from caller-supplied initial particles. The
// slice is copied and accelerations zeroed; the particle count is fixed
// from here on.
func New(cfg Config, initial []physics.Particle) *Simulation {
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	if cfg.Speed == 0 {
		cfg.Speed = 1.0
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	ps := make([]physics.Particle, len(initial))
	copy(ps, initial)
	for i := range ps {
		ps[i].Acc = vec.Zero()
	}
	return &Simulation{cfg: cfg, particles: ps}
}

// NewRandom seeds n particles uniformly inside the domain with velocity
// components drawn from [-MaxInitialSpeed, MaxInitialSpeed].
func NewRandom(cfg Config, n int, rng *rand.Rand) *Simulation {
	ps := make([]physics.Particle, n)
	for i := range ps {
		ps[i] = physics.NewParticle(
			vec.Vec2{X: rng.Float64() * cfg.Width, Y: rng.Float64() * cfg.Height},
			vec.Vec2{
				X: (rng.Float64() - 0.5) * 2 * MaxInitialSpeed,
				Y: (rng.Float64() - 0.5) * 2 * MaxInitialSpeed,
			},
		)
	}
	return New(cfg, ps)
}

// Len returns the particle count.
func (s *Simulation) Len() int { return len(s.particles) }

// Config returns the constants the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Snapshot copies the current particle states in order. The copy is the
// caller's to keep; mutating it does not touch the simulation.
func (s *Simulation) Snapshot() []physics.Particle {
	out := make([]physics.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Step advances every particle by dt of simulated time, split across
// the configured sub-iterations. It mutates the owned particles and has
// no failure path; a call runs to completion.
func (s *Simulation) Step(dt float64) {
	h := dt * s.cfg.Speed / float64(s.cfg.Iterations)
	for it := 0; it < s.cfg.Iterations; it++ {
		s.accumulate()
		s.integrate(h)
	}
}

// accumulate recomputes every acceleration from scratch with the
// symmetric pair loop: each unordered pair is evaluated once, the force
// added to i and subtracted from j. The i == j pair contributes a zero
// vector and is left in rather than special-cased.
func (s *Simulation) accumulate() {
	ps := s.particles
	for i := range ps {
		ps[i].Acc = vec.Zero()
	}
	if s.cfg.Workers > 1 && len(ps) >= minParallelParticles {
		s.accumulateParallel()
		return
	}
	for i := range ps {
		for j := 0; j <= i; j++ {
			f := physics.Force(ps[i].Pos, ps[j].Pos, s.cfg.G)
			ps[i].Acc = ps[i].Acc.Add(f)
			ps[j].Acc = ps[j].Acc.Sub(f)
		}
	}
}

// integrate applies one semi-implicit Euler sub-step: velocity first,
// then position from the updated velocity, then wall response.
func (s *Simulation) integrate(h float64) {
	for i := range s.particles {
		p := &s.particles[i]
		p.Vel = p.Vel.Add(p.Acc.Scale(h))
		p.Pos = p.Pos.Add(p.Vel.Scale(h))
		s.bounce(p)
	}
}

// bounce clamps each axis to the domain independently and reflects that
// axis's velocity component with damping. A corner hit corrects both.
func (s *Simulation) bounce(p *physics.Particle) {
	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X *= -s.cfg.Bounciness
	}
	if p.Pos.X > s.cfg.Width {
		p.Pos.X = s.cfg.Width
		p.Vel.X *= -s.cfg.Bounciness
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y *= -s.cfg.Bounciness
	}
	if p.Pos.Y > s.cfg.Height {
		p.Pos.Y = s.cfg.Height
		p.Vel.Y *= -s.cfg.Bounciness
	}
}
