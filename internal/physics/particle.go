package physics

import "github.com/san-kum/gravlab/internal/vec"

// Particle is a unit point mass. Pos and Vel persist across steps and
// fully define simulation state; Acc is per-step scratch, recomputed at
// the start of every update and meaningless between steps.
type Particle struct {
	Pos vec.Vec2
	Vel vec.Vec2
	Acc vec.Vec2
}

// NewParticle returns a particle at pos with velocity vel and zero
// acceleration.
func NewParticle(pos, vel vec.Vec2) Particle {
	return Particle{Pos: pos, Vel: vel}
}
