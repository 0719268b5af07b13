package metrics

import (
	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/vec"
)

// Momentum tracks the magnitude of total linear momentum. With unit
// masses and no walls it should stay near its initial value; wall
// impacts are the only external impulse.
type Momentum struct {
	current float64
}

func NewMomentum() *Momentum {
	return &Momentum{}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(ps []physics.Particle, t float64) {
	px, py := 0.0, 0.0
	for i := range ps {
		px += ps[i].Vel.X
		py += ps[i].Vel.Y
	}
	m.current = vec.Vec2{X: px, Y: py}.Length()
}

func (m *Momentum) Value() float64 { return m.current }

func (m *Momentum) Reset() { m.current = 0 }

// WallContact tracks the fraction of observations in which at least one
// particle sat on a domain wall.
type WallContact struct {
	width, height float64
	hits          int
	samples       int
}

func NewWallContact(width, height float64) *WallContact {
	return &WallContact{width: width, height: height}
}

func (w *WallContact) Name() string { return "wall_contact" }

func (w *WallContact) Observe(ps []physics.Particle, t float64) {
	w.samples++
	for i := range ps {
		p := ps[i].Pos
		if p.X == 0 || p.X == w.width || p.Y == 0 || p.Y == w.height {
			w.hits++
			return
		}
	}
}

func (w *WallContact) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.hits) / float64(w.samples)
}

func (w *WallContact) Reset() {
	w.hits = 0
	w.samples = 0
}
