package metrics

import "github.com/san-kum/gravlab/internal/physics"

// Metric observes particle snapshots over a run and reduces them to a
// single value at the end.
type Metric interface {
	Name() string
	Observe(ps []physics.Particle, t float64)
	Value() float64
	Reset()
}

// Collect reduces a metric set to a name→value map.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
