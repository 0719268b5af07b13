package sim

import (
	"sync"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/vec"
)

// minParallelParticles gates the goroutine path; below this the fan-out
// costs more than the pair loop.
const minParallelParticles = 64

// accumulateParallel splits the pair triangle across workers. The
// symmetric update writes to both i and j, so a naive parallel loop
// over i would race on j. Each worker instead accumulates into its own
// scratch slice over a strided set of rows, and the partials are merged
// after the join; workers never share a write target.
func (s *Simulation) accumulateParallel() {
	ps := s.particles
	n := len(ps)
	workers := s.cfg.Workers
	if workers > n {
		workers = n
	}

	partials := make([][]vec.Vec2, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			acc := make([]vec.Vec2, n)
			// row-strided so the triangle's long rows spread evenly
			for i := w; i < n; i += workers {
				for j := 0; j <= i; j++ {
					f := physics.Force(ps[i].Pos, ps[j].Pos, s.cfg.G)
					acc[i] = acc[i].Add(f)
					acc[j] = acc[j].Sub(f)
				}
			}
			partials[w] = acc
		}(w)
	}
	wg.Wait()

	for _, acc := range partials {
		for i := range ps {
			ps[i].Acc = ps[i].Acc.Add(acc[i])
		}
	}
}
