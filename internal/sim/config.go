package sim

// Config holds the physical constants for one simulation. All of them
// are fixed for the lifetime of a Simulation instance.
type Config struct {
	// G is the gravitational constant.
	G float64
	// Width and Height bound the rectangular domain [0,Width]×[0,Height].
	Width  float64
	Height float64
	// Bounciness scales the reflected velocity component on wall impact.
	Bounciness float64
	// Iterations is the number of sub-steps per Step call.
	Iterations int
	// Speed is a time-scale multiplier applied to dt.
	Speed float64
	// Workers > 1 splits force accumulation across goroutines.
	Workers int
}

// DefaultConfig returns the stock constants: G=1000, a 1200×900 domain,
// quarter-strength wall bounce, single sub-step at unit speed.
func DefaultConfig() Config {
	return Config{
		G:          1000.0,
		Width:      1200,
		Height:     900,
		Bounciness: 0.25,
		Iterations: 1,
		Speed:      1.0,
		Workers:    1,
	}
}
