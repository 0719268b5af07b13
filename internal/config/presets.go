package config

var Presets = map[string]*Config{
	"classic": {
		G: 1000.0, Width: 1200, Height: 900, Bounciness: 0.25,
		Iterations: 1, Speed: 1.0, Particles: 60, Workers: 1,
	},
	"dense": {
		G: 1000.0, Width: 1200, Height: 900, Bounciness: 0.25,
		Iterations: 4, Speed: 1.0, Particles: 240, Workers: 4,
	},
	"drift": {
		G: 100.0, Width: 1600, Height: 1200, Bounciness: 0.25,
		Iterations: 1, Speed: 0.5, Particles: 40, Workers: 1,
	},
	"frenzy": {
		G: 5000.0, Width: 800, Height: 600, Bounciness: 0.9,
		Iterations: 2, Speed: 2.0, Particles: 120, Workers: 2,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
