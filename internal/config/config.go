package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravlab/internal/sim"
)

const (
	DefaultG          = 1000.0
	DefaultWidth      = 1200.0
	DefaultHeight     = 900.0
	DefaultBounciness = 0.25
	DefaultIterations = 1
	DefaultSpeed      = 1.0
	DefaultParticles  = 60
)

// Config is the YAML-facing simulation configuration. CLI flags override
// file values; file values override defaults.
type Config struct {
	G          float64 `yaml:"g"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Bounciness float64 `yaml:"bounciness"`
	Iterations int     `yaml:"iterations"`
	Speed      float64 `yaml:"speed"`
	Particles  int     `yaml:"particles"`
	Workers    int     `yaml:"workers"`
	Seed       int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		G:          DefaultG,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Bounciness: DefaultBounciness,
		Iterations: DefaultIterations,
		Speed:      DefaultSpeed,
		Particles:  DefaultParticles,
		Workers:    1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the core would silently misbehave on.
func (c *Config) Validate() error {
	if c.Particles < 1 {
		return fmt.Errorf("particles must be at least 1, got %d", c.Particles)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("domain must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", c.Speed)
	}
	if c.Bounciness < 0 {
		return fmt.Errorf("bounciness must not be negative, got %g", c.Bounciness)
	}
	return nil
}

// SimConfig maps the file configuration onto the core's constants.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		G:          c.G,
		Width:      c.Width,
		Height:     c.Height,
		Bounciness: c.Bounciness,
		Iterations: c.Iterations,
		Speed:      c.Speed,
		Workers:    c.Workers,
	}
}
