package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.G != DefaultG {
		t.Errorf("expected G %g, got %g", DefaultG, cfg.G)
	}
	if cfg.Particles != DefaultParticles {
		t.Errorf("expected %d particles, got %d", DefaultParticles, cfg.Particles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero particles", func(c *Config) { c.Particles = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"negative bounciness", func(c *Config) { c.Bounciness = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravlab.yaml")

	cfg := DefaultConfig()
	cfg.G = 2500.0
	cfg.Particles = 80
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.G != cfg.G || loaded.Particles != cfg.Particles || loaded.Seed != cfg.Seed {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles != 60 {
		t.Errorf("expected 60 particles, got %d", cfg.Particles)
	}

	// presets are handed out as copies
	cfg.Particles = 1
	if GetPreset("classic").Particles != 60 {
		t.Error("mutating a returned preset must not change the catalog")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.SimConfig()

	if sc.G != cfg.G || sc.Width != cfg.Width || sc.Height != cfg.Height {
		t.Error("sim config does not mirror file config")
	}
	if sc.Bounciness != cfg.Bounciness || sc.Iterations != cfg.Iterations {
		t.Error("sim config does not mirror file config")
	}
}
