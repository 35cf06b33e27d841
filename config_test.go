package roomplanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomplanner.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil || cfg != DefaultConfig() {
			t.Errorf("LoadConfig(\"\") = %+v, %v", cfg, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil || cfg != DefaultConfig() {
			t.Errorf("LoadConfig(missing) = %+v, %v", cfg, err)
		}
	})

	t.Run("override", func(t *testing.T) {
		path := writeConfig(t, `
seed: 42
camera:
  mode: explore
  radius: 18
room:
  placement_limit: 3
log:
  level: debug
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() = %v", err)
		}
		if cfg.Seed != 42 || cfg.Camera.Mode != "explore" || cfg.Camera.Radius != 18 || cfg.Room.PlacementLimit != 3 || cfg.Log.Level != "debug" {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.Camera.MaxRadius != 22 || cfg.Room.Size != 10 {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadConfig(writeConfig(t, ""))
		if err != nil || cfg != DefaultConfig() {
			t.Errorf("LoadConfig(empty) = %+v, %v", cfg, err)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "camera:\n  min_radius: 50\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadConfig(invalid) = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		if _, err := LoadConfig(writeConfig(t, "camera: [1, 2")); err == nil {
			t.Errorf("LoadConfig(bad yaml) = nil error")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero room", func(c *Config) { c.Room.Size = 0 }},
		{"placement outside room", func(c *Config) { c.Room.PlacementLimit = 6 }},
		{"polar range", func(c *Config) { c.Camera.MinPolar = 2 }},
		{"radius range", func(c *Config) { c.Camera.MinRadius = 30 }},
		{"clip planes", func(c *Config) { c.Camera.Far = 0.01 }},
		{"fov", func(c *Config) { c.Camera.FieldOfView = 180 }},
		{"mode", func(c *Config) { c.Camera.Mode = "free" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
