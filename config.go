package roomplanner

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type RoomConfig struct {
	Size           float64 `yaml:"size"`
	Height         float64 `yaml:"height"`
	PlacementLimit float64 `yaml:"placement_limit"`
	GridDivisions  int     `yaml:"grid_divisions"`
}

type CameraConfig struct {
	Azimuth     float64 `yaml:"azimuth"`
	Polar       float64 `yaml:"polar"`
	Radius      float64 `yaml:"radius"`
	MinPolar    float64 `yaml:"min_polar"`
	MaxPolar    float64 `yaml:"max_polar"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	OrbitSpeed  float64 `yaml:"orbit_speed"`
	ZoomSpeed   float64 `yaml:"zoom_speed"`
	FieldOfView float64 `yaml:"fov"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Mode        string  `yaml:"mode"`
}

type Config struct {
	Room   RoomConfig   `yaml:"room"`
	Camera CameraConfig `yaml:"camera"`
	Seed   uint64       `yaml:"seed"`
	Log    LogConfig    `yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Room: RoomConfig{
			Size:           10,
			Height:         4,
			PlacementLimit: 4.2,
			GridDivisions:  10,
		},
		Camera: CameraConfig{
			Azimuth:     0.8,
			Polar:       0.55,
			Radius:      14,
			MinPolar:    0.15,
			MaxPolar:    1.3,
			MinRadius:   5,
			MaxRadius:   22,
			OrbitSpeed:  0.008,
			ZoomSpeed:   0.02,
			FieldOfView: 55,
			Near:        0.1,
			Far:         100,
			Mode:        string(ModeFixed),
		},
		Seed: 1,
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

var ErrInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	switch {
	case c.Room.Size <= 0 || c.Room.Height <= 0:
		return fmt.Errorf("%w: room size and height must be positive", ErrInvalidConfig)
	case c.Room.PlacementLimit < 0 || c.Room.PlacementLimit > c.Room.Size/2:
		return fmt.Errorf("%w: placement limit %.2f outside the room", ErrInvalidConfig, c.Room.PlacementLimit)
	case c.Camera.MinPolar > c.Camera.MaxPolar:
		return fmt.Errorf("%w: min_polar above max_polar", ErrInvalidConfig)
	case c.Camera.MinRadius > c.Camera.MaxRadius || c.Camera.MinRadius <= 0:
		return fmt.Errorf("%w: radius range", ErrInvalidConfig)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes", ErrInvalidConfig)
	case c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180:
		return fmt.Errorf("%w: fov %.1f", ErrInvalidConfig, c.Camera.FieldOfView)
	}
	if _, err := ParseCameraMode(c.Camera.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
