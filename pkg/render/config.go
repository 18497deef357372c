package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional viewer configuration loaded from a yaml file.
// Any field left unset in the file keeps its DefaultConfig value.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
		VSync  bool   `yaml:"vsync"`
	} `yaml:"window"`

	Camera struct {
		MoveSpeed   float32 `yaml:"moveSpeed"`
		RotateSpeed float32 `yaml:"rotateSpeed"`
		FOV         float32 `yaml:"fov"`
	} `yaml:"camera"`

	ClearColor [4]float32 `yaml:"clearColor"`
}

// DefaultConfig returns the viewer's built-in settings, used whenever no
// config file is given or a field is absent from it.
func DefaultConfig() Config {
	var cfg Config
	cfg.Window.Width = 1280
	cfg.Window.Height = 720
	cfg.Window.Title = "mapview"
	cfg.Window.VSync = true
	cfg.Camera.MoveSpeed = DefaultMoveSpeed
	cfg.Camera.RotateSpeed = DefaultRotateSpeed
	cfg.Camera.FOV = DefaultFOV
	cfg.ClearColor = [4]float32{0.1, 0.1, 0.15, 1.0}
	return cfg
}

// LoadConfig reads a yaml viewer configuration from path, starting from
// DefaultConfig and overwriting only the fields present in the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("render: read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("render: parse config %s: %w", path, err)
	}

	return cfg, nil
}
