// Package config loads the demo settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"terrain-demo/input"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Player   PlayerConfig   `yaml:"player"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
	HideCursor bool   `yaml:"hide_cursor"`
}

type TerrainConfig struct {
	Heightmap    string     `yaml:"heightmap"`
	Scale        [3]float32 `yaml:"scale"`
	SmoothFactor int        `yaml:"smooth_factor"`
	Wireframe    bool       `yaml:"wireframe"`
	Color        [4]uint8   `yaml:"color"` // RGBA
}

type PlayerConfig struct {
	Name      string  `yaml:"name"`
	Surname   string  `yaml:"surname"`
	ID        string  `yaml:"id"`
	Mesh      string  `yaml:"mesh"` // .obj, .glb or .gltf; empty for a cube
	Scale     float32 `yaml:"scale"`
	Wireframe bool    `yaml:"wireframe"`
	TurnStep  float32 `yaml:"turn_step"` // degrees per frame
}

type CameraConfig struct {
	FOV       float32    `yaml:"fov"` // degrees
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	MoveSpeed float32    `yaml:"move_speed"`
	LookSpeed float32    `yaml:"look_speed"`
	Position  [3]float32 `yaml:"position"`
}

// ControlsConfig holds key names as accepted by input.ParseKey.
type ControlsConfig struct {
	PitchUp      string `yaml:"pitch_up"`
	PitchDown    string `yaml:"pitch_down"`
	YawLeft      string `yaml:"yaw_left"`
	YawRight     string `yaml:"yaw_right"`
	LookAtPlayer string `yaml:"look_at_player"`
	Quit         string `yaml:"quit"`
	Wireframe    string `yaml:"wireframe"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings the demo runs with when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      640,
			Height:     480,
			Title:      "Hello World! - Terrain Demo",
			Resizable:  true,
			VSync:      true,
			HideCursor: true,
		},
		Terrain: TerrainConfig{
			Heightmap:    "assets/terrain-heightmap.bmp",
			Scale:        [3]float32{40.1, 4.01, 40.1},
			SmoothFactor: 4,
			Wireframe:    true,
			Color:        [4]uint8{255, 255, 255, 255},
		},
		Player: PlayerConfig{
			Name:      "Player",
			Surname:   "One",
			ID:        "1",
			Scale:     10,
			Wireframe: true,
			TurnStep:  1,
		},
		Camera: CameraConfig{
			FOV:       60,
			Near:      1,
			Far:       4200,
			MoveSpeed: 100,
			LookSpeed: 0.1,
			Position:  [3]float32{0, 30, -60},
		},
		Controls: ControlsConfig{
			PitchUp:      "W",
			PitchDown:    "S",
			YawLeft:      "A",
			YawRight:     "D",
			LookAtPlayer: "L",
			Quit:         "Escape",
			Wireframe:    "F",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, so a file only needs the keys it
// changes, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Terrain.Heightmap == "" {
		errs = append(errs, errors.New("terrain.heightmap is required"))
	}
	for i, s := range c.Terrain.Scale {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("terrain.scale[%d] = %v must be positive", i, s))
		}
	}
	if c.Terrain.SmoothFactor < 0 {
		errs = append(errs, fmt.Errorf("terrain.smooth_factor %d must not be negative", c.Terrain.SmoothFactor))
	}
	if c.Player.Scale <= 0 {
		errs = append(errs, fmt.Errorf("player.scale %v must be positive", c.Player.Scale))
	}
	if c.Player.TurnStep <= 0 || c.Player.TurnStep >= 360 {
		errs = append(errs, fmt.Errorf("player.turn_step %v must be in (0, 360)", c.Player.TurnStep))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v must be in (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes near=%v far=%v: need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if _, err := c.Controls.Keys(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Keys is ControlsConfig resolved to key codes.
type Keys struct {
	PitchUp, PitchDown, YawLeft, YawRight input.KeyCode
	LookAtPlayer, Quit, Wireframe         input.KeyCode
}

func (c ControlsConfig) Keys() (Keys, error) {
	var k Keys
	var errs []error
	for _, b := range []struct {
		field string
		name  string
		dst   *input.KeyCode
	}{
		{"pitch_up", c.PitchUp, &k.PitchUp},
		{"pitch_down", c.PitchDown, &k.PitchDown},
		{"yaw_left", c.YawLeft, &k.YawLeft},
		{"yaw_right", c.YawRight, &k.YawRight},
		{"look_at_player", c.LookAtPlayer, &k.LookAtPlayer},
		{"quit", c.Quit, &k.Quit},
		{"wireframe", c.Wireframe, &k.Wireframe},
	} {
		code, err := input.ParseKey(b.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("controls.%s: %w", b.field, err))
			continue
		}
		*b.dst = code
	}
	return k, errors.Join(errs...)
}
