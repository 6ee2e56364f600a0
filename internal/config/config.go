// Package config handles roomwalk configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Scene    SceneConfig    `yaml:"scene"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and rendering settings.
type GraphicsConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Backend    string     `yaml:"backend"` // sdl or glfw
	VSync      bool       `yaml:"vsync"`
	Samples    int        `yaml:"samples"`
	ShaderDir  string     `yaml:"shader_dir"` // empty uses the built-in shaders
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the projection and initial view. Angles are radians.
type CameraConfig struct {
	Mode             string     `yaml:"mode"` // euler or quaternion
	FOVDegrees       float32    `yaml:"fov_degrees"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	Eye              [3]float32 `yaml:"eye"`
	Yaw              float32    `yaml:"yaw"`
	Pitch            float32    `yaml:"pitch"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	Slerp            float32    `yaml:"slerp"`
}

// MovementConfig holds walking settings.
type MovementConfig struct {
	Speed           float32 `yaml:"speed"`      // units per second
	EyeHeight       float32 `yaml:"eye_height"` // eye y is pinned here after every move
	CollisionRadius float32 `yaml:"collision_radius"`
}

// SceneConfig holds scene data paths.
type SceneConfig struct {
	Manifest string `yaml:"manifest"` // empty uses the built-in room
	AssetDir string `yaml:"asset_dir"`
}

// DebugConfig holds debug aids.
type DebugConfig struct {
	ShowBounds    bool   `yaml:"show_bounds"`
	LogFPS        bool   `yaml:"log_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config reproducing the coursework room.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Computer Graphics Coursework",
			Width:      1024,
			Height:     768,
			Backend:    "sdl",
			VSync:      true,
			Samples:    4,
			ShaderDir:  "",
			ClearColor: [3]float32{0.2, 0.2, 0.2},
		},
		Camera: CameraConfig{
			Mode:             "euler",
			FOVDegrees:       45,
			Near:             0.2,
			Far:              100,
			Eye:              [3]float32{0, -4, 4},
			Yaw:              math.Pi,
			Pitch:            0,
			MouseSensitivity: 0.0005,
			Slerp:            0.2,
		},
		Movement: MovementConfig{
			Speed:           5,
			EyeHeight:       -4,
			CollisionRadius: 0.5,
		},
		Scene: SceneConfig{
			Manifest: "",
			AssetDir: "assets",
		},
		Debug: DebugConfig{
			ShowBounds:    false,
			LogFPS:        false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	g := c.Graphics
	check(g.Width > 0 && g.Height > 0, "graphics: window size %dx%d must be positive", g.Width, g.Height)
	check(g.Backend == "sdl" || g.Backend == "glfw", "graphics.backend: %q is not sdl or glfw", g.Backend)
	check(g.Samples >= 0, "graphics.samples: %d must not be negative", g.Samples)

	cam := c.Camera
	check(cam.Mode == "euler" || cam.Mode == "quaternion", "camera.mode: %q is not euler or quaternion", cam.Mode)
	check(cam.FOVDegrees > 0 && cam.FOVDegrees < 180, "camera.fov_degrees: %v must be in (0, 180)", cam.FOVDegrees)
	check(cam.Near > 0 && cam.Far > cam.Near, "camera: near %v / far %v must satisfy 0 < near < far", cam.Near, cam.Far)
	check(cam.Slerp > 0 && cam.Slerp <= 1, "camera.slerp: %v must be in (0, 1]", cam.Slerp)

	m := c.Movement
	check(m.Speed >= 0, "movement.speed: %v must not be negative", m.Speed)
	check(m.CollisionRadius > 0, "movement.collision_radius: %v must be positive", m.CollisionRadius)

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: %q is not debug, info, warn or error", c.Logging.Level))
	}

	return errors.Join(errs...)
}
