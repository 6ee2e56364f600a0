package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/roomwalk/internal/config"
	"github.com/Faultbox/roomwalk/internal/engine/camera"
	"github.com/Faultbox/roomwalk/internal/engine/lighting"
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// cameraConfig converts the camera section to a camera.Config.
func cameraConfig(cfg *config.Config) (camera.Config, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return camera.Config{}, err
	}
	c := cfg.Camera
	return camera.Config{
		Eye:    vec(c.Eye),
		Yaw:    c.Yaw,
		Pitch:  c.Pitch,
		FOV:    math.Radians(c.FOVDegrees),
		Aspect: float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		Near:   c.Near,
		Far:    c.Far,
		Mode:   mode,
		Slerp:  c.Slerp,
	}, nil
}

func settingsFrom(cfg *config.Config) Settings {
	return Settings{
		Speed:            cfg.Movement.Speed,
		EyeHeight:        cfg.Movement.EyeHeight,
		MouseSensitivity: cfg.Camera.MouseSensitivity,
	}
}

// loadManifest returns the configured scene manifest, or the built-in room.
// The manifest is validated either way.
func loadManifest(path string) (*scene.Manifest, error) {
	m := scene.DefaultManifest()
	if path != "" {
		var err error
		if m, err = scene.LoadManifest(path); err != nil {
			return nil, err
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("scene manifest: %w", err)
	}
	return m, nil
}

// buildLights creates the light set described by the manifest.
func buildLights(specs []scene.LightSpec) (*lighting.Lights, error) {
	lights := lighting.New()
	for i, spec := range specs {
		var ok bool
		colour := vec(spec.Colour)
		switch spec.Type {
		case scene.LightPoint:
			ok = lights.AddPointLight(vec(spec.Position), colour, spec.Constant, spec.Linear, spec.Quadratic)
		case scene.LightSpot:
			ok = lights.AddSpotLight(vec(spec.Position), vec(spec.Direction), colour, spec.Constant, spec.Linear, spec.Quadratic, spec.CosPhi())
		case scene.LightDirectional:
			ok = lights.AddDirectionalLight(vec(spec.Direction), colour)
		default:
			return nil, fmt.Errorf("lights[%d]: unknown type %q", i, spec.Type)
		}
		if !ok {
			return nil, fmt.Errorf("lights[%d]: more than %d lights", i, lighting.MaxLights)
		}
	}
	return lights, nil
}

// assetPath resolves a manifest path against the asset directory.
func assetPath(dir, name string) string {
	if filepath.IsAbs(name) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// ManifestFileName is written next to the config by WriteConfig.
const ManifestFileName = "scene.yaml"

// WriteConfig saves cfg to path. When cfg uses the built-in room, the room
// manifest is written beside it and the saved config points at it, so the
// pair can be edited together. Returns the manifest path, if one was written.
func WriteConfig(cfg *config.Config, path string) (string, error) {
	out := *cfg
	var manifestPath string

	if out.Scene.Manifest == "" {
		data, err := scene.DefaultManifest().Marshal()
		if err != nil {
			return "", fmt.Errorf("encoding scene manifest: %w", err)
		}
		manifestPath = filepath.Join(filepath.Dir(path), ManifestFileName)
		if err := os.MkdirAll(filepath.Dir(manifestPath), 0755); err != nil {
			return "", err
		}
		if err := os.WriteFile(manifestPath, data, 0644); err != nil {
			return "", fmt.Errorf("writing scene manifest: %w", err)
		}
		out.Scene.Manifest = manifestPath
	}

	if err := out.SaveTo(path); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return manifestPath, nil
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
