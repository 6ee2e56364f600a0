package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/roomwalk/internal/config"
	"github.com/Faultbox/roomwalk/internal/engine/camera"
	"github.com/Faultbox/roomwalk/internal/engine/lighting"
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/pkg/math"
)

func TestCameraConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Mode = "quaternion"
	cfg.Graphics.Width, cfg.Graphics.Height = 800, 600

	got, err := cameraConfig(cfg)
	if err != nil {
		t.Fatalf("cameraConfig: %v", err)
	}
	if got.Mode != camera.ModeQuaternion {
		t.Errorf("mode = %s, want quaternion", got.Mode)
	}
	if !near(got.Aspect, 800.0/600.0) {
		t.Errorf("aspect = %v", got.Aspect)
	}
	if !near(got.FOV, math.Radians(45)) {
		t.Errorf("fov = %v, want 45 degrees in radians", got.FOV)
	}
	if got.Eye != (math.Vec3{X: 0, Y: -4, Z: 4}) {
		t.Errorf("eye = %v", got.Eye)
	}

	cfg.Camera.Mode = "orbit"
	if _, err := cameraConfig(cfg); err == nil {
		t.Error("expected an error for an unknown camera mode")
	}
}

func TestSettingsFrom(t *testing.T) {
	cfg := config.Default()
	cfg.Movement.Speed = 8
	if got := settingsFrom(cfg); got.Speed != 8 || got.EyeHeight != -4 || got.MouseSensitivity != 0.0005 {
		t.Errorf("settingsFrom() = %+v", got)
	}
	if got, want := settingsFrom(config.Default()), DefaultSettings(); got != want {
		t.Errorf("default config settings %+v, want %+v", got, want)
	}
}

func TestBuildLightsDefaultRoom(t *testing.T) {
	lights, err := buildLights(scene.DefaultManifest().Lights)
	if err != nil {
		t.Fatalf("buildLights: %v", err)
	}

	all := lights.All()
	if len(all) != 4 {
		t.Fatalf("expected 4 lights, got %d", len(all))
	}
	wantTypes := []lighting.Type{lighting.Point, lighting.Point, lighting.Spot, lighting.Directional}
	for i, want := range wantTypes {
		if all[i].Type != want {
			t.Errorf("light %d: type %s, want %s", i, all[i].Type, want)
		}
	}
	if !near(all[2].CosPhi, 0.70710677) {
		t.Errorf("spot cosPhi = %v, want cos(45)", all[2].CosPhi)
	}
	if all[0].Position != (math.Vec3{X: 2, Y: 1, Z: -2}) {
		t.Errorf("first light at %v", all[0].Position)
	}
}

func TestBuildLightsErrors(t *testing.T) {
	tooMany := make([]scene.LightSpec, lighting.MaxLights+1)
	for i := range tooMany {
		tooMany[i] = scene.LightSpec{Type: scene.LightPoint, Constant: 1}
	}

	tests := []struct {
		name   string
		specs  []scene.LightSpec
		errMsg string
	}{
		{"unknown type", []scene.LightSpec{{Type: "area"}}, "unknown type"},
		{"too many", tooMany, "more than 16 lights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildLights(tt.specs)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %q", err, tt.errMsg)
			}
		})
	}
}

func TestBuildDrawCalls(t *testing.T) {
	objects := scene.DefaultManifest().Registry().Objects()
	cam := camera.New(camera.DefaultConfig())

	calls := BuildDrawCalls(objects, cam.View, cam.Projection)
	if len(calls) != len(objects) {
		t.Fatalf("expected %d draw calls, got %d", len(objects), len(calls))
	}

	for i, call := range calls {
		if call.Kind != objects[i].Kind {
			t.Errorf("call %d: kind %s, want %s", i, call.Kind, objects[i].Kind)
		}
		mv := cam.View.Mul(objects[i].ModelMatrix())
		if call.MV != mv {
			t.Errorf("call %d: MV is not view * model", i)
		}
		if call.MVP != cam.Projection.Mul(mv) {
			t.Errorf("call %d: MVP is not projection * MV", i)
		}
	}
}

func TestBuildDrawCallsIdentity(t *testing.T) {
	obj := scene.Object{
		Kind:         scene.KindCube,
		Position:     math.Vec3{X: 1, Y: 2, Z: 3},
		RotationAxis: math.Vec3{X: 1},
		Scale:        math.Vec3{X: 1, Y: 1, Z: 1},
	}
	calls := BuildDrawCalls([]scene.Object{obj}, math.Identity(), math.Identity())

	p := calls[0].MVP.TransformPoint(math.Vec3{})
	if !nearVec(p, obj.Position) {
		t.Errorf("origin maps to %v, want %v", p, obj.Position)
	}
	if BuildDrawCalls(nil, math.Identity(), math.Identity()) == nil {
		t.Error("expected an empty, non-nil slice")
	}
}

func TestLoadManifest(t *testing.T) {
	m, err := loadManifest("")
	if err != nil {
		t.Fatalf("built-in manifest: %v", err)
	}
	if m.Registry().Len() != 17 {
		t.Errorf("built-in room has %d objects", m.Registry().Len())
	}

	_, err = loadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("objects:\n  - kind: cube\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadManifest(bad); err == nil {
		t.Error("expected an error for a cube without a model")
	}
}

func TestAssetPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "cube.obj")
	tests := []struct {
		dir, name, want string
	}{
		{"assets", "cube.obj", filepath.Join("assets", "cube.obj")},
		{"", "cube.obj", "cube.obj"},
		{"assets", abs, abs},
	}
	for _, tt := range tests {
		if got := assetPath(tt.dir, tt.name); got != tt.want {
			t.Errorf("assetPath(%q, %q) = %q, want %q", tt.dir, tt.name, got, tt.want)
		}
	}
}

func TestWriteConfigWithBuiltinRoom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", config.FileName)
	cfg := config.Default()

	manifestPath, err := WriteConfig(cfg, path)
	if err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if want := filepath.Join(dir, "nested", ManifestFileName); manifestPath != want {
		t.Errorf("manifest written to %q, want %q", manifestPath, want)
	}
	if cfg.Scene.Manifest != "" {
		t.Error("WriteConfig must not modify the caller's config")
	}

	m, err := scene.LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("written manifest does not load: %v", err)
	}
	if m.Registry().Len() != 17 || len(m.Lights) != 4 {
		t.Errorf("written manifest has %d objects, %d lights", m.Registry().Len(), len(m.Lights))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var saved config.Config
	if err := yaml.Unmarshal(data, &saved); err != nil {
		t.Fatalf("written config does not decode: %v", err)
	}
	if saved.Scene.Manifest != manifestPath {
		t.Errorf("saved manifest path %q, want %q", saved.Scene.Manifest, manifestPath)
	}
	if saved.Graphics.Title != "Computer Graphics Coursework" {
		t.Errorf("saved title %q", saved.Graphics.Title)
	}
}

func TestWriteConfigWithManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Scene.Manifest = "rooms/office.yaml"

	manifestPath, err := WriteConfig(cfg, filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if manifestPath != "" {
		t.Errorf("no manifest should be written, got %q", manifestPath)
	}
	if _, err := os.Stat(filepath.Join(dir, ManifestFileName)); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("unexpected %s beside the config", ManifestFileName)
	}
}
