package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/config"
	"github.com/Faultbox/roomwalk/internal/engine/camera"
	"github.com/Faultbox/roomwalk/internal/engine/collision"
	"github.com/Faultbox/roomwalk/internal/engine/debug"
	"github.com/Faultbox/roomwalk/internal/engine/input"
	"github.com/Faultbox/roomwalk/internal/engine/lighting"
	"github.com/Faultbox/roomwalk/internal/engine/model"
	"github.com/Faultbox/roomwalk/internal/engine/renderer"
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/internal/engine/shader"
	"github.com/Faultbox/roomwalk/internal/engine/window"
	"github.com/Faultbox/roomwalk/internal/logger"
	"github.com/Faultbox/roomwalk/pkg/math"
)

var (
	boundsColour = math.Vec3{X: 1, Y: 0.2, Z: 0.2}
	cubesColour  = math.Vec3{X: 0.2, Y: 1, Z: 0.2}
)

// App owns the window, GPU resources and frame state.
type App struct {
	cfg *config.Config

	window   window.Window
	renderer *renderer.Renderer

	mainProgram *shader.Program
	flatProgram *shader.Program

	models  map[scene.Kind]*model.Model
	marker  *model.Model
	lights  *lighting.Lights
	overlay *debug.Overlay

	screenshots    *debug.ScreenshotCapture
	screenshotHeld bool

	state *State
}

// New creates the window and loads the room.
func New(cfg *config.Config) (*App, error) {
	manifest, err := loadManifest(cfg.Scene.Manifest)
	if err != nil {
		return nil, err
	}
	camCfg, err := cameraConfig(cfg)
	if err != nil {
		return nil, err
	}
	backend, err := window.ParseBackend(cfg.Graphics.Backend)
	if err != nil {
		return nil, err
	}
	lights, err := buildLights(manifest.Lights)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:         cfg,
		models:      make(map[scene.Kind]*model.Model),
		lights:      lights,
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "roomwalk"),
	}

	a.window, err = window.New(window.Config{
		Title:   cfg.Graphics.Title,
		Width:   cfg.Graphics.Width,
		Height:  cfg.Graphics.Height,
		VSync:   cfg.Graphics.VSync,
		Samples: cfg.Graphics.Samples,
		Backend: backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.Size()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadResources(manifest); err != nil {
		a.Close()
		return nil, err
	}

	registry := manifest.Registry()
	roomBounds := manifest.RoomBounds()
	if cfg.Debug.ShowBounds {
		var cubes []math.AABB
		for _, obj := range registry.Cubes() {
			cubes = append(cubes, obj.Box())
		}
		a.overlay = debug.NewOverlay(
			debug.BoxGroup{Name: "bounds", Colour: boundsColour, Boxes: roomBounds},
			debug.BoxGroup{Name: "cubes", Colour: cubesColour, Boxes: cubes},
		)
	}

	a.state = NewState(
		camera.New(camCfg),
		registry,
		collision.NewDetector(roomBounds, cfg.Movement.CollisionRadius),
		settingsFrom(cfg),
		time.Now(),
	)

	counts := registry.CountByKind()
	logger.Info("room loaded",
		zap.Int("objects", registry.Len()),
		zap.Int("cubes", counts[scene.KindCube]),
		zap.Int("walls", counts[scene.KindWall]),
		zap.Int("lights", lights.Len()),
		zap.Int("bounds", len(roomBounds)),
		zap.Float32("collision_radius", a.state.Detector.Radius()),
		zap.String("camera", a.state.Camera.Mode().String()),
	)
	for i, l := range lights.All() {
		logger.Debug("light",
			zap.Int("index", i),
			zap.String("type", l.Type.String()),
			zap.Float32s("colour", []float32{l.Colour.X, l.Colour.Y, l.Colour.Z}),
		)
	}
	return a, nil
}

func (a *App) loadResources(manifest *scene.Manifest) error {
	var err error
	if a.mainProgram, err = shader.Load(shader.Main, a.cfg.Graphics.ShaderDir); err != nil {
		return err
	}
	if a.flatProgram, err = shader.Load(shader.Flat, a.cfg.Graphics.ShaderDir); err != nil {
		return err
	}

	dir := a.cfg.Scene.AssetDir
	for _, kind := range scene.Kinds() {
		spec, ok := manifest.Model(kind)
		if !ok {
			continue
		}
		m, err := model.Load(assetPath(dir, spec.Mesh))
		if err != nil {
			return fmt.Errorf("loading %s model: %w", spec.Kind, err)
		}
		a.models[spec.Kind] = m
		m.Material = model.Material{
			Ka: spec.Material.Ka,
			Kd: spec.Material.Kd,
			Ks: spec.Material.Ks,
			Ns: spec.Material.Ns,
		}
		for name, path := range spec.Textures {
			slot, ok := model.ParseSlot(name)
			if !ok {
				return fmt.Errorf("%s model: unknown texture slot %q", spec.Kind, name)
			}
			if err := m.LoadTexture(slot, assetPath(dir, path)); err != nil {
				return err
			}
		}
		logger.Debug("model loaded",
			zap.String("kind", spec.Kind.String()),
			zap.String("mesh", spec.Mesh),
			zap.Int("textures", len(spec.Textures)),
		)
	}

	if manifest.LightMarker != "" {
		if a.marker, err = model.Load(assetPath(dir, manifest.LightMarker)); err != nil {
			return fmt.Errorf("loading light marker: %w", err)
		}
	}
	return nil
}

// Run drives frames until the state leaves PhaseRunning.
func (a *App) Run() error {
	logger.Info("entering frame loop")

	var frames int
	fpsStart := time.Now()

	for {
		in := input.Poll(a.window)
		now := time.Now()
		a.state.Step(now, in)
		if a.state.Phase() == PhaseClosing {
			a.window.SetShouldClose(true)
			break
		}

		a.render()
		a.handleScreenshot(in)
		a.window.SwapBuffers()

		if a.cfg.Debug.LogFPS {
			frames++
			if elapsed := now.Sub(fpsStart); elapsed >= time.Second {
				logger.Debug("frame rate",
					zap.Float64("fps", float64(frames)/elapsed.Seconds()),
					zap.Float32("dt", a.state.DeltaTime()),
				)
				frames = 0
				fpsStart = now
			}
		}
	}

	logger.Info("frame loop finished")
	return nil
}

func (a *App) render() {
	cam := a.state.Camera
	view, projection := cam.View, cam.Projection

	a.renderer.Resize(a.window.Size())
	a.renderer.Begin()

	a.mainProgram.Use()
	a.lights.ToShader(a.mainProgram, view)
	for _, call := range BuildDrawCalls(a.state.Registry.Objects(), view, projection) {
		m, ok := a.models[call.Kind]
		if !ok {
			continue
		}
		a.mainProgram.SetMat4("MVP", call.MVP)
		a.mainProgram.SetMat4("MV", call.MV)
		m.Draw(a.mainProgram)
	}

	if a.marker != nil {
		a.lights.Draw(a.flatProgram, view, projection, a.marker)
	}
	if a.overlay != nil {
		a.renderer.SetCulling(false)
		a.overlay.Draw(a.flatProgram, projection.Mul(view))
		a.renderer.SetCulling(true)
	}

	a.renderer.End()
}

// handleScreenshot saves the back buffer once per F12 press.
func (a *App) handleScreenshot(in input.Snapshot) {
	down := in.Down(input.KeyScreenshot)
	pressed := down && !a.screenshotHeld
	a.screenshotHeld = down
	if !pressed {
		return
	}

	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	for kind, m := range a.models {
		m.Delete()
		delete(a.models, kind)
	}
	if a.marker != nil {
		a.marker.Delete()
		a.marker = nil
	}
	if a.overlay != nil {
		a.overlay.Delete()
		a.overlay = nil
	}
	if a.mainProgram != nil {
		a.mainProgram.Delete()
		a.mainProgram = nil
	}
	if a.flatProgram != nil {
		a.flatProgram.Delete()
		a.flatProgram = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
