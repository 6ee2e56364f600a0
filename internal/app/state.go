// Package app runs the room walker: frame timing, movement, mouse look
// and drawing.
package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/engine/camera"
	"github.com/Faultbox/roomwalk/internal/engine/collision"
	"github.com/Faultbox/roomwalk/internal/engine/input"
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/internal/logger"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// Phase is the frame loop state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Settings tune walking and looking.
type Settings struct {
	Speed            float32 // units per second
	EyeHeight        float32 // eye y after every move
	MouseSensitivity float32 // radians per pixel
}

// DefaultSettings returns the coursework movement constants.
func DefaultSettings() Settings {
	return Settings{
		Speed:            5,
		EyeHeight:        -4,
		MouseSensitivity: 0.0005,
	}
}

// State is everything a frame reads and mutates, independent of the
// window and GPU.
type State struct {
	Camera   *camera.Camera
	Registry *scene.Registry
	Detector *collision.Detector

	settings     Settings
	phase        Phase
	deltaTime    float32
	previousTime time.Time
	blocked      bool

	log *zap.Logger
}

// NewState creates a running state whose clock starts at start.
func NewState(cam *camera.Camera, reg *scene.Registry, det *collision.Detector, settings Settings, start time.Time) *State {
	return &State{
		Camera:       cam,
		Registry:     reg,
		Detector:     det,
		settings:     settings,
		phase:        PhaseRunning,
		previousTime: start,
		log:          logger.Named("state"),
	}
}

// Phase returns the loop state.
func (s *State) Phase() Phase {
	return s.phase
}

// DeltaTime returns the seconds between the last two Advance calls.
func (s *State) DeltaTime() float32 {
	return s.deltaTime
}

// Blocked reports whether the last attempted move was rejected.
func (s *State) Blocked() bool {
	return s.blocked
}

// Advance updates deltaTime to now minus the previous frame time.
func (s *State) Advance(now time.Time) float32 {
	dt := now.Sub(s.previousTime).Seconds()
	if dt < 0 {
		dt = 0
	}
	s.deltaTime = float32(dt)
	s.previousTime = now
	return s.deltaTime
}

// HandleKeys applies WASD movement along the camera front and right
// vectors, pins the eye height and reverts the whole move if the new eye
// collides. Returns whether the eye moved.
func (s *State) HandleKeys(in input.Snapshot) bool {
	cam := s.Camera
	original := cam.Eye
	step := s.settings.Speed * s.deltaTime

	eye := cam.Eye
	if in.Down(input.KeyW) {
		eye = eye.Add(cam.Front.Scale(step))
	}
	if in.Down(input.KeyS) {
		eye = eye.Sub(cam.Front.Scale(step))
	}
	if in.Down(input.KeyA) {
		eye = eye.Sub(cam.Right.Scale(step))
	}
	if in.Down(input.KeyD) {
		eye = eye.Add(cam.Right.Scale(step))
	}
	eye.Y = s.settings.EyeHeight

	blocked := s.Detector.IsBlocked(eye, s.Registry.Objects())
	if blocked != s.blocked {
		s.logBlocked(eye, blocked)
	}
	s.blocked = blocked

	if blocked {
		cam.Eye = original
		return false
	}
	cam.Eye = eye
	return eye != original
}

func (s *State) logBlocked(eye math.Vec3, blocked bool) {
	if !blocked {
		s.log.Debug("movement free")
		return
	}
	fields := []zap.Field{zap.Float32s("eye", []float32{eye.X, eye.Y, eye.Z})}
	if i, ok := s.Detector.BoundAt(eye); ok {
		fields = append(fields, zap.Int("bound", i))
	}
	if i, ok := s.Detector.CubeAt(eye, s.Registry.Objects()); ok {
		fields = append(fields, zap.Int("object", i))
	}
	s.log.Debug("movement blocked", fields...)
}

// HandleMouse turns the cursor offset into yaw and pitch. Moving the mouse
// right increases yaw and moving it up increases pitch.
func (s *State) HandleMouse(in input.Snapshot) {
	k := s.settings.MouseSensitivity
	s.Camera.Rotate(k*float32(in.CursorDX), -k*float32(in.CursorDY))
}

// Step runs one frame of simulation: timing, exit check, keyboard, mouse
// and camera matrices. After an exit request the phase is PhaseClosing and
// nothing else changes.
func (s *State) Step(now time.Time, in input.Snapshot) {
	if s.phase != PhaseRunning {
		return
	}

	s.Advance(now)

	if in.ExitRequested() {
		s.phase = PhaseClosing
		s.log.Info("exit requested", zap.Bool("window_close", in.CloseRequested))
		return
	}

	s.HandleKeys(in)
	s.HandleMouse(in)
	s.Camera.Update()
}
