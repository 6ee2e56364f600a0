// Package camera provides the first-person camera used to walk the room.
package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roomwalk/pkg/math"
)

// Mode selects how the view matrix is derived from yaw and pitch.
type Mode int

const (
	// ModeEuler builds the view with LookAt from the yaw/pitch basis.
	ModeEuler Mode = iota
	// ModeQuaternion slerps an orientation quaternion toward yaw/pitch
	// and reads the basis back from the resulting view matrix.
	ModeQuaternion
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeEuler:
		return "euler"
	case ModeQuaternion:
		return "quaternion"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "euler":
		return ModeEuler, nil
	case "quaternion":
		return ModeQuaternion, nil
	default:
		return 0, fmt.Errorf("unknown camera mode %q", s)
	}
}

// degenerateRight is the cross-product length below which front is treated
// as parallel to world up.
const degenerateRight = 1e-6

// Config holds camera construction parameters.
type Config struct {
	Eye   math.Vec3
	Yaw   float32 // radians
	Pitch float32 // radians

	FOV    float32 // vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32

	Mode  Mode
	Slerp float32 // quaternion mode smoothing factor per frame, (0, 1]
}

// DefaultConfig returns the room camera: standing near the front wall and
// looking toward the back of the room.
func DefaultConfig() Config {
	return Config{
		Eye:    math.Vec3{X: 0, Y: -4, Z: 4},
		Yaw:    gomath.Pi,
		Pitch:  0,
		FOV:    math.Radians(45),
		Aspect: 1024.0 / 768.0,
		Near:   0.2,
		Far:    100,
		Mode:   ModeEuler,
		Slerp:  0.2,
	}
}

// Camera is a free-look camera. Front, Right and Up are always an
// orthonormal basis recomputed from Yaw and Pitch. Pitch is deliberately
// not clamped; looking past vertical inverts the view.
type Camera struct {
	Eye   math.Vec3
	Front math.Vec3
	Right math.Vec3
	Up    math.Vec3

	Yaw   float32
	Pitch float32

	View       math.Mat4
	Projection math.Mat4

	mode        Mode
	slerp       float32
	orientation math.Quat
}

// New creates a camera, computing the fixed projection once.
func New(cfg Config) *Camera {
	c := &Camera{
		Eye:        cfg.Eye,
		Yaw:        cfg.Yaw,
		Pitch:      cfg.Pitch,
		Projection: math.Perspective(cfg.FOV, cfg.Aspect, cfg.Near, cfg.Far),
		mode:       cfg.Mode,
		slerp:      cfg.Slerp,
	}
	if c.slerp <= 0 || c.slerp > 1 {
		c.slerp = 1
	}

	// Start settled so quaternion mode does not swing in on the first frame.
	c.orientation = targetOrientation(c.Yaw, c.Pitch)
	c.CalculateVectors()
	c.Update()
	return c
}

// Mode returns the orientation mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// Rotate adds yaw and pitch deltas (radians) and recomputes the basis.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.CalculateVectors()
}

// CalculateVectors recomputes Front, Right and Up from Yaw and Pitch.
func (c *Camera) CalculateVectors() {
	c.Front, c.Right, c.Up = Basis(c.Yaw, c.Pitch)
}

// Target returns the point one unit ahead of the eye.
func (c *Camera) Target() math.Vec3 {
	return c.Eye.Add(c.Front)
}

// Update recomputes the view matrix for the current eye and orientation.
// In quaternion mode it also replaces the basis with the one read back
// from the smoothed view.
func (c *Camera) Update() {
	if c.mode != ModeQuaternion {
		c.View = math.LookAt(c.Eye, c.Target(), c.Up)
		return
	}

	c.orientation = c.orientation.Slerp(targetOrientation(c.Yaw, c.Pitch), c.slerp)
	c.View = c.orientation.ToMat4().Mul(math.Translate(c.Eye.Negate()))

	c.Right = c.View.Row(0)
	c.Up = c.View.Row(1)
	c.Front = c.View.Row(2).Negate()
}

// Basis returns the orthonormal front, right and up vectors for the given
// yaw and pitch. Yaw 0 looks down +Z.
func Basis(yaw, pitch float32) (front, right, up math.Vec3) {
	cy, sy := gomath.Cos(float64(yaw)), gomath.Sin(float64(yaw))
	cp, sp := gomath.Cos(float64(pitch)), gomath.Sin(float64(pitch))

	front = math.Vec3{
		X: float32(cp * sy),
		Y: float32(sp),
		Z: float32(cp * cy),
	}.Normalize()

	r := front.Cross(math.Up)
	if r.Length() < degenerateRight {
		// Looking straight up or down: right is horizontal and follows yaw,
		// flipped when the view has rolled over.
		sign := float32(1)
		if cp < 0 {
			sign = -1
		}
		r = math.Vec3{X: float32(-cy), Y: 0, Z: float32(sy)}.Scale(sign)
	}
	right = r.Normalize()
	up = right.Cross(front).Normalize()
	return front, right, up
}

// targetOrientation returns the view rotation for yaw/pitch: the inverse of
// yawing from -Z to the yaw direction and then pitching.
func targetOrientation(yaw, pitch float32) math.Quat {
	qPitch := math.QuatFromAxisAngle(math.Vec3{X: 1}, -pitch)
	qYaw := math.QuatFromAxisAngle(math.Vec3{Y: 1}, -(yaw + gomath.Pi))
	return qPitch.Mul(qYaw)
}
