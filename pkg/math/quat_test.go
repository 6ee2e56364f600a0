package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if m := q.ToMat4(); m != Identity() {
		t.Errorf("Identity quat should produce identity matrix, got %v", m)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()
	length := math.Sqrt(float64(n.Dot(n)))
	if math.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	if r := q1.Slerp(q2, 0); math.Abs(float64(r.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1, got %v", r)
	}
	if r := q1.Slerp(q2, 1); math.Abs(float64(r.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2, got %v", r)
	}

	expectedW := float32(math.Cos(math.Pi / 8))
	if r := q1.Slerp(q2, 0.5); math.Abs(float64(r.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, r.W)
	}
}

func TestQuatSlerpTakesShortArc(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.3)
	neg := Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}

	// q and -q are the same rotation; slerping between them must not spin.
	r := q.Slerp(neg, 0.5)
	assertMatNear(t, "Slerp(q, -q)", r.ToMat4(), q.ToMat4())
}

func TestQuatMulMatchesMathgl(t *testing.T) {
	pitch := QuatFromAxisAngle(Vec3{1, 0, 0}, -0.4)
	yaw := QuatFromAxisAngle(Vec3{0, 1, 0}, 1.1)

	got := pitch.Mul(yaw).ToMat4()
	want := mgl32.QuatRotate(-0.4, mgl32.Vec3{1, 0, 0}).
		Mul(mgl32.QuatRotate(1.1, mgl32.Vec3{0, 1, 0})).
		Mat4()
	assertMatNear(t, "pitch*yaw", got, Mat4(want))
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
