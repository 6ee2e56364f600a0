package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M, got %v", result)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want Vec3
	}{
		{"translate", Translate(Vec3{10, 20, 30}), Vec3{11, 22, 33}},
		{"scale", Scale(Vec3{2, 2, 2}), Vec3{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(Vec3{1, 2, 3}); got != tt.want {
				t.Errorf("TransformPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(Vec3{4, 5, 6})
	if got := m.TransformDirection(Vec3{0, -1, 0}); got != (Vec3{0, -1, 0}) {
		t.Errorf("TransformDirection = %v, want (0, -1, 0)", got)
	}
}

func TestRotateZeroAxisIsIdentity(t *testing.T) {
	if m := Rotate(1.2, Vec3{}); m != Identity() {
		t.Errorf("Rotate with zero axis = %v, want identity", m)
	}
}

func TestRotateUnnormalizedAxis(t *testing.T) {
	// The cube table uses (1,1,1) as its rotation axis.
	a := Rotate(0.7, Vec3{1, 1, 1})
	b := Rotate(0.7, Vec3{1, 1, 1}.Normalize())
	assertMatNear(t, "Rotate", a, b)
}

func TestRotate90AboutX(t *testing.T) {
	// Floor and ceiling planes rotate about X.
	m := Rotate(Radians(90), Vec3{1, 0, 0})
	got := m.TransformPoint(Vec3{0, 1, 0})
	if !vecNear(got, Vec3{0, 0, 1}) {
		t.Errorf("Rotate 90 about X: got %v, want (0, 0, 1)", got)
	}
}

func TestRow(t *testing.T) {
	m := Rotate(Radians(90), Vec3{0, 0, 1})
	if got := m.Row(0); !vecNear(got, Vec3{0, -1, 0}) {
		t.Errorf("Row(0) = %v, want (0, -1, 0)", got)
	}
}

// The following compare against mathgl, which implements the glm
// conventions the shaders expect.

func TestPerspectiveMatchesMathgl(t *testing.T) {
	fov := Radians(45)
	got := Perspective(fov, 1024.0/768.0, 0.2, 100)
	want := mgl32.Perspective(fov, 1024.0/768.0, 0.2, 100)
	assertMatNear(t, "Perspective", got, Mat4(want))
}

func TestLookAtMatchesMathgl(t *testing.T) {
	tests := []struct {
		eye, center Vec3
	}{
		{Vec3{0, 0, 5}, Vec3{0, 0, 0}},
		{Vec3{0, -4, 4}, Vec3{2, 2, 0}},
		{Vec3{-3, 1, 2}, Vec3{1, -1, -2}},
	}

	for _, tt := range tests {
		got := LookAt(tt.eye, tt.center, Up)
		want := mgl32.LookAtV(toMgl(tt.eye), toMgl(tt.center), mgl32.Vec3{0, 1, 0})
		assertMatNear(t, "LookAt", got, Mat4(want))
	}
}

func TestRotateMatchesMathgl(t *testing.T) {
	axes := []Vec3{{1, 0, 0}, {0, 0, 1}, {1, 1, 1}, {0.2, -0.7, 0.4}}
	for _, axis := range axes {
		for _, deg := range []float32{-90, 0, 45, 90, 180} {
			got := Rotate(Radians(deg), axis)
			want := mgl32.HomogRotate3D(mgl32.DegToRad(deg), toMgl(axis).Normalize())
			assertMatNear(t, "Rotate", got, Mat4(want))
		}
	}
}

func TestModelOrderMatchesMathgl(t *testing.T) {
	pos := Vec3{0, -0.5, -5}
	scale := Vec3{0.5, 0.5, 0.5}
	angle := Radians(90)

	got := Translate(pos).Mul(Rotate(angle, Vec3{1, 0, 0})).Mul(Scale(scale))
	want := mgl32.Translate3D(pos.X, pos.Y, pos.Z).
		Mul4(mgl32.HomogRotate3DX(angle)).
		Mul4(mgl32.Scale3D(scale.X, scale.Y, scale.Z))
	assertMatNear(t, "T*R*S", got, Mat4(want))
}

func toMgl(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func assertMatNear(t *testing.T, name string, got, want Mat4) {
	t.Helper()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Fatalf("%s element %d: got %v, want %v", name, i, got[i], want[i])
		}
	}
}

func vecNear(a, b Vec3) bool {
	return a.Distance(b) < 1e-4
}
