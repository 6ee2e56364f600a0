package math

import "testing"

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized = %v, want zero", z)
	}
}

func TestVec3Clamp(t *testing.T) {
	lo := Vec3{-1, -1, -1}
	hi := Vec3{1, 1, 1}

	tests := []struct {
		in, want Vec3
	}{
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}},
		{Vec3{2, -3, 0.5}, Vec3{1, -1, 0.5}},
		{Vec3{-1, 1, -5}, Vec3{-1, 1, -1}},
	}

	for _, tt := range tests {
		if got := tt.in.Clamp(lo, hi); got != tt.want {
			t.Errorf("%v.Clamp() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
