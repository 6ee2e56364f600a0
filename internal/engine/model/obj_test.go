package model

import (
	"errors"
	stdmath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/roomwalk/pkg/math"
)

const quadOBJ = `# unit quad in the XZ plane
v -1 0 -1
v  1 0 -1
v  1 0  1
v -1 0  1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 1 0
f 1/1/1 4/4/1 3/3/1 2/2/1
`

func near(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) < 1e-5
}

func vecNear(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestParseOBJQuad(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}

	if len(mesh.Vertices) != 4 {
		t.Errorf("expected 4 shared vertices, got %d", len(mesh.Vertices))
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles from fan triangulation, got %d", mesh.TriangleCount())
	}

	// Fan: (0,1,2) (0,2,3) in corner order.
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i, idx := range want {
		if mesh.Indices[i] != idx {
			t.Fatalf("indices = %v, want %v", mesh.Indices, want)
		}
	}

	wantBounds := math.AABB{Min: math.Vec3{X: -1, Y: 0, Z: -1}, Max: math.Vec3{X: 1, Y: 0, Z: 1}}
	if mesh.Bounds != wantBounds {
		t.Errorf("bounds = %+v, want %+v", mesh.Bounds, wantBounds)
	}

	if mesh.Vertices[1].TexCoord != [2]float32{0, 1} {
		t.Errorf("second corner uv = %v, want [0 1]", mesh.Vertices[1].TexCoord)
	}
}

func TestParseOBJTangentFrame(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}

	// u runs along +X and v along +Z on this quad.
	for i, v := range mesh.Vertices {
		n, tan, bit := vec3(v.Normal), vec3(v.Tangent), vec3(v.Bitangent)
		if !vecNear(n, math.Vec3{Y: 1}) {
			t.Errorf("vertex %d normal = %v", i, n)
		}
		if !vecNear(tan, math.Vec3{X: 1}) {
			t.Errorf("vertex %d tangent = %v, want +X", i, tan)
		}
		if !vecNear(bit, math.Vec3{Z: 1}) {
			t.Errorf("vertex %d bitangent = %v, want +Z", i, bit)
		}
		if !near(tan.Dot(n), 0) || !near(bit.Dot(n), 0) {
			t.Errorf("vertex %d frame not orthogonal", i)
		}
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
	if mesh.Vertices[mesh.Indices[0]].Position != [3]float32{0, 0, 0} ||
		mesh.Vertices[mesh.Indices[2]].Position != [3]float32{0, 1, 0} {
		t.Error("negative indices resolved to the wrong positions")
	}
}

func TestParseOBJComputesMissingNormals(t *testing.T) {
	// Counter-clockwise seen from +Z.
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range mesh.Vertices {
		if !vecNear(vec3(v.Normal), math.Vec3{Z: 1}) {
			t.Errorf("vertex %d normal = %v, want +Z", i, v.Normal)
		}
	}
}

func TestParseOBJDegenerateUV(t *testing.T) {
	// No texture coordinates: the tangent frame must still be orthonormal.
	src := `v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range mesh.Vertices {
		tan, bit, n := vec3(v.Tangent), vec3(v.Bitangent), vec3(v.Normal)
		if !near(tan.Length(), 1) || !near(bit.Length(), 1) {
			t.Errorf("vertex %d frame not unit length: %v %v", i, tan, bit)
		}
		if !near(tan.Dot(n), 0) || !near(bit.Dot(n), 0) || !near(tan.Dot(bit), 0) {
			t.Errorf("vertex %d frame not orthogonal", i)
		}
	}
}

func TestParseOBJIgnoresUnknownRecords(t *testing.T) {
	src := `mtllib room.mtl
o cube
g side
usemtl leather
s off
v 0 0 0 1.0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad float", "v 0 x 0\n", "line 1"},
		{"short vertex", "v 0 0\n", "vertex"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "at least 3"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "index 0"},
		{"out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "out of range"},
		{"bad normal ref", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", "normal"},
		{"too many slashes", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1/1 2 3\n", "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestParseOBJEmpty(t *testing.T) {
	for _, src := range []string{"", "# nothing\n", "v 0 0 0\nv 1 0 0\n"} {
		if _, err := ParseOBJ(strings.NewReader(src)); !errors.Is(err, ErrEmptyMesh) {
			t.Errorf("ParseOBJ(%q): expected ErrEmptyMesh, got %v", src, err)
		}
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestParseSlot(t *testing.T) {
	for _, s := range []Slot{SlotDiffuse, SlotNormal, SlotSpecular} {
		got, ok := ParseSlot(s.String())
		if !ok || got != s {
			t.Errorf("ParseSlot(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSlot("emissive"); ok {
		t.Error("emissive is not a slot")
	}
}
