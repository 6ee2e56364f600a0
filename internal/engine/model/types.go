// Package model loads Wavefront OBJ meshes and draws them with textures and
// a Phong material.
package model

import (
	"errors"

	"github.com/Faultbox/roomwalk/pkg/math"
)

// ErrEmptyMesh is returned when a mesh file yields no triangles.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// Vertex is the interleaved GPU vertex layout.
type Vertex struct {
	Position  [3]float32
	Normal    [3]float32
	TexCoord  [2]float32
	Tangent   [3]float32
	Bitangent [3]float32
}

// Mesh holds indexed triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   math.AABB
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Material holds Phong lighting coefficients.
type Material struct {
	Ka float32
	Kd float32
	Ks float32
	Ns float32
}

// Slot names a texture binding.
type Slot int

const (
	SlotDiffuse Slot = iota
	SlotNormal
	SlotSpecular

	slotCount
)

var slotNames = [slotCount]string{"diffuse", "normal", "specular"}

// sampler uniform per slot, bound to the texture unit of the same index.
var slotUniforms = [slotCount]string{"diffuseMap", "normalMap", "specularMap"}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// ParseSlot converts a slot name to a Slot.
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
