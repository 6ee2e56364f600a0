// Package collision decides whether a camera position is blocked by the room
// bounds or by any cube.
package collision

import (
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// DefaultRadius is the camera's collision sphere radius.
const DefaultRadius = 0.5

// Detector tests positions against static room bounds and cube objects.
// Cost is linear in bounds plus cubes; the room is small enough that no
// spatial index is needed.
type Detector struct {
	bounds []math.AABB
	radius float32
}

// NewDetector creates a detector over the given bounds. The bounds slice is
// copied.
func NewDetector(bounds []math.AABB, radius float32) *Detector {
	d := &Detector{
		bounds: make([]math.AABB, len(bounds)),
		radius: radius,
	}
	copy(d.bounds, bounds)
	return d
}

// Radius returns the collision sphere radius.
func (d *Detector) Radius() float32 {
	return d.radius
}

// Bounds returns the room bounds. The slice must not be modified.
func (d *Detector) Bounds() []math.AABB {
	return d.bounds
}

// IsBlocked reports whether pos lies inside any room bound (faces
// inclusive) or the collision sphere at pos overlaps any cube. Only cube
// objects are tested; floor, ceiling and walls are covered by the bounds.
func (d *Detector) IsBlocked(pos math.Vec3, objects []scene.Object) bool {
	if _, ok := d.BoundAt(pos); ok {
		return true
	}
	_, ok := d.CubeAt(pos, objects)
	return ok
}

// BoundAt returns the index of the first bound containing pos.
func (d *Detector) BoundAt(pos math.Vec3) (int, bool) {
	for i, b := range d.bounds {
		if b.Contains(pos) {
			return i, true
		}
	}
	return -1, false
}

// CubeAt returns the index into objects of the first cube the collision
// sphere at pos overlaps.
func (d *Detector) CubeAt(pos math.Vec3, objects []scene.Object) (int, bool) {
	for i, obj := range objects {
		if obj.Kind != scene.KindCube {
			continue
		}
		if obj.Box().IntersectsSphere(pos, d.radius) {
			return i, true
		}
	}
	return -1, false
}
