// Package scene holds the placed objects of the room and the manifest they
// are built from.
package scene

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/roomwalk/pkg/math"
)

// ErrUnknownKind is returned when a kind name is not recognised.
var ErrUnknownKind = errors.New("unknown object kind")

// Kind tags what an object is and which model draws it.
type Kind int

const (
	// KindUnknown is the zero value; a manifest entry without a kind keeps
	// it and fails validation.
	KindUnknown Kind = iota
	KindCube
	KindFloor
	KindCeiling
	KindWall

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown: "unknown",
	KindCube:    "cube",
	KindFloor:   "floor",
	KindCeiling: "ceiling",
	KindWall:    "wall",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindCube, KindFloor, KindCeiling, KindWall}
}

// String returns the manifest name of the kind.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a manifest name to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Object is a placed instance in the room.
type Object struct {
	Position     math.Vec3
	RotationAxis math.Vec3
	Scale        math.Vec3
	Angle        float32 // radians
	Kind         Kind
}

// ModelMatrix returns translate * rotate * scale for the object.
func (o Object) ModelMatrix() math.Mat4 {
	return math.Translate(o.Position).
		Mul(math.Rotate(o.Angle, o.RotationAxis)).
		Mul(math.Scale(o.Scale))
}

// Box returns the axis-aligned box spanned by the object's scale around its
// position. Rotation is ignored.
func (o Object) Box() math.AABB {
	return math.BoxAround(o.Position, o.Scale)
}
