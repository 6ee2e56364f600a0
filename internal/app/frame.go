package app

import (
	"github.com/Faultbox/roomwalk/internal/engine/scene"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// DrawCall is one object's draw for the current frame.
type DrawCall struct {
	Kind scene.Kind
	MV   math.Mat4
	MVP  math.Mat4
}

// BuildDrawCalls computes MV = view * model and MVP = projection * MV for
// every object, in registry order.
func BuildDrawCalls(objects []scene.Object, view, projection math.Mat4) []DrawCall {
	calls := make([]DrawCall, len(objects))
	for i, obj := range objects {
		mv := view.Mul(obj.ModelMatrix())
		calls[i] = DrawCall{
			Kind: obj.Kind,
			MV:   mv,
			MVP:  projection.Mul(mv),
		}
	}
	return calls
}
