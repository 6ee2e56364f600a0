// Package debug provides debug visualization utilities.
package debug

import "github.com/Faultbox/roomwalk/pkg/math"

// BoxVertexCount is the number of line vertices for one box (12 edges x 2).
const BoxVertexCount = 24

// BoxWireframe returns line-list vertices for the edges of b, three floats
// per vertex.
func BoxWireframe(b math.AABB) []float32 {
	lo, hi := b.Min, b.Max
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Vertical edges
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// BoxGroup is a set of boxes drawn in one colour.
type BoxGroup struct {
	Name   string
	Colour math.Vec3
	Boxes  []math.AABB
}

// span is a contiguous run of vertices in the overlay buffer.
type span struct {
	name   string
	colour math.Vec3
	first  int32
	count  int32
}

// buildLines concatenates the wireframes of every group and records where
// each group's vertices start.
func buildLines(groups []BoxGroup) ([]float32, []span) {
	var verts []float32
	spans := make([]span, 0, len(groups))
	for _, g := range groups {
		first := int32(len(verts) / 3)
		for _, b := range g.Boxes {
			verts = append(verts, BoxWireframe(b)...)
		}
		spans = append(spans, span{
			name:   g.Name,
			colour: g.Colour,
			first:  first,
			count:  int32(len(verts)/3) - first,
		})
	}
	return verts, spans
}
