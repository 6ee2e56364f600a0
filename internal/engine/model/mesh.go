package model

import (
	"github.com/Faultbox/roomwalk/pkg/math"
)

// computeBounds sets m.Bounds from the vertex positions.
func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = math.AABB{}
		return
	}
	lo := vec3(m.Vertices[0].Position)
	hi := lo
	for _, v := range m.Vertices[1:] {
		p := vec3(v.Position)
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	m.Bounds = math.AABB{Min: lo, Max: hi}
}

// computeNormals fills in smooth normals for vertices flagged in missing by
// accumulating area-weighted face normals.
func (m *Mesh) computeNormals(missing []bool) {
	acc := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0 := vec3(m.Vertices[a].Position)
		p1 := vec3(m.Vertices[b].Position)
		p2 := vec3(m.Vertices[c].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, idx := range [3]uint32{a, b, c} {
			if missing[idx] {
				acc[idx] = acc[idx].Add(n)
			}
		}
	}
	for i, n := range acc {
		if missing[i] {
			m.Vertices[i].Normal = n.Normalize().Array()
		}
	}
}

// computeTangents derives per-vertex tangent frames from texture
// coordinates. Tangents are orthogonalised against the normal; vertices
// with no usable UV gradient get an arbitrary frame around the normal.
func (m *Mesh) computeTangents() {
	tan := make([]math.Vec3, len(m.Vertices))
	bit := make([]math.Vec3, len(m.Vertices))

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		v0, v1, v2 := m.Vertices[a], m.Vertices[b], m.Vertices[c]

		e1 := vec3(v1.Position).Sub(vec3(v0.Position))
		e2 := vec3(v2.Position).Sub(vec3(v0.Position))
		du1, dv1 := v1.TexCoord[0]-v0.TexCoord[0], v1.TexCoord[1]-v0.TexCoord[1]
		du2, dv2 := v2.TexCoord[0]-v0.TexCoord[0], v2.TexCoord[1]-v0.TexCoord[1]

		det := du1*dv2 - du2*dv1
		if det == 0 {
			continue
		}
		r := 1 / det
		t := e1.Scale(dv2).Sub(e2.Scale(dv1)).Scale(r)
		bt := e2.Scale(du1).Sub(e1.Scale(du2)).Scale(r)

		for _, idx := range [3]uint32{a, b, c} {
			tan[idx] = tan[idx].Add(t)
			bit[idx] = bit[idx].Add(bt)
		}
	}

	for i := range m.Vertices {
		n := vec3(m.Vertices[i].Normal)
		t := tan[i].Sub(n.Scale(n.Dot(tan[i]))).Normalize()
		if t.Length() == 0 {
			t = perpendicular(n)
		}
		b := n.Cross(t)
		if b.Dot(bit[i]) < 0 {
			b = b.Negate()
		}
		m.Vertices[i].Tangent = t.Array()
		m.Vertices[i].Bitangent = b.Array()
	}
}

// perpendicular returns a unit vector orthogonal to n.
func perpendicular(n math.Vec3) math.Vec3 {
	axis := math.Vec3{X: 1}
	if n.X > 0.9 || n.X < -0.9 {
		axis = math.Vec3{Y: 1}
	}
	return axis.Sub(n.Scale(n.Dot(axis))).Normalize()
}
