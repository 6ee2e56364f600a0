package math

import "math"

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float32) float32 {
	return radians * 180 / math.Pi
}

// AABB is an axis-aligned box given by its minimum and maximum corners.
type AABB struct {
	Min Vec3
	Max Vec3
}

// BoxAround returns the box of the given full size centred on center.
func BoxAround(center, size Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Contains reports whether p lies inside the box. Faces are inclusive.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ClosestPoint returns the point of the box nearest to p.
// Points inside the box map to themselves.
func (b AABB) ClosestPoint(p Vec3) Vec3 {
	return p.Clamp(b.Min, b.Max)
}

// Center returns the box centre.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent along each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// IntersectsSphere reports whether a sphere overlaps the box. The test is
// strict: a sphere exactly touching a face does not intersect.
func (b AABB) IntersectsSphere(center Vec3, radius float32) bool {
	return center.Distance(b.ClosestPoint(center)) < radius
}
