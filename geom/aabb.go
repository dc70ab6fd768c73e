// Package geom holds the math primitives layered on top of mgl32 that the
// renderer shares across packages: axis-aligned bounding boxes in 2D and 3D,
// 2D segments/triangles for screen space, and the conservative
// corner-transform idiom used to re-derive bounds under a new transform
// (ported from the teacher's voxelrt AABB-corner-transform code).
package geom

import "github.com/go-gl/mathgl/mgl32"

// AABB3 is an axis-aligned bounding box in 3D (world or view space).
type AABB3 struct {
	Min, Max mgl32.Vec3
}

// NewAABB3 builds an AABB3 from explicit min/max corners.
func NewAABB3(min, max mgl32.Vec3) AABB3 { return AABB3{min, max} }

// Points returns the 8 corners of the box, in a fixed order.
func (b AABB3) Points() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// Intersects is a coarse box-vs-box overlap test, used for per-instance
// view-frustum culling.
func (b AABB3) Intersects(other AABB3) bool {
	return b.Min[0] <= other.Max[0] && b.Max[0] >= other.Min[0] &&
		b.Min[1] <= other.Max[1] && b.Max[1] >= other.Min[1] &&
		b.Min[2] <= other.Max[2] && b.Max[2] >= other.Min[2]
}

// FromPoints3 finds the bounds of a Vec3 slice (used for a mesh's local-space
// AABB at construction time).
func FromPoints3(points []mgl32.Vec3) AABB3 {
	min := mgl32.Vec3{mgl32InfPos, mgl32InfPos, mgl32InfPos}
	max := mgl32.Vec3{mgl32InfNeg, mgl32InfNeg, mgl32InfNeg}
	for _, p := range points {
		min = minVec3(min, p)
		max = maxVec3(max, p)
	}
	return AABB3{min, max}
}

// TransformConservative re-derives a bounding box by transforming all 8
// corners of bounds under transform and re-bounding the result. The result
// may be looser than the tight bound but is always conservative — the same
// technique the teacher's voxel engine uses to re-derive a VoxelObject's
// world AABB from its local AABB on every transform change.
func TransformConservative(bounds AABB3, transform mgl32.Mat4) AABB3 {
	corners := bounds.Points()
	min := mgl32.Vec3{mgl32InfPos, mgl32InfPos, mgl32InfPos}
	max := mgl32.Vec3{mgl32InfNeg, mgl32InfNeg, mgl32InfNeg}
	for _, c := range corners {
		wc := transform.Mul4x1(c.Vec4(1.0)).Vec3()
		min = minVec3(min, wc)
		max = maxVec3(max, wc)
	}
	return AABB3{min, max}
}

const (
	mgl32InfPos = float32(3.4e38)
	mgl32InfNeg = float32(-3.4e38)
)

func minVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min32(a[0], b[0]), min32(a[1], b[1]), min32(a[2], b[2])}
}

func maxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max32(a[0], b[0]), max32(a[1], b[1]), max32(a[2], b[2])}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// AABB2 is an axis-aligned bounding box in 2D (screen space).
type AABB2 struct {
	Min, Max mgl32.Vec2
}

// FromPoints2 finds the screen-space bounds of three points (a projected
// triangle's extents, used to compute the candidate tile range).
func FromPoints2(points [3]mgl32.Vec2) AABB2 {
	min := mgl32.Vec2{points[0][0], points[0][1]}
	max := min
	for _, p := range points[1:] {
		if p[0] < min[0] {
			min[0] = p[0]
		}
		if p[1] < min[1] {
			min[1] = p[1]
		}
		if p[0] > max[0] {
			max[0] = p[0]
		}
		if p[1] > max[1] {
			max[1] = p[1]
		}
	}
	return AABB2{min, max}
}
