package geom

import "github.com/go-gl/mathgl/mgl32"

// Triangle2 is a 2D (screen-space) triangle, used by ProjectedTriangle for
// SAT binning and barycentric evaluation.
type Triangle2 struct {
	A, B, C mgl32.Vec2
}

// Points returns the triangle's three vertices as a slice, the shape SAT
// wants for projecting onto a candidate axis.
func (t Triangle2) Points() [3]mgl32.Vec2 { return [3]mgl32.Vec2{t.A, t.B, t.C} }

// Extents returns the triangle's axis-aligned bounding box.
func (t Triangle2) Extents() AABB2 { return FromPoints2(t.Points()) }

// SATEdges returns the three outward edge-perpendicular vectors used as
// separating-axis candidates during tile binning.
func (t Triangle2) SATEdges() [3]mgl32.Vec2 {
	return [3]mgl32.Vec2{
		NewSegment(t.A, t.B).Perpendicular(),
		NewSegment(t.B, t.C).Perpendicular(),
		NewSegment(t.C, t.A).Perpendicular(),
	}
}

// TwoAreaSigned returns edge_side(B,A;C), twice the triangle's signed area
// in this screen-space (y-down) convention. Positive when the triangle is
// front-facing; its reciprocal is the value ProjectedTriangle caches and
// back-face culling tests the sign of.
func (t Triangle2) TwoAreaSigned() float32 {
	return NewSegment(t.B, t.A).EdgeSide(t.C)
}

// BarycentricFromInvArea computes barycentric weights (alpha, beta, gamma)
// of point with respect to the triangle, given the precomputed reciprocal
// of twice the triangle's signed area (TwoAreaSigned). alpha is the weight
// of vertex A (derived from edge C->B), beta of B (edge A->C), gamma of C
// (edge B->A) — the same reversed-edge convention TwoAreaSigned uses, so the
// three weights are consistent with it and sum to 1 inside the triangle.
// The result dots directly against per-vertex attribute arrays ordered
// [A, B, C].
func (t Triangle2) BarycentricFromInvArea(point mgl32.Vec2, twoAreaInv float32) mgl32.Vec3 {
	alpha := NewSegment(t.C, t.B).EdgeSide(point) * twoAreaInv
	beta := NewSegment(t.A, t.C).EdgeSide(point) * twoAreaInv
	gamma := NewSegment(t.B, t.A).EdgeSide(point) * twoAreaInv
	return mgl32.Vec3{alpha, beta, gamma}
}
