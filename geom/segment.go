package geom

import "github.com/go-gl/mathgl/mgl32"

// Segment is a directed 2D edge A->B, used for the edge_side / cross-product
// test at the heart of barycentric evaluation and back-face detection.
type Segment struct {
	A, B mgl32.Vec2
}

// NewSegment builds a Segment from A to B.
func NewSegment(a, b mgl32.Vec2) Segment { return Segment{a, b} }

// EdgeSide evaluates (B-A) x (R-A), i.e. twice the signed area of the
// triangle (A, B, R). Positive when R is to the left of A->B.
func (s Segment) EdgeSide(r mgl32.Vec2) float32 {
	e := s.B.Sub(s.A)
	d := r.Sub(s.A)
	return e[0]*d[1] - e[1]*d[0]
}

// Perpendicular returns the outward-facing normal of the vector A->B,
// rotated 90 degrees, used as a SAT separating axis.
func (s Segment) Perpendicular() mgl32.Vec2 {
	d := s.B.Sub(s.A)
	return mgl32.Vec2{-d[1], d[0]}
}

// ClipToBounds clips s against bounds using Liang-Barsky, returning the
// clipped segment and true, or an unspecified Segment and false if s lies
// entirely outside bounds. Used by the debug line rasterizer to keep a
// wireframe edge's endpoints within the framebuffer before the unchecked
// pixel write.
func (s Segment) ClipToBounds(bounds AABB2) (Segment, bool) {
	dx := s.B[0] - s.A[0]
	dy := s.B[1] - s.A[1]

	tMin, tMax := float32(0.0), float32(1.0)

	p := [4]float32{-dx, dx, -dy, dy}
	q := [4]float32{
		s.A[0] - bounds.Min[0],
		bounds.Max[0] - s.A[0],
		s.A[1] - bounds.Min[1],
		bounds.Max[1] - s.A[1],
	}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return Segment{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > tMax {
				return Segment{}, false
			}
			if t > tMin {
				tMin = t
			}
		} else {
			if t < tMin {
				return Segment{}, false
			}
			if t < tMax {
				tMax = t
			}
		}
	}

	a := mgl32.Vec2{s.A[0] + tMin*dx, s.A[1] + tMin*dy}
	b := mgl32.Vec2{s.A[0] + tMax*dx, s.A[1] + tMax*dy}
	return Segment{A: a, B: b}, true
}
