// Package model implements the mesh/instance/model data and the per-frame
// clip+project pipeline that turns a mesh instance's triangles into
// screen-space ProjectedTriangle values. Ported from the original Rust
// source's model/{vertex,mesh,model,triangle}.rs.
package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
)

// Vertex is one corner of a mesh triangle: position in local mesh space,
// a vertex colour and a texture coordinate. Ported from model/vertex.rs.
type Vertex struct {
	Position mgl32.Vec3
	Colour   colour.RGB
	TexCoord mgl32.Vec2
}

// TransformPoint applies transform to point. Ported from vertex.rs's
// transform_point — position only; colour and uv carry through any
// transform untouched.
func TransformPoint(point mgl32.Vec3, transform mgl32.Mat4) mgl32.Vec3 {
	return transform.Mul4x1(point.Vec4(1.0)).Vec3()
}

// clipEdge produces the vertex where the segment inBounds->outBounds
// crosses the z = near plane, linearly interpolating every attribute.
// t is in [0,1) by construction: inBounds.Position.Z() >= near and
// outBounds.Position.Z() < near is the caller's contract, not checked here.
func clipEdge(inBounds, outBounds Vertex, near float32) Vertex {
	t := (near - inBounds.Position.Z()) / (outBounds.Position.Z() - inBounds.Position.Z())

	return Vertex{
		Position: lerpVec3(inBounds.Position, outBounds.Position, t),
		Colour:   inBounds.Colour.Lerp(outBounds.Colour, t),
		TexCoord: lerpVec2(inBounds.TexCoord, outBounds.TexCoord, t),
	}
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
