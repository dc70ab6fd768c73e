package model

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/geom"
)

// Projector is the subset of renderer state the clip+project pipeline
// needs. Defined here rather than depending on the root swrast package to
// avoid an import cycle (swrast depends on model, not the reverse).
type Projector interface {
	ViewTransform() mgl32.Mat4
	FocalWidth() float32
	FocalHeight() float32
	HalfWidth() float32
	HalfHeight() float32
	Near() float32
}

// ProjectedTriangle is a frame-local, screen-space triangle ready for
// binning and rasterization: perspective-correct attributes are
// pre-divided by z so the hot loop only multiplies and sums. Ported from
// model/triangle.rs.
type ProjectedTriangle struct {
	Vertices geom.Triangle2

	// DepthInv holds 1/z for vertices A, B, C respectively.
	DepthInv mgl32.Vec3

	ColDepth       [3]colour.RGB
	TexCoordsDepth [3]mgl32.Vec2

	TwoAreaInv float32
	SATEdges   [3]mgl32.Vec2
	TextureID  *TextureID
}

// Bounds returns the triangle's screen-space AABB, used by binning to
// compute the candidate tile range.
func (t *ProjectedTriangle) Bounds() geom.AABB2 { return t.Vertices.Extents() }

// IsBackFacing reports whether the cached reciprocal double-area is
// negative, meaning the triangle's screen-space winding is back-facing.
func (t *ProjectedTriangle) IsBackFacing() bool { return t.TwoAreaInv < 0 }

// IsTextured reports whether the triangle carries a texture handle.
func (t *ProjectedTriangle) IsTextured() bool { return t.TextureID != nil }

// ProjectInstanceTriangles clips and projects every triangle of instance
// (one mesh placement) against proj's view transform and near plane,
// appending surviving, front-facing triangles to dst, and returns the
// extended slice. Ported from model/triangle.rs's TriangleProjector plus
// the back-face filter renderer.rs's project_meshes applies inline.
func ProjectInstanceTriangles(dst []ProjectedTriangle, proj Projector, mesh *Mesh, instance *MeshInstance) []ProjectedTriangle {
	near := proj.Near()
	view := proj.ViewTransform()

	for i := 0; i+3 <= len(mesh.Indices); i += 3 {
		var verts [3]Vertex
		for j := 0; j < 3; j++ {
			idx := mesh.Indices[i+j]
			meshVertex := mesh.Vertices[idx]
			verts[j] = Vertex{
				Position: TransformPoint(instance.WorldPositions[idx], view),
				Colour:   meshVertex.Colour,
				TexCoord: meshVertex.TexCoord,
			}
		}

		tris, n := clipTriangle(verts, near)
		for k := 0; k < n; k++ {
			pt := projectTriangle(proj, tris[k], mesh.TextureID)
			if !pt.IsBackFacing() {
				dst = append(dst, pt)
			}
		}
	}

	return dst
}

// clipTriangle clips vertices against the z = near half-space, returning
// 0, 1 or 2 output triangles. Ported from triangle.rs's clip_triangle; the
// split-diagonal choice for the two-triangles-in/one-out cases is fixed,
// matching the original bit-for-bit.
func clipTriangle(vertices [3]Vertex, near float32) (out [2][3]Vertex, n int) {
	mask := 0
	if vertices[0].Position.Z() < near {
		mask |= 0b100
	}
	if vertices[1].Position.Z() < near {
		mask |= 0b010
	}
	if vertices[2].Position.Z() < near {
		mask |= 0b001
	}

	switch mask {
	case 0b000:
		out[0] = vertices
		return out, 1

	case 0b111:
		return out, 0

	case 0b001:
		v2 := clipEdge(vertices[1], vertices[2], near)
		v3 := clipEdge(vertices[0], vertices[2], near)
		out[0] = [3]Vertex{vertices[0], vertices[1], v2}
		out[1] = [3]Vertex{v2, v3, vertices[0]}
		return out, 2

	case 0b010:
		v1 := clipEdge(vertices[0], vertices[1], near)
		v3 := clipEdge(vertices[2], vertices[1], near)
		out[0] = [3]Vertex{vertices[2], vertices[0], v1}
		out[1] = [3]Vertex{v1, v3, vertices[2]}
		return out, 2

	case 0b100:
		v0 := clipEdge(vertices[2], vertices[0], near)
		v3 := clipEdge(vertices[1], vertices[0], near)
		out[0] = [3]Vertex{vertices[1], vertices[2], v0}
		out[1] = [3]Vertex{v0, v3, vertices[1]}
		return out, 2

	case 0b011:
		v1 := clipEdge(vertices[0], vertices[1], near)
		v2 := clipEdge(vertices[0], vertices[2], near)
		out[0] = [3]Vertex{vertices[0], v1, v2}
		return out, 1

	case 0b101:
		v0 := clipEdge(vertices[1], vertices[0], near)
		v2 := clipEdge(vertices[1], vertices[2], near)
		out[0] = [3]Vertex{v0, vertices[1], v2}
		return out, 1

	case 0b110:
		v0 := clipEdge(vertices[2], vertices[0], near)
		v1 := clipEdge(vertices[2], vertices[1], near)
		out[0] = [3]Vertex{v0, v1, vertices[2]}
		return out, 1

	default:
		panic("model: unreachable clip mask")
	}
}

// projectTriangle converts a 3-vertex, view-space (post-clip) triangle
// into a ProjectedTriangle: screen coordinates, premultiplied attributes
// and the cached SAT/area values. Ported from triangle.rs's
// project_triangle.
func projectTriangle(proj Projector, vertices [3]Vertex, textureID *TextureID) ProjectedTriangle {
	var depthInv mgl32.Vec3
	var colDepth [3]colour.RGB
	var texCoordsDepth [3]mgl32.Vec2
	var screen [3]mgl32.Vec2

	focalW, focalH := proj.FocalWidth(), proj.FocalHeight()
	halfW, halfH := proj.HalfWidth(), proj.HalfHeight()

	for i := 0; i < 3; i++ {
		z := vertices[i].Position.Z()
		inv := 1.0 / z
		depthInv[i] = inv

		colDepth[i] = vertices[i].Colour.Scale(inv)
		texCoordsDepth[i] = vertices[i].TexCoord.Mul(inv)

		screen[i] = mgl32.Vec2{
			focalW*vertices[i].Position.X()*inv + halfW,
			-focalH*vertices[i].Position.Y()*inv + halfH,
		}
	}

	triangle := geom.Triangle2{A: screen[0], B: screen[1], C: screen[2]}
	twoAreaInv := 1.0 / triangle.TwoAreaSigned()

	return ProjectedTriangle{
		Vertices:       triangle,
		DepthInv:       depthInv,
		ColDepth:       colDepth,
		TexCoordsDepth: texCoordsDepth,
		TwoAreaInv:     twoAreaInv,
		SATEdges:       triangle.SATEdges(),
		TextureID:      textureID,
	}
}
