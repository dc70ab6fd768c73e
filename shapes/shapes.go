// Package shapes implements procedural mesh generators: a unit quad, a unit
// cube and a UV-less cubemapped sphere. Ported from renderer/src/shapes.rs.
package shapes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/model"
)

func v(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }
func uv(u, w float32) mgl32.Vec2   { return mgl32.Vec2{u, w} }

// UnitQuadMesh builds a single-sided quad spanning [-1,1] in x and y at
// z=0, facing -Z. Its vertex colour mirrors its position, the same
// debug-colour convention every shape here uses.
func UnitQuadMesh() *model.Mesh {
	vertices := []model.Vertex{
		{Position: v(1, -1, 0), Colour: colourOf(v(1, -1, 0)), TexCoord: uv(1, 0)},
		{Position: v(-1, -1, 0), Colour: colourOf(v(-1, -1, 0)), TexCoord: uv(0, 0)},
		{Position: v(-1, 1, 0), Colour: colourOf(v(-1, 1, 0)), TexCoord: uv(0, 1)},
		{Position: v(1, 1, 0), Colour: colourOf(v(1, 1, 0)), TexCoord: uv(1, 1)},
	}
	indices := []uint32{0, 2, 1, 2, 0, 3}

	return model.NewMesh("Quad", vertices, indices, nil)
}

// UnitCubeMesh builds an axis-aligned cube of side 1 centred on the
// origin, 24 vertices (4 per face, unshared across faces so each face gets
// its own texture coordinates).
func UnitCubeMesh() *model.Mesh {
	positions := []mgl32.Vec3{
		v(0.5, -0.5, -0.5), v(-0.5, -0.5, -0.5), v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5),
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5), v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, 0.5, -0.5), v(0.5, 0.5, -0.5), v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
		v(0.5, -0.5, 0.5), v(-0.5, -0.5, 0.5), v(-0.5, 0.5, 0.5), v(0.5, 0.5, 0.5),
		v(0.5, -0.5, -0.5), v(0.5, -0.5, 0.5), v(0.5, 0.5, 0.5), v(0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(-0.5, -0.5, -0.5), v(-0.5, 0.5, -0.5), v(-0.5, 0.5, 0.5),
	}
	faceUVs := [4]mgl32.Vec2{uv(0, 0), uv(1, 0), uv(1, 1), uv(0, 1)}

	vertices := make([]model.Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = model.Vertex{Position: p, Colour: colourOf(p), TexCoord: faceUVs[i%4]}
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base+0, base+2, base+1,
			base+2, base+0, base+3,
		)
	}

	return model.NewMesh("Cube", vertices, indices, nil)
}

// sphereOrigins, sphereRights and sphereUps describe the 6 cubemap faces a
// sphere is built from: each face is a resolution x resolution grid of
// points on origin + right*u*step + up*v*step, projected onto the unit
// sphere.
//
// NOTE: face index 5 (the -Y face) uses the same origin value as face 3,
// (-1,-1,1), as the original generator's table does. With face 5's right
// (+X) and up (-Z) vectors that origin spans the whole y=-1 face, so the
// six faces still cover the cube. The repeated value is pinned by a test.
var sphereOrigins = [6]mgl32.Vec3{
	v(-1, -1, -1),
	v(1, -1, -1),
	v(1, -1, 1),
	v(-1, -1, 1),
	v(-1, 1, -1),
	v(-1, -1, 1),
}

var sphereRights = [6]mgl32.Vec3{
	v(1, 0, 0),
	v(0, 0, 1),
	v(-1, 0, 0),
	v(0, 0, -1),
	v(1, 0, 0),
	v(1, 0, 0),
}

var sphereUps = [6]mgl32.Vec3{
	v(0, 1, 0),
	v(0, 1, 0),
	v(0, 1, 0),
	v(0, 1, 0),
	v(0, 0, 1),
	v(0, 0, -1),
}

// UnitSphereMesh builds a sphere of radius ~1 by projecting a resolution x
// resolution grid on each of 6 cube faces outward onto the unit sphere
// (a cubemap-sphere, not a UV/latitude-longitude sphere). resolution must
// be >= 1.
func UnitSphereMesh(resolution int) *model.Mesh {
	var vertices []model.Vertex
	var indices []uint32

	step := 2.0 / float32(resolution)

	for face := 0; face < 6; face++ {
		origin := sphereOrigins[face]
		right := sphereRights[face]
		up := sphereUps[face]

		base := uint32(len(vertices))
		n1 := uint32(resolution + 1)

		for u := 0; u < resolution; u++ {
			for w := 0; w < resolution; w++ {
				uu, ww := uint32(u), uint32(w)
				indices = append(indices,
					base+ww+uu*n1,
					base+(ww+1)+(uu+1)*n1,
					base+ww+(uu+1)*n1,
					base+(ww+1)+(uu+1)*n1,
					base+ww+uu*n1,
					base+(ww+1)+uu*n1,
				)
			}
		}

		for u := 0; u <= resolution; u++ {
			for w := 0; w <= resolution; w++ {
				p := origin.Add(right.Mul(float32(u)).Add(up.Mul(float32(w))).Mul(step))
				n := cubeToSphere(p)

				vertices = append(vertices, model.Vertex{
					Position: n,
					Colour:   colourOf(n),
					TexCoord: uv(float32(u)/float32(resolution), float32(w)/float32(resolution)),
				})
			}
		}
	}

	return model.NewMesh("Sphere", vertices, indices, nil)
}

// cubeToSphere warps a point on a cube face onto the unit sphere using the
// standard analytic (non-normalize-based) distortion-correction formula.
func cubeToSphere(p mgl32.Vec3) mgl32.Vec3 {
	x2, y2, z2 := p.X()*p.X(), p.Y()*p.Y(), p.Z()*p.Z()

	return v(
		p.X()*float32(math.Sqrt(float64(1.0-(y2+z2)/2.0+y2*z2/3.0))),
		p.Y()*float32(math.Sqrt(float64(1.0-(x2+z2)/2.0+x2*z2/3.0))),
		p.Z()*float32(math.Sqrt(float64(1.0-(x2+y2)/2.0+x2*y2/3.0))),
	)
}

// colourOf mirrors the original generator's debug convention of using a
// shape's local position directly as its vertex colour (components can
// fall outside [0,1], which is fine for a debug visualisation).
func colourOf(p mgl32.Vec3) colour.RGB {
	return colour.RGB{R: p.X(), G: p.Y(), B: p.Z()}
}
