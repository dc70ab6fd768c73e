package tile

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/asset"
	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/geom"
	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/texture"
)

// noTextures satisfies Textures with no bindings. lookupTexture never
// calls Get for an untextured ProjectedTriangle (TextureID == nil), which
// is all these tests exercise.
type noTextures struct{}

func (noTextures) Get(asset.ID[*texture.Texture]) (*texture.Texture, bool) { return nil, false }

func solidTriangle(z float32, c colour.RGB) model.ProjectedTriangle {
	a := mgl32.Vec2{1, 1}
	b := mgl32.Vec2{6, 1}
	triC := mgl32.Vec2{1, 6}
	triangle := geom.Triangle2{A: a, B: b, C: triC}

	invZ := 1.0 / z
	return model.ProjectedTriangle{
		Vertices:       triangle,
		DepthInv:       mgl32.Vec3{invZ, invZ, invZ},
		ColDepth:       [3]colour.RGB{c.Scale(invZ), c.Scale(invZ), c.Scale(invZ)},
		TexCoordsDepth: [3]mgl32.Vec2{{}, {}, {}},
		TwoAreaInv:     1.0 / triangle.TwoAreaSigned(),
		SATEdges:       triangle.SATEdges(),
	}
}

func TestRender_DepthClearThenSolidTriangle(t *testing.T) {
	const w, h = 8, 8
	colourBuf := make([]colour.RGB, w*h)
	depth := make([]float32, w*h)
	for i := range depth {
		depth[i] = float32(math.Inf(1))
	}

	grid := NewGrid(8, 8)
	grid.UpdateViewport(w, h)

	tris := []model.ProjectedTriangle{solidTriangle(5, colour.Red)}
	grid.PlaceTriangles(tris)
	grid.Render(colourBuf, depth, w, noTextures{}, 0)

	// (2,2) is inside the triangle (1,1)-(6,1)-(1,6).
	idx := 2*w + 2
	if depth[idx] != 5 {
		t.Fatalf("expected depth 5 inside triangle, got %v", depth[idx])
	}
	if colourBuf[idx] != colour.Red {
		t.Fatalf("expected red inside triangle, got %v", colourBuf[idx])
	}

	// (7,7) is outside the triangle's AABB entirely.
	outIdx := 7*w + 7
	if !math.IsInf(float64(depth[outIdx]), 1) {
		t.Fatalf("expected untouched depth outside triangle, got %v", depth[outIdx])
	}
}

func TestRender_CloserTriangleWins(t *testing.T) {
	const w, h = 8, 8
	colourBuf := make([]colour.RGB, w*h)
	depth := make([]float32, w*h)
	for i := range depth {
		depth[i] = float32(math.Inf(1))
	}

	grid := NewGrid(8, 8)
	grid.UpdateViewport(w, h)

	far := solidTriangle(5, colour.Red)
	near := solidTriangle(4, colour.Blue)

	grid.PlaceTriangles([]model.ProjectedTriangle{far})
	grid.Render(colourBuf, depth, w, noTextures{}, 0)
	grid.Reset()
	grid.PlaceTriangles([]model.ProjectedTriangle{near})
	grid.Render(colourBuf, depth, w, noTextures{}, 0)

	idx := 2*w + 2
	if d := depth[idx] - 4; d < -1e-4 || d > 1e-4 {
		t.Fatalf("expected nearer triangle (z=4) to win, depth=%v", depth[idx])
	}
	if colourBuf[idx] != colour.Blue {
		t.Fatalf("expected nearer triangle's colour, got %v", colourBuf[idx])
	}
}
