package swrast

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/model"
	"github.com/nilsen/swrast/shapes"
	"github.com/nilsen/swrast/texture"
)

// newTestRenderer builds a Renderer whose internal framebuffer is exactly
// 100x100 (host 200x200 scaled by RES_SCALE), with a 90 degree horizontal
// FOV so focal_width == half_width and the projection math in these tests
// stays simple.
func newTestRenderer() *Renderer {
	return New(200, 200, Config{HorizontalFOVDegrees: 90})
}

func TestRender_EmptySceneIsClearColour(t *testing.T) {
	r := newTestRenderer()
	r.Render()

	want := colour.Hex(0x0a96ed)
	for i, px := range r.Pixels() {
		if px != want {
			t.Fatalf("pixel %d = %v, want clear colour %v", i, px, want)
		}
	}
	for i, d := range r.state.Framebuffer.Depth() {
		if !math.IsInf(float64(d), 1) {
			t.Fatalf("depth %d = %v, want +Inf", i, d)
		}
	}
}

func ccwTriangleMesh() *model.Mesh {
	vertices := []model.Vertex{
		{Position: mgl32.Vec3{0, 0, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
		{Position: mgl32.Vec3{1, 0, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
		{Position: mgl32.Vec3{0, 1, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
	}
	return model.NewMesh("ccw-triangle", vertices, []uint32{0, 1, 2}, nil)
}

func cwTriangleMesh() *model.Mesh {
	vertices := []model.Vertex{
		{Position: mgl32.Vec3{0, 0, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
		{Position: mgl32.Vec3{0, 1, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
		{Position: mgl32.Vec3{1, 0, 5}, Colour: colour.Red, TexCoord: mgl32.Vec2{}},
	}
	return model.NewMesh("cw-triangle", vertices, []uint32{0, 1, 2}, nil)
}

func TestRender_CCWTriangleRastersAtExpectedDepth(t *testing.T) {
	r := newTestRenderer()

	meshID := r.assets.InsertMesh(ccwTriangleMesh())
	if _, err := r.assets.SpawnMeshInstance(meshID, mgl32.Ident4()); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}

	r.Render()

	// Screen projection with focal_w == half_w == 50 and z=5 maps the
	// triangle (0,0,5)-(1,0,5)-(0,1,5) to screen (50,50)-(60,50)-(50,40);
	// (53,47) lies well inside it.
	w := r.InternalWidth()
	idx := 47*w + 53
	depth := r.state.Framebuffer.Depth()[idx]
	if !approxEqual(depth, 5, 1e-3) {
		t.Fatalf("expected depth ~5 inside triangle, got %v", depth)
	}
	if r.Pixels()[idx] == colour.Hex(0x0a96ed) {
		t.Fatalf("expected triangle colour, got untouched clear colour")
	}
}

func TestRender_CWTriangleIsBackFaceCulled(t *testing.T) {
	r := newTestRenderer()

	meshID := r.assets.InsertMesh(cwTriangleMesh())
	if _, err := r.assets.SpawnMeshInstance(meshID, mgl32.Ident4()); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}

	r.Render()

	want := colour.Hex(0x0a96ed)
	for i, px := range r.Pixels() {
		if px != want {
			t.Fatalf("expected CW triangle fully culled, pixel %d = %v", i, px)
		}
	}
}

func TestRender_NearerQuadWinsDepthTest(t *testing.T) {
	r := newTestRenderer()

	meshID := r.assets.InsertMesh(shapes.UnitQuadMesh())

	farTransform := mgl32.Translate3D(0, 0, 5)
	nearTransform := mgl32.Translate3D(0, 0, 4)

	if _, err := r.assets.SpawnMeshInstance(meshID, farTransform); err != nil {
		t.Fatalf("SpawnMeshInstance (far): %v", err)
	}
	if _, err := r.assets.SpawnMeshInstance(meshID, nearTransform); err != nil {
		t.Fatalf("SpawnMeshInstance (near): %v", err)
	}

	r.Render()

	w := r.InternalWidth()
	centre := (r.InternalHeight()/2)*w + w/2
	if got := r.state.Framebuffer.Depth()[centre]; !approxEqual(got, 4, 1e-3) {
		t.Fatalf("expected nearer quad (z=4) to win at centre, depth=%v", got)
	}
}

func TestRender_TexturedQuadShowsCheckerPattern(t *testing.T) {
	r := newTestRenderer()

	texID := r.assets.InsertTexture(texture.FromBitmap(checkerBitmap(4, 4), "checker"))
	quad := shapes.UnitQuadMesh()
	quad.TextureID = &texID
	meshID := r.assets.InsertMesh(quad)

	const z, scale = float32(5), float32(4.75)
	transform := mgl32.Translate3D(0, 0, z).Mul4(mgl32.Scale3D(scale, scale, 1))
	if _, err := r.assets.SpawnMeshInstance(meshID, transform); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}

	r.Render()

	w := r.InternalWidth()
	seen := map[colour.RGB]bool{}
	for y := 10; y < w-10; y += 5 {
		for x := 10; x < w-10; x += 5 {
			idx := y*w + x
			depth := r.state.Framebuffer.Depth()[idx]
			if !approxEqual(depth, z, 1e-3) {
				t.Fatalf("expected depth %v inside quad at (%d,%d), got %v", z, x, y, depth)
			}
			seen[r.Pixels()[idx]] = true
		}
	}

	if !seen[colour.White] || !seen[colour.Black] {
		t.Fatalf("expected both checkerboard colours present, got %v", seen)
	}
}

func TestRender_InstanceBehindCameraIsCulled(t *testing.T) {
	r := newTestRenderer()

	meshID := r.assets.InsertMesh(shapes.UnitCubeMesh())
	transform := mgl32.Translate3D(0, 0, -10)
	if _, err := r.assets.SpawnMeshInstance(meshID, transform); err != nil {
		t.Fatalf("SpawnMeshInstance: %v", err)
	}

	r.Render()

	want := colour.Hex(0x0a96ed)
	for i, px := range r.Pixels() {
		if px != want {
			t.Fatalf("expected behind-camera instance fully culled, pixel %d = %v", i, px)
		}
	}
	if len(r.projected) != 0 {
		t.Fatalf("expected zero projected triangles, got %d", len(r.projected))
	}
}

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func checkerBitmap(w, h int) texture.Bitmap {
	pixels := make([]colour.RGB, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				pixels[y*w+x] = colour.White
			} else {
				pixels[y*w+x] = colour.Black
			}
		}
	}
	return texture.NewBitmap(w, h, pixels)
}
