// Package lineseg implements the debug wireframe line rasterizer: plain
// Bresenham-style segment drawing plus fast horizontal/vertical spans for
// tile-grid overlays. Ported from renderer/src/line.rs.
package lineseg

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/geom"
	"github.com/nilsen/swrast/model"
)

// Renderer draws line segments directly into a colour buffer; it holds no
// state of its own beyond the viewport size needed to clip against.
type Renderer struct {
	width, height int
}

// New builds a Renderer for a width x height framebuffer.
func New(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// UpdateViewport resizes the bounds lines are clipped against.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
}

// RenderTriangles draws the wireframe outline of every triangle in
// triangles into colourBuf, in the given colour.
func (r *Renderer) RenderTriangles(colourBuf []colour.RGB, triangles []model.ProjectedTriangle, c colour.RGB) {
	for i := range triangles {
		r.renderTriangle(colourBuf, &triangles[i], c)
	}
}

func (r *Renderer) renderTriangle(colourBuf []colour.RGB, tri *model.ProjectedTriangle, c colour.RGB) {
	verts := tri.Vertices
	r.RenderLine(colourBuf, verts.A, verts.B, c)
	r.RenderLine(colourBuf, verts.B, verts.C, c)
	r.RenderLine(colourBuf, verts.C, verts.A, c)
}

// RenderLine draws the segment a->b, clipped to the viewport.
func (r *Renderer) RenderLine(colourBuf []colour.RGB, a, b mgl32.Vec2, c colour.RGB) {
	bounds := geom.AABB2{
		Min: mgl32.Vec2{0, 0},
		Max: mgl32.Vec2{float32(r.width), float32(r.height)},
	}

	clipped, ok := geom.NewSegment(a, b).ClipToBounds(bounds)
	if !ok {
		return
	}

	r.renderLineUnchecked(colourBuf, clipped.A, clipped.B, c)
}

// renderLineUnchecked walks a..b in unit steps along its dominant axis,
// plotting the nearest pixel each step. RenderLine's clip keeps a and b
// within [0,width] x [0,height]; plot skips any step that rounds to a
// pixel outside the framebuffer.
func (r *Renderer) renderLineUnchecked(colourBuf []colour.RGB, a, b mgl32.Vec2, c colour.RGB) {
	delta := b.Sub(a)
	steps := int(max32(absf(delta[0]), absf(delta[1])))
	if steps == 0 {
		r.plot(colourBuf, a, c)
		return
	}

	step := delta.Mul(1.0 / float32(steps))
	current := a

	for i := 0; i <= steps; i++ {
		r.plot(colourBuf, current, c)
		current = current.Add(step)
	}
}

func (r *Renderer) plot(colourBuf []colour.RGB, p mgl32.Vec2, c colour.RGB) {
	x := roundToInt(p[0])
	y := roundToInt(p[1])
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	colourBuf[y*r.width+x] = c
}

// DrawHLine draws length pixels of colour c starting at (x, y), rightward.
// x, y, x+length must be in bounds — a construction-time contract, not
// checked here (mirrors the original's debug_assert-only checks).
func (r *Renderer) DrawHLine(colourBuf []colour.RGB, x, y, length int, c colour.RGB) {
	start := y*r.width + x
	for i := 0; i < length; i++ {
		colourBuf[start+i] = c
	}
}

// DrawVLine draws length pixels of colour c starting at (x, y), downward.
func (r *Renderer) DrawVLine(colourBuf []colour.RGB, x, y, length int, c colour.RGB) {
	start := y*r.width + x
	for i := 0; i < length; i++ {
		colourBuf[start+i*r.width] = c
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func roundToInt(f float32) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
