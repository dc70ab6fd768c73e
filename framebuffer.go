package swrast

import (
	"math"

	"github.com/nilsen/swrast/colour"
)

// Framebuffer owns the colour and depth buffers for one viewport size.
// Ported from renderer/src/framebuffer.rs.
type Framebuffer struct {
	width, height          int
	halfWidth, halfHeight  float32
	aspectRatio            float32
	depth                  []float32
	pixels                 []colour.RGB
}

// NewFramebuffer allocates a width x height framebuffer, depth
// pre-cleared to +Inf (nothing is closer than "nothing rendered yet").
func NewFramebuffer(width, height int) *Framebuffer {
	n := width * height
	depth := make([]float32, n)
	for i := range depth {
		depth[i] = float32(math.Inf(1))
	}

	return &Framebuffer{
		width:       width,
		height:      height,
		halfWidth:   float32(width) / 2.0,
		halfHeight:  float32(height) / 2.0,
		aspectRatio: float32(width) / float32(height),
		depth:       depth,
		pixels:      make([]colour.RGB, n),
	}
}

func (f *Framebuffer) Width() int            { return f.width }
func (f *Framebuffer) Height() int           { return f.height }
func (f *Framebuffer) HalfWidth() float32    { return f.halfWidth }
func (f *Framebuffer) HalfHeight() float32   { return f.halfHeight }
func (f *Framebuffer) AspectRatio() float32  { return f.aspectRatio }
func (f *Framebuffer) Depth() []float32      { return f.depth }
func (f *Framebuffer) Pixels() []colour.RGB  { return f.pixels }

// ClearDepthBuffer resets every depth sample to +Inf.
func (f *Framebuffer) ClearDepthBuffer() {
	inf := float32(math.Inf(1))
	for i := range f.depth {
		f.depth[i] = inf
	}
}

// ClearColourBuffer fills every pixel with c.
func (f *Framebuffer) ClearColourBuffer(c colour.RGB) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}
