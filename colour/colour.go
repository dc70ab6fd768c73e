// Package colour implements the packed float colour types used by the
// framebuffer and texture sampler: RGB for opaque storage, RGBA for decoded
// bitmaps prior to being folded into a texture's mip chain.
package colour

import "github.com/go-gl/mathgl/mgl32"

// RGB is a linear, unclamped float colour triple. It is the framebuffer's
// and texture's storage element.
type RGB struct {
	R, G, B float32
}

var (
	Black   = RGB{0, 0, 0}
	White   = RGB{1, 1, 1}
	Red     = RGB{1, 0, 0}
	Green   = RGB{0, 1, 0}
	Blue    = RGB{0, 0, 1}
	Cyan    = RGB{0, 1, 1}
	Magenta = RGB{1, 0, 1}
	Yellow  = RGB{1, 1, 0}
)

// New builds an RGB triple from linear float components.
func New(r, g, b float32) RGB { return RGB{r, g, b} }

// FromU8 converts 8-bit sRGB-range bytes into the [0,1] float range used
// throughout the renderer.
func FromU8(r, g, b uint8) RGB {
	return RGB{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0}
}

// Hex decodes a 0xRRGGBB literal, the same format the renderer's default
// clear colour is specified with.
func Hex(hex uint32) RGB {
	return RGB{
		R: float32((hex>>16)&0xFF) / 255.0,
		G: float32((hex>>8)&0xFF) / 255.0,
		B: float32(hex&0xFF) / 255.0,
	}
}

// Blend returns c weighted by alpha plus other weighted by 1-alpha
// (alpha=1 -> c, alpha=0 -> other).
func (c RGB) Blend(other RGB, alpha float32) RGB {
	inv := 1.0 - alpha
	return RGB{
		R: c.R*alpha + other.R*inv,
		G: c.G*alpha + other.G*inv,
		B: c.B*alpha + other.B*inv,
	}
}

// Lerp interpolates from c to other by t (t=0 -> c, t=1 -> other), used by
// near-plane clipping to interpolate a vertex colour at the clip point.
func (c RGB) Lerp(other RGB, t float32) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Add and Scale make RGB usable as a perspective-correct interpolation
// accumulator (colour/z terms summed and rescaled per pixel).
func (c RGB) Add(other RGB) RGB {
	return RGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

func (c RGB) Scale(f float32) RGB {
	return RGB{c.R * f, c.G * f, c.B * f}
}

// Vec3 exposes the colour as an mgl32.Vec3 so it can be interpolated with
// the same dot/scale helpers used for positions.
func (c RGB) Vec3() mgl32.Vec3 { return mgl32.Vec3{c.R, c.G, c.B} }

// FromVec3 is the inverse of Vec3.
func FromVec3(v mgl32.Vec3) RGB { return RGB{v[0], v[1], v[2]} }

// RGBA is the decoded-bitmap colour type; textures fold it down to RGB once
// loaded (the renderer never blends, so alpha does not survive ingestion).
type RGBA struct {
	R, G, B, A float32
}

// RGBAFromU8 converts 8-bit RGBA bytes into floats.
func RGBAFromU8(r, g, b, a uint8) RGBA {
	return RGBA{float32(r) / 255.0, float32(g) / 255.0, float32(b) / 255.0, float32(a) / 255.0}
}

// RGB drops the alpha channel.
func (c RGBA) RGB() RGB { return RGB{c.R, c.G, c.B} }
