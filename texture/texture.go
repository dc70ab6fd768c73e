// Package texture implements decoded-bitmap ingestion, mip chain generation
// and the unchecked nearest-neighbour sampler, ported from
// renderer/src/texture/{bitmap,texture,mipmap}.rs.
package texture

import (
	"math"

	"github.com/google/uuid"

	"github.com/nilsen/swrast/colour"
)

// MipLevels is the compile-time mip chain length (spec.md's MIP_LEVELS).
const MipLevels = 3

// DimPow2 enforces power-of-two texture dimensions when true, trading the
// flexibility of arbitrary sizes for a bitwise-AND texel wrap in Sample
// instead of a floor-based wrap (spec.md's DIM_POW_2). Early-init knob, not
// meant to change after any texture has been constructed.
var DimPow2 = false

// MipLevel describes one level of a texture's concatenated pixel buffer.
type MipLevel struct {
	Width, Height   int
	WidthF, HeightF float32
	Offset          int
}

// Bitmap is a single decoded image, the input to Texture construction.
type Bitmap struct {
	width, height int
	pixels        []colour.RGB
}

// NewBitmap builds a Bitmap from raw dimensions and a row-major pixel slice.
func NewBitmap(width, height int, pixels []colour.RGB) Bitmap {
	return Bitmap{width: width, height: height, pixels: pixels}
}

func (b Bitmap) Width() int            { return b.width }
func (b Bitmap) Height() int           { return b.height }
func (b Bitmap) Pixels() []colour.RGB  { return b.pixels }

// Texture is a named, mip-mapped image: every level's pixels are
// concatenated into one contiguous buffer, with Levels[i].Offset the start
// of level i.
type Texture struct {
	name   string
	Levels [MipLevels]MipLevel
	Pixels []colour.RGB
}

// Name implements asset.Named.
func (t *Texture) Name() string { return t.name }

// FromBitmap builds a Texture from a decoded bitmap, generating the mip
// chain. If name is empty a uuid-derived name is assigned, the same
// fallback the teacher's AssetServer uses for anonymously constructed
// assets (mod_assets.go's makeAssetId).
func FromBitmap(bitmap Bitmap, name string) *Texture {
	if name == "" {
		name = uuid.NewString()
	}
	if DimPow2 {
		if !isPowerOfTwo(bitmap.width) || !isPowerOfTwo(bitmap.height) {
			panic("texture: dimensions must be power of two when DimPow2 is enabled")
		}
	}

	levels := calculateMipLevels(bitmap)
	last := levels[MipLevels-1]
	bufferSize := last.Offset + last.Width*last.Height

	pixels := make([]colour.RGB, bufferSize)
	copy(pixels, bitmap.pixels)

	generateMipMaps(levels, pixels)

	return &Texture{name: name, Levels: levels, Pixels: pixels}
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

func calculateMipLevels(bitmap Bitmap) [MipLevels]MipLevel {
	var levels [MipLevels]MipLevel
	width, height, offset := bitmap.width, bitmap.height, 0
	for i := 0; i < MipLevels; i++ {
		levels[i] = MipLevel{
			Width: width, Height: height,
			WidthF: float32(width), HeightF: float32(height),
			Offset: offset,
		}
		offset += width * height
		width /= 2
		height /= 2
	}
	return levels
}

// Sample fetches the nearest texel at (u, v) from the given mip level
// without bounds checking. Inputs are a contract: u and v must be finite,
// and level must be < MipLevels. When DimPow2 is set, out-of-[0,1) inputs
// wrap via a bitwise AND on the integer texel index; otherwise u and v are
// reduced into [0,1) by subtracting their floor (repeat addressing either
// way).
func (t *Texture) Sample(u, v float32, level int) colour.RGB {
	lvl := &t.Levels[level]

	if !DimPow2 {
		u -= float32(math.Floor(float64(u)))
		v -= float32(math.Floor(float64(v)))
	}

	x := int(u * lvl.WidthF)
	y := int(v * lvl.HeightF)

	if DimPow2 {
		x &= lvl.Width - 1
		y &= lvl.Height - 1
	}

	return t.Pixels[lvl.Offset+y*lvl.Width+x]
}

// MipLevelForDepth maps a normalised depth (0 at NEAR, 1 at FAR), a bias
// and a scaling factor to a mip index, clamped to [0, MipLevels-1].
// Implemented per spec.md's
// Open Question (i): the rasterizer never calls this today, matching the
// original Rust source leaving the same call commented out in tile.rs.
func MipLevelForDepth(normalisedDepth, bias, factor float32) int {
	level := int((factor + bias) * normalisedDepth)
	if level > MipLevels-1 {
		return MipLevels - 1
	}
	if level < 0 {
		return 0
	}
	return level
}
