package texture

import "github.com/nilsen/swrast/colour"

// generateMipMaps fills buffer's levels 1..MipLevels-1 from level 0, which
// must already be populated. Ported from mipmap.rs's generate_mip_maps.
func generateMipMaps(levels [MipLevels]MipLevel, buffer []colour.RGB) {
	for i := 1; i < MipLevels; i++ {
		srcWidth := levels[i-1].Width
		srcHeight := levels[i-1].Height
		readOffset := levels[i-1].Offset
		writeOffset := levels[i].Offset

		src := buffer[readOffset : readOffset+srcWidth*srcHeight]
		dst := buffer[writeOffset:]

		downscale3x3BoxFilter(src, srcWidth, srcHeight, dst)
	}
}

// sampleWrap fetches a texel with toroidal (repeat) wrap at the source
// edges — deliberate, not clamp, matching repeat texture addressing.
func sampleWrap(src []colour.RGB, width, height, x, y int) colour.RGB {
	x = euclidMod(x, width)
	y = euclidMod(y, height)
	return src[y*width+x]
}

func euclidMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// downscale3x3BoxFilter halves both dimensions of src, each destination
// texel being the average of the corresponding 3x3 neighbourhood in src
// (wrapped at the edges). The divisor is fixed at 9.
func downscale3x3BoxFilter(src []colour.RGB, srcWidth, srcHeight int, dst []colour.RGB) {
	dstWidth := srcWidth / 2
	dstHeight := srcHeight / 2

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx := dx * 2
			sy := dy * 2

			var r, g, b float32
			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					s := sampleWrap(src, srcWidth, srcHeight, sx+ox, sy+oy)
					r += s.R
					g += s.G
					b += s.B
				}
			}

			dst[dy*dstWidth+dx] = colour.RGB{R: r / 9, G: g / 9, B: b / 9}
		}
	}
}
