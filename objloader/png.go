package objloader

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/nilsen/swrast/colour"
	"github.com/nilsen/swrast/texture"
)

// loadPNG decodes the PNG file at path into a texture.Bitmap. stdlib's
// image/png is the idiomatic choice here: no PNG decoder exists anywhere
// in the example pack, and this is a one-shot decode boundary, not a
// performance-sensitive hot path.
func loadPNG(path string) (texture.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return texture.Bitmap{}, fmt.Errorf("objloader: open texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return texture.Bitmap{}, fmt.Errorf("objloader: decode png %s: %w", path, err)
	}

	return bitmapFromImage(img), nil
}

func bitmapFromImage(img image.Image) texture.Bitmap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]colour.RGB, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = colour.RGB{
				R: float32(r) / 65535.0,
				G: float32(g) / 65535.0,
				B: float32(b) / 65535.0,
			}
		}
	}

	return texture.NewBitmap(width, height, pixels)
}
