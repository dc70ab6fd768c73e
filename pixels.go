package swrast

import (
	"unsafe"

	"github.com/nilsen/swrast/colour"
)

// colourSliceAsBytes reinterprets pixels as a flat byte slice without
// copying, mirroring renderer.rs's pixels_bytes (a raw pointer cast over
// the same backing store). Safe here because colour.RGB is a plain value
// type of 3 float32s with no pointers or padding a host could observe
// incorrectly.
func colourSliceAsBytes(pixels []colour.RGB) []byte {
	if len(pixels) == 0 {
		return nil
	}
	const bytesPerPixel = int(unsafe.Sizeof(colour.RGB{}))
	return unsafe.Slice((*byte)(unsafe.Pointer(&pixels[0])), len(pixels)*bytesPerPixel)
}
