package lineseg

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/nilsen/swrast/colour"
)

func TestRenderLine_HorizontalWithinBounds(t *testing.T) {
	const w, h = 8, 8
	buf := make([]colour.RGB, w*h)

	r := New(w, h)
	r.RenderLine(buf, mgl32.Vec2{1, 3}, mgl32.Vec2{5, 3}, colour.Red)

	for x := 1; x <= 5; x++ {
		if buf[3*w+x] != colour.Red {
			t.Fatalf("expected red at x=%d, y=3", x)
		}
	}
}

func TestRenderLine_ClippedOutsideDrawsNothing(t *testing.T) {
	const w, h = 8, 8
	buf := make([]colour.RGB, w*h)

	r := New(w, h)
	r.RenderLine(buf, mgl32.Vec2{100, 100}, mgl32.Vec2{200, 100}, colour.Red)

	for i, px := range buf {
		if px != (colour.RGB{}) {
			t.Fatalf("expected untouched buffer, pixel %d = %v", i, px)
		}
	}
}

func TestDrawHLine_FillsSpan(t *testing.T) {
	const w, h = 8, 8
	buf := make([]colour.RGB, w*h)

	r := New(w, h)
	r.DrawHLine(buf, 2, 4, 3, colour.Blue)

	for x := 2; x < 5; x++ {
		if buf[4*w+x] != colour.Blue {
			t.Fatalf("expected blue at x=%d", x)
		}
	}
}

func TestDrawVLine_FillsSpan(t *testing.T) {
	const w, h = 8, 8
	buf := make([]colour.RGB, w*h)

	r := New(w, h)
	r.DrawVLine(buf, 2, 1, 3, colour.Green)

	for y := 1; y < 4; y++ {
		if buf[y*w+2] != colour.Green {
			t.Fatalf("expected green at y=%d", y)
		}
	}
}
