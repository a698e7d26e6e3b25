// Package icon renders the procedural artwork the extension ships:
// solid action-button squares and the reading-progress ring. All
// geometry is integer-only, so a given size and colour produce the
// same bytes on every platform.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/Nishu0/xicon-cli/internal/pngenc"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the product's brand blue.
var DefaultColor = RGB{R: 29, G: 155, B: 240}

// DefaultBackground is the flatten target for translucent sources.
var DefaultBackground = RGB{R: 255, G: 255, B: 255}

// ParseColor accepts "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("icon: colour %q: want RRGGBB hex", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("icon: colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the stdlib colour type at full opacity.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Solid returns a generator that paints every pixel the same colour.
func Solid(c RGB) pngenc.PixelFunc {
	return func(x, y int) (uint8, uint8, uint8) {
		return c.R, c.G, c.B
	}
}

// Ring returns a generator drawing the progress-ring glyph: an annulus
// in fg over a bg field. Distances are kept in doubled units so the
// half-pixel centre stays integral: a pixel centre is (2x+1, 2y+1) on
// a canvas spanning 0..2*size.
func Ring(size int, fg, bg RGB) pngenc.PixelFunc {
	rOut := size - 2    // outer radius, 1px margin
	rIn := rOut * 3 / 5 // ring is 40% of the outer radius thick
	out2 := rOut * rOut
	in2 := rIn * rIn
	return func(x, y int) (uint8, uint8, uint8) {
		dx := 2*x + 1 - size
		dy := 2*y + 1 - size
		d2 := dx*dx + dy*dy
		if d2 <= out2 && d2 >= in2 {
			return fg.R, fg.G, fg.B
		}
		return bg.R, bg.G, bg.B
	}
}

// Render materializes a generator into an NRGBA image so the stage
// pipeline can post-process it. Every pixel is written fully opaque.
func Render(size int, gen pngenc.PixelFunc) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		off := y * img.Stride
		for x := 0; x < size; x++ {
			r, g, b := gen(x, y)
			img.Pix[off] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 255
			off += 4
		}
	}
	return img
}
