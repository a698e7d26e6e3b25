// Package pngenc writes PNG files from scratch.  Chunk framing, the
// zlib container and both checksums come from this package and
// internal/checksum; image/png and compress/flate play no part in the
// output path (the tests use them as decode oracles).
//
// Output shape:
//   - 8-bit RGB truecolor (bit depth 8, color type 2), no alpha
//   - filter 0 on every scanline
//   - one IDAT chunk carrying a stored-deflate zlib stream
//   - deterministic: identical input → identical bytes
//
// Stored deflate costs 5 bytes per 64 KB block over the raw raster;
// the bytes are independent of compress/flate internals, so encoded
// output never shifts under a Go version bump.
package pngenc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// pngSignature is the 8-byte file magic every PNG starts with.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// HasSignature reports whether b starts with the PNG file magic.
func HasSignature(b []byte) bool {
	return len(b) >= 8 && bytes.Equal(b[:8], pngSignature)
}

// PixelFunc returns the colour at (x, y).  Coordinates are zero-based
// from the top-left corner; the encoder calls it exactly once per
// pixel, in scanline order.
type PixelFunc func(x, y int) (r, g, b uint8)

// ErrInvalidDimension reports a non-positive width or height.
var ErrInvalidDimension = errors.New("pngenc: width and height must be positive")

// Encode builds a complete PNG from a pixel generator: signature, IHDR,
// a single IDAT holding all scanlines, IEND.  It either returns the
// whole file or an error, never a partial buffer.
func Encode(width, height int, pix PixelFunc) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	ihdr, err := MakeChunk("IHDR", Header{
		Width:     uint32(width),
		Height:    uint32(height),
		BitDepth:  8,
		ColorType: colorTypeRGB,
	}.appendTo(nil))
	if err != nil {
		return nil, err
	}

	idat, err := MakeChunk("IDAT", DeflateStored(scanlines(width, height, pix)))
	if err != nil {
		return nil, err
	}

	iend, err := MakeChunk("IEND", nil)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(pngSignature)+len(ihdr)+len(idat)+len(iend))
	out = append(out, pngSignature...)
	out = append(out, ihdr...)
	out = append(out, idat...)
	out = append(out, iend...)
	return out, nil
}

// scanlines serializes the raster: each row is a filter byte (0, none)
// followed by width RGB triples.
func scanlines(width, height int, pix PixelFunc) []byte {
	rowLen := 1 + width*3
	raw := make([]byte, rowLen*height)
	for y := 0; y < height; y++ {
		off := y*rowLen + 1 // filter byte stays 0
		for x := 0; x < width; x++ {
			r, g, b := pix(x, y)
			raw[off] = r
			raw[off+1] = g
			raw[off+2] = b
			off += 3
		}
	}
	return raw
}

// ─── image adapter ───────────────────────────────────────────

// EncodeImage encodes any image.Image, with direct Pix access for the
// NRGBA and RGBA backing stores.  Alpha is discarded (the output is
// plain RGB), so translucent sources should be flattened onto a
// background first; internal/stage does this in the build pipeline.
func EncodeImage(img image.Image) ([]byte, error) {
	b := img.Bounds()
	return Encode(b.Dx(), b.Dy(), pixelSource(img))
}

// pixelSource adapts an image to a PixelFunc without per-pixel
// interface dispatch for the common backing stores.
func pixelSource(img image.Image) PixelFunc {
	b := img.Bounds()
	switch src := img.(type) {
	case *image.NRGBA:
		pix, stride := src.Pix, src.Stride
		base := (b.Min.Y-src.Rect.Min.Y)*stride + (b.Min.X-src.Rect.Min.X)*4
		return func(x, y int) (uint8, uint8, uint8) {
			off := base + y*stride + x*4
			return pix[off], pix[off+1], pix[off+2]
		}
	case *image.RGBA:
		pix, stride := src.Pix, src.Stride
		base := (b.Min.Y-src.Rect.Min.Y)*stride + (b.Min.X-src.Rect.Min.X)*4
		return func(x, y int) (uint8, uint8, uint8) {
			off := base + y*stride + x*4
			r, g, bl, a := pix[off], pix[off+1], pix[off+2], pix[off+3]
			switch a {
			case 255:
				return r, g, bl
			case 0:
				return 0, 0, 0
			}
			// un-premultiply
			return uint8(uint32(r) * 255 / uint32(a)),
				uint8(uint32(g) * 255 / uint32(a)),
				uint8(uint32(bl) * 255 / uint32(a))
		}
	default:
		minX, minY := b.Min.X, b.Min.Y
		return func(x, y int) (uint8, uint8, uint8) {
			c := color.NRGBAModel.Convert(img.At(minX+x, minY+y)).(color.NRGBA)
			return c.R, c.G, c.B
		}
	}
}
