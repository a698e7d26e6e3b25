//go:build ignore

// gen_fixtures creates sample logo images for the E2E smoke test of
// `xicon build --from`.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	// Glyph on transparent background (exercises flattening).
	writeImage(filepath.Join(dir, "logo-alpha.png"), glyph(256, 256))

	// Opaque photo-style logo (exercises jpeg decoding).
	writeJPEG(filepath.Join(dir, "logo-opaque.jpg"), gradient(256, 256))

	// Non-square mark (exercises aspect-preserving fit).
	writeImage(filepath.Join(dir, "logo-wide.png"), gradient(320, 120))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 3 fixtures in %s\n", dir)
}

// glyph draws a crude X mark with soft alpha edges.
func glyph(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	thick := w / 8
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d1 := x - y
			if d1 < 0 {
				d1 = -d1
			}
			d2 := x + y - (w - 1)
			if d2 < 0 {
				d2 = -d2
			}
			var a uint8
			if d1 < thick || d2 < thick {
				a = 255
			} else if d1 < thick+4 || d2 < thick+4 {
				a = 120
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 29, G: 155, B: 240, A: a})
		}
	}
	return img
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func writeImage(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		panic(err)
	}
}
