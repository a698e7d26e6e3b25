package stage

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/Nishu0/xicon-cli/internal/icon"
)

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8, uint8) {
	r, g, b, a := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestFlattenStage_OpaquePassthrough(t *testing.T) {
	img := solidNRGBA(8, 8, color.NRGBA{29, 155, 240, 255})
	c := &Canvas{Img: img}
	if err := c.Apply(&FlattenStage{Background: icon.DefaultBackground}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if c.Img != image.Image(img) {
		t.Error("opaque image should pass through unchanged")
	}
}

func TestFlattenStage_FullyTransparent(t *testing.T) {
	img := solidNRGBA(8, 8, color.NRGBA{200, 10, 10, 0})
	c := &Canvas{Img: img}
	bg := icon.RGB{R: 1, G: 2, B: 3}
	if err := c.Apply(&FlattenStage{Background: bg}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	r, g, b, a := rgbAt(c.Img, 4, 4)
	if r != 1 || g != 2 || b != 3 {
		t.Errorf("transparent pixel flattened to (%d,%d,%d), want background (1,2,3)", r, g, b)
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestFlattenStage_HalfAlpha(t *testing.T) {
	// 50%-alpha red over white: green and blue pick up half the
	// background, red stays dominant.
	img := solidNRGBA(4, 4, color.NRGBA{255, 0, 0, 128})
	c := &Canvas{Img: img}
	if err := c.Apply(&FlattenStage{Background: icon.RGB{255, 255, 255}}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	r, g, b, a := rgbAt(c.Img, 1, 1)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255", a)
	}
	if absDiff(g, 127) > 2 || absDiff(b, 127) > 2 {
		t.Errorf("blended pixel = (%d,%d,%d), want green/blue ≈127", r, g, b)
	}
	if int(r) < int(g)+30 {
		t.Errorf("blended pixel = (%d,%d,%d), want red well above green", r, g, b)
	}
}

func TestGrayscaleStage(t *testing.T) {
	img := solidNRGBA(8, 8, color.NRGBA{29, 155, 240, 255})
	c := &Canvas{Img: img}
	if err := c.Apply(&GrayscaleStage{}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	r, g, b, a := rgbAt(c.Img, 3, 3)
	if r != g || g != b {
		t.Errorf("grayscale pixel has distinct channels: (%d,%d,%d)", r, g, b)
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	// Luminance of the brand blue sits in the midtones.
	if r < 60 || r > 200 {
		t.Errorf("luminance %d outside plausible range", r)
	}
}

func TestGrayscaleStage_Extremes(t *testing.T) {
	white := &Canvas{Img: solidNRGBA(4, 4, color.NRGBA{255, 255, 255, 255})}
	if err := white.Apply(&GrayscaleStage{}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if r, _, _, _ := rgbAt(white.Img, 0, 0); r < 250 {
		t.Errorf("white desaturated to %d", r)
	}

	black := &Canvas{Img: solidNRGBA(4, 4, color.NRGBA{0, 0, 0, 255})}
	if err := black.Apply(&GrayscaleStage{}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if r, _, _, _ := rgbAt(black.Img, 0, 0); r > 5 {
		t.Errorf("black desaturated to %d", r)
	}
}

func TestApply_Order(t *testing.T) {
	// Flatten then grayscale: a translucent colour ends up opaque gray.
	img := solidNRGBA(8, 8, color.NRGBA{29, 155, 240, 100})
	c := &Canvas{Img: img}
	err := c.Apply(
		&FlattenStage{Background: icon.DefaultBackground},
		&GrayscaleStage{},
	)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	r, g, b, a := rgbAt(c.Img, 4, 4)
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
	if r != g || g != b {
		t.Errorf("pixel not gray: (%d,%d,%d)", r, g, b)
	}
}

type failStage struct{ err error }

func (s *failStage) Process(*Canvas) error { return s.err }

func TestApply_StopsOnError(t *testing.T) {
	sentinel := errors.New("boom")
	img := solidNRGBA(2, 2, color.NRGBA{1, 2, 3, 255})
	c := &Canvas{Img: img}
	err := c.Apply(&failStage{err: sentinel}, &GrayscaleStage{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if c.Img != image.Image(img) {
		t.Error("canvas mutated after failing stage")
	}
}
