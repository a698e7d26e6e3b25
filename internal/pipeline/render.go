package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Nishu0/xicon-cli/internal/hasher"
	"github.com/Nishu0/xicon-cli/internal/icon"
	"github.com/Nishu0/xicon-cli/internal/manifest"
	"github.com/Nishu0/xicon-cli/internal/pngenc"
	"github.com/Nishu0/xicon-cli/internal/stage"
)

// renderResult holds the result of rendering a single icon.
type renderResult struct {
	icon manifest.Icon
	err  error
}

// IconFileName returns the output file name for a size/variant pair.
func IconFileName(size int, variant string) string {
	if variant == "normal" || variant == "" {
		return fmt.Sprintf("icon-%d.png", size)
	}
	return fmt.Sprintf("icon-%d-%s.png", size, variant)
}

// renderIcon handles a single icon: render or fit, flatten, encode, write.
func (p *Pipeline) renderIcon(job iconJob, src image.Image) renderResult {
	name := IconFileName(job.Size, job.Variant)
	fail := func(err error) renderResult {
		return renderResult{err: fmt.Errorf("%s: %w", name, err)}
	}

	// Base raster: fitted logo or procedural artwork.
	var base image.Image
	if src != nil {
		base = p.placeSource(job.Size, src)
	} else {
		base = icon.Render(job.Size, p.generator(job.Size))
	}

	// Post stages. Flatten always runs so the output never carries
	// alpha; grayscale marks the disabled toolbar state.
	stages := []stage.Stage{&stage.FlattenStage{Background: p.cfg.Background}}
	if job.Variant == "disabled" {
		stages = append(stages, &stage.GrayscaleStage{})
	}
	c := &stage.Canvas{Img: base}
	if err := c.Apply(stages...); err != nil {
		return fail(err)
	}

	data, err := pngenc.EncodeImage(c.Img)
	if err != nil {
		return fail(err)
	}

	outPath := filepath.Join(p.cfg.OutDir, name)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fail(err)
	}

	return renderResult{icon: manifest.Icon{
		Variant:  job.Variant,
		Size:     job.Size,
		Path:     name,
		Bytes:    int64(len(data)),
		Hash:     hasher.ContentHash(data),
		AvgColor: avgColor(c.Img),
	}}
}

// generator picks the procedural artwork for one size.
func (p *Pipeline) generator(size int) pngenc.PixelFunc {
	if p.cfg.Style == "ring" {
		return icon.Ring(size, p.cfg.Color, p.cfg.Background)
	}
	return icon.Solid(p.cfg.Color)
}

// placeSource fits the logo into the profile's padded content box,
// centered on a transparent size x size canvas. The flatten stage
// later composites it onto the background colour.
func (p *Pipeline) placeSource(size int, src image.Image) image.Image {
	pad := int(math.Round(float64(size) * p.cfg.Profile.Padding))
	content := size - 2*pad
	if content < 1 {
		content = 1
	}

	fitted := imaging.Fit(src, content, content, imaging.Lanczos)
	canvas := imaging.New(size, size, color.NRGBA{})
	return imaging.PasteCenter(canvas, fitted)
}

// avgColor calculates the average RGB color of an icon.
func avgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	count := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if count == 0 {
		return [3]uint8{}
	}
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}
