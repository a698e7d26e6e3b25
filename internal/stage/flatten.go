package stage

import (
	"image"

	"github.com/anthonynsimon/bild/blend"

	"github.com/Nishu0/xicon-cli/internal/icon"
)

// FlattenStage composites the image over an opaque uniform background.
// The encoder emits plain RGB with no alpha channel, so translucent
// icons pass through here first. Fully opaque images are returned
// untouched.
type FlattenStage struct {
	Background icon.RGB
}

// Process replaces the canvas image with the alpha-composited result.
func (s *FlattenStage) Process(c *Canvas) error {
	if op, ok := c.Img.(interface{ Opaque() bool }); ok && op.Opaque() {
		return nil
	}

	bg := image.NewNRGBA(c.Img.Bounds())
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i] = s.Background.R
		bg.Pix[i+1] = s.Background.G
		bg.Pix[i+2] = s.Background.B
		bg.Pix[i+3] = 255
	}

	c.Img = blend.Normal(bg, c.Img)
	return nil
}
