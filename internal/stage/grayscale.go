package stage

import "github.com/anthonynsimon/bild/effect"

// GrayscaleStage desaturates the icon for the disabled toolbar state
// (browsers show the grayed variant on pages where the extension is
// inactive).
type GrayscaleStage struct{}

// Process converts the canvas image to grayscale, keeping alpha.
func (s *GrayscaleStage) Process(c *Canvas) error {
	c.Img = effect.Grayscale(c.Img)
	return nil
}
