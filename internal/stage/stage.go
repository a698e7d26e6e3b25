// Package stage post-processes rendered icons before they reach the
// encoder. Each stage transforms the image carried by a Canvas;
// Apply threads the canvas through a stage list in order.
package stage

import "image"

// Canvas carries an icon through the stage pipeline.
type Canvas struct {
	Img image.Image
}

// Stage is one image transform.
type Stage interface {
	Process(c *Canvas) error
}

// Apply runs the stages left to right, stopping at the first error.
func (c *Canvas) Apply(stages ...Stage) error {
	for _, s := range stages {
		if err := s.Process(c); err != nil {
			return err
		}
	}
	return nil
}
