package imaging

import "image"

type PipelineStage interface {
	Process(c *Canonical) error
}

// Image converts the canonical buffer back into an 8-bit image.
func (c *Canonical) Image() (image.Image, error) {
	return FromCanonical(c)
}

func (c *Canonical) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(c); err != nil {
			return err
		}
	}
	return nil
}
