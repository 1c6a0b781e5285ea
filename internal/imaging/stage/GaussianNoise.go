package stage

import (
	"fmt"

	"github.com/rm-hull/noisy-dataset/internal/imaging"
)

type GaussianNoiseStage struct {
	Variance float64
	Rand     imaging.NormSource
}

// Process adds Gaussian noise with the configured Variance to the colour channels only.
// The alpha channel, if any, is left as it is
func (s *GaussianNoiseStage) Process(c *imaging.Canonical) error {
	n := c.Bounds.Dx() * c.Bounds.Dy()
	if len(c.Color) != n*imaging.Channels {
		return fmt.Errorf("%w: %d colour values for %v", imaging.ErrShape, len(c.Color), c.Bounds)
	}
	c.Color = imaging.Inject(c.Color, s.Variance, s.Rand)
	return nil
}
