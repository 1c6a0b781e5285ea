package batch

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
)

const DefaultVariance = 0.09

type Config struct {
	InputDir      string
	OutputDir     string
	ComparisonDir string
	Variance      float64
}

func (c Config) Validate() error {
	var errs []error
	if c.InputDir == "" {
		errs = append(errs, errors.New("input directory not set"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output directory not set"))
	}
	if c.ComparisonDir == "" {
		errs = append(errs, errors.New("comparison directory not set"))
	}
	if math.IsNaN(c.Variance) || math.IsInf(c.Variance, 0) || c.Variance < 0 {
		errs = append(errs, fmt.Errorf("variance must be a finite value >= 0, got %v", c.Variance))
	}
	if c.InputDir != "" {
		in := filepath.Clean(c.InputDir)
		if c.OutputDir != "" && filepath.Clean(c.OutputDir) == in {
			errs = append(errs, errors.New("output directory must differ from input directory"))
		}
		if c.ComparisonDir != "" && filepath.Clean(c.ComparisonDir) == in {
			errs = append(errs, errors.New("comparison directory must differ from input directory"))
		}
	}
	return errors.Join(errs...)
}
