package imaging

import "math"

// NormSource yields standard normal samples (mean 0, standard deviation 1).
// *rand.Rand from math/rand/v2 satisfies it.
type NormSource interface {
	NormFloat64() float64
}

// Inject adds zero-mean Gaussian noise with the given variance to every
// element and hard-clamps the result to [0, 1]. Values pushed out of range
// lose their noise contribution; nothing is rescaled. The input is not modified.
func Inject(values []float64, variance float64, rng NormSource) []float64 {
	out := make([]float64, len(values))
	if variance <= 0 || math.IsNaN(variance) {
		for i, v := range values {
			out[i] = clamp01(v)
		}
		return out
	}

	sd := math.Sqrt(variance)
	for i, v := range values {
		out[i] = clamp01(v + sd*rng.NormFloat64())
	}
	return out
}
