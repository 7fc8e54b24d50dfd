package data

import (
	"fmt"
	"math/rand/v2"
)

// LinearConfig describes a synthetic y = slope*x + noise dataset.
type LinearConfig struct {
	Samples int     // Number of samples
	Slope   float64 // True slope
	Noise   float64 // Standard deviation of additive Gaussian noise (0 = noiseless)
	Shuffle bool    // Shuffle flag of the resulting dataset
}

// Linear generates x ~ N(0, 1) and y = slope*x + N(0, noise²).
//
// The same rng drives generation and later shuffling.
func Linear(config LinearConfig, rng *rand.Rand) (*Data, error) {
	if config.Samples <= 0 {
		return nil, fmt.Errorf("linear dataset: samples must be > 0 (got %d)", config.Samples)
	}
	if rng == nil {
		rng = NewRand(-1)
	}

	x := make([]float64, config.Samples)
	y := make([]float64, config.Samples)
	for i := range x {
		x[i] = rng.NormFloat64()
		y[i] = config.Slope * x[i]
		if config.Noise > 0 {
			y[i] += config.Noise * rng.NormFloat64()
		}
	}

	return New(x, y, config.Shuffle, rng)
}
