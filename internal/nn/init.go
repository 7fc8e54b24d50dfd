package nn

import "math/rand/v2"

// Randn draws a value from the standard normal distribution N(0, 1).
//
// With a nil rng the process-wide generator is used, which is seeded
// randomly: repeated runs are not reproducible.
func Randn(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.NormFloat64() //nolint:gosec // Weight initialization is not security-critical
	}
	return rng.NormFloat64()
}
