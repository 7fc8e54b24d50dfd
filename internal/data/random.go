package data

import "math/rand/v2"

// NewRand returns a generator seeded with seed.
//
// A negative seed draws a random one, so runs are not reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed < 0 {
		//nolint:gosec // User requested random seed
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	//nolint:gosec // Intentional deterministic seed for reproducibility
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
