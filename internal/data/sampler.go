package data

import (
	"fmt"
	"iter"
	"math/rand/v2"
)

// SamplerConfig configures a Sampler.
type SamplerConfig struct {
	BatchSize int        // Indices per batch; the last batch may be shorter
	Shuffle   bool       // Redraw the permutation at the start of each pass
	Rand      *rand.Rand // Source for shuffling (nil = randomly seeded)
}

// Sampler cuts [0, n) into batches of indices.
//
// Each pass visits every index exactly once. Passes are lazy and
// restartable: ranging over Batches again starts a new pass.
type Sampler struct {
	n         int
	batchSize int
	shuffle   bool
	rng       *rand.Rand
}

// NewSampler creates a sampler over n indices.
func NewSampler(n int, config SamplerConfig) (*Sampler, error) {
	if config.BatchSize <= 0 {
		return nil, fmt.Errorf("sampler: %w (got %d)", ErrInvalidBatchSize, config.BatchSize)
	}
	if n < 0 {
		return nil, fmt.Errorf("sampler: negative length %d", n)
	}
	if config.Shuffle && config.Rand == nil {
		config.Rand = NewRand(-1)
	}

	return &Sampler{
		n:         n,
		batchSize: config.BatchSize,
		shuffle:   config.Shuffle,
		rng:       config.Rand,
	}, nil
}

// Len returns the number of indices covered per pass.
func (s *Sampler) Len() int {
	return s.n
}

// BatchSize returns the configured batch size.
func (s *Sampler) BatchSize() int {
	return s.batchSize
}

// NumBatches returns the number of batches per pass.
func (s *Sampler) NumBatches() int {
	return (s.n + s.batchSize - 1) / s.batchSize
}

// Batches returns one pass over the index batches.
func (s *Sampler) Batches() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var order []int
		if s.shuffle {
			order = s.rng.Perm(s.n)
		} else {
			order = make([]int, s.n)
			for i := range order {
				order[i] = i
			}
		}

		for start := 0; start < s.n; start += s.batchSize {
			end := min(start+s.batchSize, s.n)
			batch := append([]int(nil), order[start:end]...)
			if !yield(batch) {
				return
			}
		}
	}
}
