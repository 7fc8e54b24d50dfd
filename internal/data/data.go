// Package data provides datasets of paired samples and batching over them.
//
// This package provides:
//   - Data: paired x/y sequences with a shuffled view
//   - Sampler: index batches covering a dataset once per pass
//   - DataLoader: x/y batches drawn through a Sampler
//   - LoadCSV and Linear: dataset sources
package data

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Common errors.
var (
	ErrLengthMismatch   = errors.New("x and y lengths differ")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidBatchSize = errors.New("batch size must be > 0")
)

// Data is an immutable pair of equal-length sequences.
//
// The underlying storage never changes. Shuffled returns copies reordered
// by an internal permutation, which is redrawn on each call when Shuffle
// is set.
type Data struct {
	// Shuffle controls whether Shuffled draws a new permutation.
	Shuffle bool

	x, y   []float64
	starts []int
	rng    *rand.Rand
}

// New creates a dataset from x and y, which are copied.
//
// A nil rng uses a randomly seeded generator.
func New(x, y []float64, shuffle bool, rng *rand.Rand) (*Data, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if rng == nil {
		rng = NewRand(-1)
	}

	starts := make([]int, len(y))
	for i := range starts {
		starts[i] = i
	}

	return &Data{
		Shuffle: shuffle,
		x:       append([]float64(nil), x...),
		y:       append([]float64(nil), y...),
		starts:  starts,
		rng:     rng,
	}, nil
}

// Len returns the number of samples.
func (d *Data) Len() int {
	return len(d.y)
}

// At returns the pair at index i.
func (d *Data) At(i int) (x, y float64, err error) {
	if i < 0 || i >= d.Len() {
		return 0, 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, d.Len())
	}
	return d.x[i], d.y[i], nil
}

// Shuffled returns x and y reordered by the current permutation.
//
// When Shuffle is set, a new uniformly random full permutation is drawn
// first. Otherwise the existing order is reused, which is the identity
// unless the dataset was shuffled earlier.
func (d *Data) Shuffled() (x, y []float64) {
	if d.Shuffle {
		d.rng.Shuffle(len(d.starts), func(i, j int) {
			d.starts[i], d.starts[j] = d.starts[j], d.starts[i]
		})
	}

	x = make([]float64, len(d.starts))
	y = make([]float64, len(d.starts))
	for i, s := range d.starts {
		x[i] = d.x[s]
		y[i] = d.y[s]
	}
	return x, y
}

// Slice gathers the samples at the given indices.
func (d *Data) Slice(indices []int) (x, y []float64, err error) {
	x = make([]float64, len(indices))
	y = make([]float64, len(indices))
	for i, idx := range indices {
		if x[i], y[i], err = d.At(idx); err != nil {
			return nil, nil, err
		}
	}
	return x, y, nil
}

// Permutation returns a copy of the current permutation.
func (d *Data) Permutation() []int {
	return append([]int(nil), d.starts...)
}

// X returns a copy of the inputs in storage order.
func (d *Data) X() []float64 {
	return append([]float64(nil), d.x...)
}

// Y returns a copy of the targets in storage order.
func (d *Data) Y() []float64 {
	return append([]float64(nil), d.y...)
}
