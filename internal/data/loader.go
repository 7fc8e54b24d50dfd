package data

import (
	"fmt"
	"iter"
)

// Batch is one slice of a dataset produced by a DataLoader.
type Batch struct {
	Index   int       // Position of the batch within its pass
	Indices []int     // Dataset indices of the samples
	X, Y    []float64 // Gathered samples
}

// DataLoader draws x/y batches from a dataset through a sampler.
//
// Example:
//
//	sampler, _ := data.NewSampler(d.Len(), data.SamplerConfig{BatchSize: 32, Shuffle: true})
//	loader, _ := data.NewDataLoader(d, sampler)
//	for batch := range loader.All() {
//	    pred, _ := f.Forward(batch.X)
//	    ...
//	}
type DataLoader struct {
	data    *Data
	sampler *Sampler
	batch   int
}

// NewDataLoader pairs a dataset with a sampler of the same length.
func NewDataLoader(d *Data, s *Sampler) (*DataLoader, error) {
	if d.Len() != s.Len() {
		return nil, fmt.Errorf("data loader: %w: sampler covers %d indices, data has %d",
			ErrLengthMismatch, s.Len(), d.Len())
	}
	return &DataLoader{data: d, sampler: s}, nil
}

// Data returns the underlying dataset.
func (l *DataLoader) Data() *Data {
	return l.data
}

// NumBatches returns the number of batches per pass.
func (l *DataLoader) NumBatches() int {
	return l.sampler.NumBatches()
}

// BatchIndex returns the number of batches yielded in the current pass.
func (l *DataLoader) BatchIndex() int {
	return l.batch
}

// All returns one pass over the batches.
//
// The batch counter is reset when the pass starts and advanced after each
// yielded batch.
func (l *DataLoader) All() iter.Seq[Batch] {
	return func(yield func(Batch) bool) {
		l.batch = 0
		for indices := range l.sampler.Batches() {
			x, y, err := l.data.Slice(indices)
			if err != nil {
				// The sampler covers exactly [0, Len()), checked at construction.
				panic(fmt.Sprintf("data loader: %v", err))
			}
			b := Batch{Index: l.batch, Indices: indices, X: x, Y: y}
			l.batch++
			if !yield(b) {
				return
			}
		}
	}
}
