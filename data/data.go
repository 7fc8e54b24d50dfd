// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides datasets and batching for Kudzu training.
//
// Data holds paired scalar samples and can shuffle them every epoch:
//
//	rng := data.NewRand(42)
//	d, err := data.Linear(data.LinearConfig{Samples: 100, Slope: 3, Shuffle: true}, rng)
//
// For mini-batch training, a Sampler cuts the index range into batches
// and a DataLoader gathers them:
//
//	s, _ := data.NewSampler(d.Len(), data.SamplerConfig{BatchSize: 16, Shuffle: true, Rand: rng})
//	loader, _ := data.NewDataLoader(d, s)
//	for batch := range loader.All() {
//	    // batch.X, batch.Y
//	}
package data

import (
	"io"
	"math/rand/v2"

	"github.com/kudzunn/kudzu/internal/data"
)

// Errors returned by datasets and samplers.
var (
	ErrLengthMismatch   = data.ErrLengthMismatch
	ErrIndexOutOfRange  = data.ErrIndexOutOfRange
	ErrInvalidBatchSize = data.ErrInvalidBatchSize
)

// Data is a dataset of paired scalar inputs and targets.
type Data = data.Data

// New creates a dataset from copies of x and y.
func New(x, y []float64, shuffle bool, rng *rand.Rand) (*Data, error) {
	return data.New(x, y, shuffle, rng)
}

// NewRand returns a seeded generator. A negative seed draws a random one.
func NewRand(seed int64) *rand.Rand {
	return data.NewRand(seed)
}

// LinearConfig configures a synthetic y = slope*x dataset.
type LinearConfig = data.LinearConfig

// Linear generates a synthetic linear dataset.
func Linear(config LinearConfig, rng *rand.Rand) (*Data, error) {
	return data.Linear(config, rng)
}

// LoadCSV reads an "x,y" CSV file.
func LoadCSV(filename string, shuffle bool, rng *rand.Rand) (*Data, error) {
	return data.LoadCSV(filename, shuffle, rng)
}

// ReadCSV reads "x,y" CSV rows from r.
func ReadCSV(r io.Reader, shuffle bool, rng *rand.Rand) (*Data, error) {
	return data.ReadCSV(r, shuffle, rng)
}

// Batching

// SamplerConfig configures a Sampler.
type SamplerConfig = data.SamplerConfig

// Sampler yields batches of indices over [0, n).
type Sampler = data.Sampler

// NewSampler creates a sampler over n indices.
func NewSampler(n int, config SamplerConfig) (*Sampler, error) {
	return data.NewSampler(n, config)
}

// Batch is one gathered mini-batch.
type Batch = data.Batch

// DataLoader gathers sampler batches from a dataset.
type DataLoader = data.DataLoader

// NewDataLoader pairs a dataset with a sampler of the same length.
func NewDataLoader(d *Data, s *Sampler) (*DataLoader, error) {
	return data.NewDataLoader(d, s)
}
