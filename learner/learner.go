// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package learner runs Kudzu training loops.
//
// Example:
//
//	rng := data.NewRand(42)
//	d, _ := data.Linear(data.LinearConfig{Samples: 100, Slope: 3, Shuffle: true}, rng)
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{Rand: rng})
//	l := learner.New(f, nn.NewMSELoss(), optim.NewGD(optim.GDConfig{LR: 0.1}), learner.Config{Epochs: 20})
//	l.SetCallbacks(callback.NewAccCallback(l, os.Stdout))
//
//	finalLoss, err := l.TrainLoop(d)
package learner

import (
	"github.com/kudzunn/kudzu/internal/learner"
	"github.com/kudzunn/kudzu/nn"
	"github.com/kudzunn/kudzu/optim"
)

// ErrCallbackFailed is returned in strict mode when a hook reports failure.
var ErrCallbackFailed = learner.ErrCallbackFailed

// Config holds the training loop settings.
type Config = learner.Config

// Learner owns a function, a loss and an optimizer and trains them.
type Learner = learner.Learner

// New creates a learner.
func New(fn nn.Function, loss nn.Loss, opt optim.Optimizer, config Config) *Learner {
	return learner.New(fn, loss, opt, config)
}
