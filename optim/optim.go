// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/kudzunn/kudzu/internal/optim"
)

// Errors returned by optimizers.
var (
	ErrNotImplemented = optim.ErrNotImplemented
	ErrNilFunction    = optim.ErrNilFunction
)

// DefaultLR is the learning rate used when GDConfig.LR is zero.
const DefaultLR = optim.DefaultLR

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// UnimplementedOptimizer fails every step with ErrNotImplemented.
type UnimplementedOptimizer = optim.UnimplementedOptimizer

// GD (Gradient Descent)

// GD represents the plain gradient descent optimizer.
type GD = optim.GD

// GDConfig contains configuration for the GD optimizer.
type GDConfig = optim.GDConfig

// NewGD creates a new gradient descent optimizer.
//
// Example:
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{})
//	opt := optim.NewGD(optim.GDConfig{LR: 0.1})
//	err := opt.Step(f)
func NewGD(config GDConfig) *GD {
	return optim.NewGD(config)
}
