// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/kudzunn/kudzu/internal/nn"
)

// Errors returned by functions and losses.
var (
	ErrNotImplemented   = nn.ErrNotImplemented
	ErrShapeMismatch    = nn.ErrShapeMismatch
	ErrNoForward        = nn.ErrNoForward
	ErrEmpty            = nn.ErrEmpty
	ErrUnknownParameter = nn.ErrUnknownParameter
)

// Function is the interface for differentiable functions.
type Function = nn.Function

// Unimplemented is a Function whose operations all fail with
// ErrNotImplemented. Embed it to build partial functions.
type Unimplemented = nn.Unimplemented

// Parameter is a named trainable scalar with its gradient.
type Parameter = nn.Parameter

// NewParameter creates a new parameter.
func NewParameter(name string, value, grad float64) *Parameter {
	return nn.NewParameter(name, value, grad)
}

// ParamGrad is a snapshot of one parameter.
type ParamGrad = nn.ParamGrad

// Params is an ordered registry of parameters.
type Params = nn.Params

// Functions

// AffineConfig configures affine functions.
type AffineConfig = nn.AffineConfig

// ZeroBiasAffine computes y = w*x.
type ZeroBiasAffine = nn.ZeroBiasAffine

// NewZeroBiasAffine creates y = w*x. A nil WInit draws w from N(0, 1).
//
// Example:
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1)})
//	y, err := f.Forward([]float64{1, 2, 3})
func NewZeroBiasAffine(config AffineConfig) *ZeroBiasAffine {
	return nn.NewZeroBiasAffine(config)
}

// Affine computes y = w*x + b.
type Affine = nn.Affine

// NewAffine creates y = w*x + b.
func NewAffine(config AffineConfig) *Affine {
	return nn.NewAffine(config)
}

// Float returns a pointer to v, for optional config fields.
func Float(v float64) *float64 {
	return nn.Float(v)
}

// Losses

// Loss is the interface for loss functions.
type Loss = nn.Loss

// UnimplementedLoss is a Loss whose operations fail with ErrNotImplemented.
type UnimplementedLoss = nn.UnimplementedLoss

// MSELoss is the mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Initialization

// Randn draws one value from N(0, 1). A nil rng uses the global source.
func Randn(rng *rand.Rand) float64 {
	return nn.Randn(rng)
}
