// Package optim implements optimization algorithms for training Kudzu functions.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - GD: plain gradient descent
//
// Example usage:
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{})
//	opt := optim.NewGD(optim.GDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    pred, _ := f.Forward(x)
//	    grad, _ := loss.Backward(pred, y)
//	    _, _ = f.Backward(grad)
//
//	    // Update parameters
//	    if err := opt.Step(f); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"errors"

	"github.com/kudzunn/kudzu/internal/nn"
)

// Common errors.
var (
	// ErrNotImplemented is returned by UnimplementedOptimizer.
	ErrNotImplemented = nn.ErrNotImplemented

	// ErrNilFunction is returned when Step is given a nil interface.
	ErrNilFunction = errors.New("nil function")
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update a function's parameters in place from the gradients
// stored by its last backward pass.
type Optimizer interface {
	// Step applies gradient updates to all parameters of f.
	//
	// Parameters of other functions are never touched.
	Step(f nn.Function) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// UnimplementedOptimizer can be embedded by optimizers that only provide
// part of the contract.
type UnimplementedOptimizer struct{}

// Step returns ErrNotImplemented.
func (UnimplementedOptimizer) Step(nn.Function) error {
	return ErrNotImplemented
}

// GetLR returns 0.
func (UnimplementedOptimizer) GetLR() float64 {
	return 0
}
