// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the differentiable building blocks of Kudzu.
//
// # Overview
//
// This package contains:
//   - Function: forward/backward contract with named parameters
//   - Functions: ZeroBiasAffine (y = w*x), Affine (y = w*x + b)
//   - Losses: MSELoss
//   - Utilities: Parameter, Params, Randn
//
// # Basic Usage
//
//	import "github.com/kudzunn/kudzu/nn"
//
//	func main() {
//	    f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(0.5)})
//	    loss := nn.NewMSELoss()
//
//	    pred, _ := f.Forward([]float64{1, 2})
//	    l, _ := loss.Forward(pred, []float64{3, 6})
//	    grad, _ := loss.Backward(pred, []float64{3, 6})
//	    _, _ = f.Backward(grad)
//	}
//
// # Functions
//
// A Function caches its inputs on Forward and stores the gradient of each
// parameter on Backward. Backward returns the gradient with respect to
// the inputs so functions can be chained.
//
// Parameters are shared handles: an optimizer that updates them through
// Parameters changes what Forward computes next.
//
// # Losses
//
// MSELoss: mean of squared residuals. Backward returns (2/N)(pred - actual).
package nn
