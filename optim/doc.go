// Copyright 2025 Kudzu ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for Kudzu functions.
//
// # Overview
//
// An optimizer reads each parameter's stored gradient and writes the
// updated value back through the function's shared parameter handles.
//
// # Optimizers
//
// GD (gradient descent), w ← w - lr·∂L/∂w:
//
//	opt := optim.NewGD(optim.GDConfig{LR: 0.01})
//
// # Training Loop Pattern
//
//	for epoch := range numEpochs {
//	    // 1. Forward pass
//	    pred, _ := f.Forward(x)
//
//	    // 2. Backward through loss, then function
//	    grad, _ := loss.Backward(pred, y)
//	    _, _ = f.Backward(grad)
//
//	    // 3. Update parameters
//	    if err := opt.Step(f); err != nil {
//	        return err
//	    }
//	}
//
// Most code uses the learner package, which runs this loop and fires
// callbacks around each stage.
package optim
