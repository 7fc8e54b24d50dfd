// Package nn implements the trainable functions and losses of the Kudzu framework.
//
// This package provides:
//   - Function interface: forward transform, backward gradient, parameter access
//   - Parameter and Params: named scalars with their latest gradient
//   - ZeroBiasAffine (y = w*x) and Affine (y = w*x + b)
//   - Loss interface and MSELoss
//
// Vector arithmetic is delegated to gonum's floats package.
package nn

// Function is a differentiable transform with named parameters.
//
// Every function must implement:
//   - Forward: compute the output from the current parameters and record the inputs
//   - Backward: given dL/dy, store dL/dparam on each parameter and return dL/dx
//   - ParamsAndGrads: snapshot parameters in insertion order
//   - Parameters: the live parameters, for optimizers to update
type Function interface {
	// Forward computes the output for inputs.
	//
	// The inputs are recorded (copied) for use by the next Backward call.
	Forward(inputs []float64) ([]float64, error)

	// Backward computes gradients given the upstream gradient.
	//
	// grad must have the shape of the last Forward output. The gradient of
	// each parameter is overwritten. Returns the gradient with respect to
	// the inputs, computed with the parameter values used by Forward.
	// Calling Backward before Forward returns ErrNoForward.
	Backward(grad []float64) ([]float64, error)

	// ParamsAndGrads returns (name, value, grad) triples in insertion order.
	ParamsAndGrads() []ParamGrad

	// Parameters returns the live parameters in insertion order.
	Parameters() []*Parameter
}

// Unimplemented can be embedded by functions that only provide part of
// the contract. Missing methods fail with ErrNotImplemented.
type Unimplemented struct{}

// Forward returns ErrNotImplemented.
func (Unimplemented) Forward([]float64) ([]float64, error) {
	return nil, ErrNotImplemented
}

// Backward returns ErrNotImplemented.
func (Unimplemented) Backward([]float64) ([]float64, error) {
	return nil, ErrNotImplemented
}

// ParamsAndGrads returns nil.
func (Unimplemented) ParamsAndGrads() []ParamGrad {
	return nil
}

// Parameters returns nil.
func (Unimplemented) Parameters() []*Parameter {
	return nil
}
