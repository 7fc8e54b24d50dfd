package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Loss compares predictions to targets.
//
// Losses are stateless: Forward and Backward depend only on their arguments.
type Loss interface {
	// Forward returns the scalar loss.
	Forward(predicted, actual []float64) (float64, error)

	// Backward returns dL/dpredicted.
	Backward(predicted, actual []float64) ([]float64, error)
}

// UnimplementedLoss can be embedded by losses that only provide part of
// the contract.
type UnimplementedLoss struct{}

// Forward returns ErrNotImplemented.
func (UnimplementedLoss) Forward(_, _ []float64) (float64, error) {
	return 0, ErrNotImplemented
}

// Backward returns ErrNotImplemented.
func (UnimplementedLoss) Backward(_, _ []float64) ([]float64, error) {
	return nil, ErrNotImplemented
}

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predicted - actual)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss, err := mse.Forward([]float64{1.1, 1.1}, []float64{1, 1}) // 0.01
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes mean((predicted - actual)²).
func (m *MSELoss) Forward(predicted, actual []float64) (float64, error) {
	diff, err := residuals(predicted, actual)
	if err != nil {
		return 0, fmt.Errorf("mse forward: %w", err)
	}
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// Backward computes (2/N) * (predicted - actual), N = len(actual).
func (m *MSELoss) Backward(predicted, actual []float64) ([]float64, error) {
	diff, err := residuals(predicted, actual)
	if err != nil {
		return nil, fmt.Errorf("mse backward: %w", err)
	}
	floats.Scale(2.0/float64(len(actual)), diff)
	return diff, nil
}

func residuals(predicted, actual []float64) ([]float64, error) {
	if len(predicted) != len(actual) {
		return nil, fmt.Errorf("%w: predicted has %d elements, actual has %d",
			ErrShapeMismatch, len(predicted), len(actual))
	}
	if len(actual) == 0 {
		return nil, ErrEmpty
	}
	diff := make([]float64, len(actual))
	floats.SubTo(diff, predicted, actual)
	return diff, nil
}
