package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/kudzunn/kudzu/internal/nn"
)

// TestMSELoss_Forward tests the loss value.
func TestMSELoss_Forward(t *testing.T) {
	tests := []struct {
		name      string
		predicted []float64
		actual    []float64
		want      float64
	}{
		{"SmallResidual", []float64{1.1, 1.1}, []float64{1.0, 1.0}, 0.01},
		{"Exact", []float64{3, -2, 7}, []float64{3, -2, 7}, 0},
		{"Mixed", []float64{0, 2}, []float64{1, 0}, 2.5},
	}

	mse := nn.NewMSELoss()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mse.Forward(tt.predicted, tt.actual)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

// TestMSELoss_Backward tests (2/N)(predicted - actual).
func TestMSELoss_Backward(t *testing.T) {
	mse := nn.NewMSELoss()

	grad, err := mse.Backward([]float64{1.1, 1.1}, []float64{1.0, 1.0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.1}, grad, 1e-12)
}

// TestMSELoss_BackwardMatchesFiniteDifference checks the gradient with respect
// to every prediction.
func TestMSELoss_BackwardMatchesFiniteDifference(t *testing.T) {
	mse := nn.NewMSELoss()
	actual := []float64{0.3, -1.2, 2.5, 0}
	predicted := []float64{0.1, -0.7, 3.0, 0.4}

	lossAt := func(p []float64) float64 {
		l, err := mse.Forward(p, actual)
		require.NoError(t, err)
		return l
	}

	grad, err := mse.Backward(predicted, actual)
	require.NoError(t, err)

	numeric := fd.Gradient(nil, lossAt, predicted, &fd.Settings{Formula: fd.Central})
	assert.InDeltaSlice(t, numeric, grad, 1e-6)
}

// TestMSELoss_DoesNotMutateInputs tests that the loss is a pure function.
func TestMSELoss_DoesNotMutateInputs(t *testing.T) {
	mse := nn.NewMSELoss()
	predicted := []float64{1, 2}
	actual := []float64{0, 0}

	_, err := mse.Backward(predicted, actual)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, predicted)
	assert.Equal(t, []float64{0, 0}, actual)
}

// TestMSELoss_Errors tests shape validation.
func TestMSELoss_Errors(t *testing.T) {
	mse := nn.NewMSELoss()

	_, err := mse.Forward([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, nn.ErrShapeMismatch)

	_, err = mse.Backward([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, nn.ErrShapeMismatch)

	_, err = mse.Forward(nil, nil)
	require.ErrorIs(t, err, nn.ErrEmpty)
}
