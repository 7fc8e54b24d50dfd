package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudzunn/kudzu/internal/nn"
)

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	param := nn.NewParameter("w", 1.5, 0.25)

	assert.Equal(t, "w", param.Name())
	assert.Equal(t, 1.5, param.Value())
	assert.Equal(t, 0.25, param.Grad())

	param.SetValue(2)
	param.SetGrad(-1)
	assert.Equal(t, 2.0, param.Value())
	assert.Equal(t, -1.0, param.Grad())
	assert.Equal(t, "w, 2, -1", param.String())

	param.ZeroGrad()
	assert.Zero(t, param.Grad())
}

// TestParams_InsertionOrder tests that Params preserves registration order.
func TestParams_InsertionOrder(t *testing.T) {
	var ps nn.Params
	ps.Register("w", 1, 0.1)
	ps.Register("b", 2, 0.2)
	ps.Register("a", 3, 0.3)

	got := ps.ParamsAndGrads()
	require.Len(t, got, 3)
	assert.Equal(t, []nn.ParamGrad{
		{Name: "w", Value: 1, Grad: 0.1},
		{Name: "b", Value: 2, Grad: 0.2},
		{Name: "a", Value: 3, Grad: 0.3},
	}, got)

	params := ps.Parameters()
	require.Len(t, params, 3)
	for i, p := range params {
		assert.Equal(t, got[i].Name, p.Name())
	}
}

// TestParams_SharedState tests that Parameters exposes live parameters.
func TestParams_SharedState(t *testing.T) {
	var ps nn.Params
	ps.Register("w", 1, 0)

	ps.Parameters()[0].SetValue(5)

	w, err := ps.Param("w")
	require.NoError(t, err)
	assert.Equal(t, 5.0, w.Value())
	assert.Equal(t, 5.0, ps.ParamsAndGrads()[0].Value)
}

// TestParams_UnknownName tests lookup of a missing parameter.
func TestParams_UnknownName(t *testing.T) {
	var ps nn.Params
	ps.Register("w", 1, 0)

	_, err := ps.Param("b")
	require.ErrorIs(t, err, nn.ErrUnknownParameter)
}

// TestParams_DuplicateName tests that registering a name twice panics.
func TestParams_DuplicateName(t *testing.T) {
	var ps nn.Params
	ps.Register("w", 1, 0)

	assert.Panics(t, func() {
		ps.Register("w", 2, 0)
	})
}

type partialFunction struct {
	nn.Unimplemented
}

type partialLoss struct {
	nn.UnimplementedLoss
}

// TestUnimplemented tests that the embeddable bases fail with ErrNotImplemented.
func TestUnimplemented(t *testing.T) {
	var f nn.Function = partialFunction{}

	_, err := f.Forward([]float64{1})
	require.ErrorIs(t, err, nn.ErrNotImplemented)

	_, err = f.Backward([]float64{1})
	require.ErrorIs(t, err, nn.ErrNotImplemented)

	assert.Empty(t, f.ParamsAndGrads())
	assert.Empty(t, f.Parameters())

	var l nn.Loss = partialLoss{}

	_, err = l.Forward([]float64{1}, []float64{1})
	require.ErrorIs(t, err, nn.ErrNotImplemented)

	_, err = l.Backward([]float64{1}, []float64{1})
	require.ErrorIs(t, err, nn.ErrNotImplemented)
}
