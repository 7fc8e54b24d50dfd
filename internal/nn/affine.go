package nn

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// AffineConfig holds the initial state of an affine function.
//
// A nil initial value draws the parameter from N(0, 1) using Rand.
// Gradients start at the given values (zero by default).
type AffineConfig struct {
	WInit *float64   // Initial weight (nil = random normal)
	WGrad float64    // Initial weight gradient
	BInit *float64   // Initial bias (nil = 0 for Affine; ignored by ZeroBiasAffine)
	BGrad float64    // Initial bias gradient
	Rand  *rand.Rand // Source for random initialization (nil = process-wide)
}

// Float returns a pointer to v, for use in AffineConfig.
func Float(v float64) *float64 {
	return &v
}

// ZeroBiasAffine is the one-parameter linear transform y = w*x.
//
// Example:
//
//	f := nn.NewZeroBiasAffine(nn.AffineConfig{WInit: nn.Float(1.2)})
//	y, _ := f.Forward([]float64{1, 1, 1}) // [1.2 1.2 1.2]
type ZeroBiasAffine struct {
	Params

	w      *Parameter
	inputs []float64
	seen   bool
}

// NewZeroBiasAffine creates y = w*x with a single parameter "w".
func NewZeroBiasAffine(config AffineConfig) *ZeroBiasAffine {
	f := &ZeroBiasAffine{}
	f.w = f.Register("w", initValue(config.WInit, config.Rand), config.WGrad)
	return f
}

// Forward returns w*x elementwise and records x.
func (f *ZeroBiasAffine) Forward(inputs []float64) ([]float64, error) {
	f.inputs = append(f.inputs[:0], inputs...)
	f.seen = true

	out := make([]float64, len(inputs))
	floats.ScaleTo(out, f.w.Value(), inputs)
	return out, nil
}

// Backward stores dL/dw = grad·x and returns dL/dx = grad*w.
func (f *ZeroBiasAffine) Backward(grad []float64) ([]float64, error) {
	if !f.seen {
		return nil, ErrNoForward
	}
	if len(grad) != len(f.inputs) {
		return nil, fmt.Errorf("zero bias affine backward: %w: grad has %d elements, forward input had %d",
			ErrShapeMismatch, len(grad), len(f.inputs))
	}

	f.w.SetGrad(floats.Dot(grad, f.inputs))

	dx := make([]float64, len(grad))
	floats.ScaleTo(dx, f.w.Value(), grad)
	return dx, nil
}

// Affine is the two-parameter transform y = w*x + b.
type Affine struct {
	Params

	w, b   *Parameter
	inputs []float64
	seen   bool
}

// NewAffine creates y = w*x + b with parameters "w" and "b", in that order.
func NewAffine(config AffineConfig) *Affine {
	f := &Affine{}
	f.w = f.Register("w", initValue(config.WInit, config.Rand), config.WGrad)

	var b float64
	if config.BInit != nil {
		b = *config.BInit
	}
	f.b = f.Register("b", b, config.BGrad)
	return f
}

// Forward returns w*x + b elementwise and records x.
func (f *Affine) Forward(inputs []float64) ([]float64, error) {
	f.inputs = append(f.inputs[:0], inputs...)
	f.seen = true

	out := make([]float64, len(inputs))
	floats.ScaleTo(out, f.w.Value(), inputs)
	floats.AddConst(f.b.Value(), out)
	return out, nil
}

// Backward stores dL/dw = grad·x and dL/db = Σgrad, and returns grad*w.
func (f *Affine) Backward(grad []float64) ([]float64, error) {
	if !f.seen {
		return nil, ErrNoForward
	}
	if len(grad) != len(f.inputs) {
		return nil, fmt.Errorf("affine backward: %w: grad has %d elements, forward input had %d",
			ErrShapeMismatch, len(grad), len(f.inputs))
	}

	f.w.SetGrad(floats.Dot(grad, f.inputs))
	f.b.SetGrad(floats.Sum(grad))

	dx := make([]float64, len(grad))
	floats.ScaleTo(dx, f.w.Value(), grad)
	return dx, nil
}

func initValue(v *float64, rng *rand.Rand) float64 {
	if v != nil {
		return *v
	}
	return Randn(rng)
}
