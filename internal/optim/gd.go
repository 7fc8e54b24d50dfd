package optim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/kudzunn/kudzu/internal/nn"
)

// DefaultLR is the learning rate used when GDConfig.LR is zero.
const DefaultLR = 0.001

// GD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewGD(optim.GDConfig{LR: 0.01})
//	if err := optimizer.Step(f); err != nil {
//	    return err
//	}
type GD struct {
	lr float64
}

// GDConfig holds configuration for the GD optimizer.
type GDConfig struct {
	LR float64 // Learning rate (default: 0.001)
}

// NewGD creates a new gradient descent optimizer.
func NewGD(config GDConfig) *GD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	return &GD{lr: config.LR}
}

// Step performs a single optimization step on every parameter of f.
//
// All values and gradients are read before any parameter is written, so
// the update of one parameter can never leak into the gradient read for
// another within the same step.
//
// A nil f returns ErrNilFunction. A non-nil interface holding a nil
// pointer is a caller error and panics like any other method call on it.
func (g *GD) Step(f nn.Function) error {
	if f == nil {
		return ErrNilFunction
	}

	params := f.Parameters()
	values := make([]float64, len(params))
	grads := make([]float64, len(params))
	for i, p := range params {
		values[i] = p.Value()
		grads[i] = p.Grad()
	}

	// values += -lr * grads
	floats.AddScaled(values, -g.lr, grads)

	for i, p := range params {
		p.SetValue(values[i])
	}
	return nil
}

// GetLR returns the current learning rate.
func (g *GD) GetLR() float64 {
	return g.lr
}

// SetLR updates the learning rate.
func (g *GD) SetLR(lr float64) {
	g.lr = lr
}

// String implements fmt.Stringer.
func (g *GD) String() string {
	return fmt.Sprintf("GD(lr=%v)", g.lr)
}
