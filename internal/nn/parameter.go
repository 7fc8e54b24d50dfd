package nn

import "fmt"

// Parameter represents a trainable scalar owned by a Function.
//
// A parameter carries its current value and the gradient computed by the
// most recent backward pass. Gradients are overwritten, never accumulated.
//
// Example:
//
//	w := nn.NewParameter("w", 0.5, 0)
//	w.SetGrad(1.5)
//	w.SetValue(w.Value() - 0.1*w.Grad())
type Parameter struct {
	name  string  // Parameter name (e.g., "w", "b")
	value float64 // Current value
	grad  float64 // Gradient from the last backward pass
}

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value, grad float64) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
		grad:  grad,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current parameter value.
func (p *Parameter) Value() float64 {
	return p.value
}

// SetValue replaces the parameter value.
//
// This is typically called by the optimizer after a backward pass.
func (p *Parameter) SetValue(v float64) {
	p.value = v
}

// Grad returns the gradient stored by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.grad
}

// SetGrad sets the gradient.
func (p *Parameter) SetGrad(g float64) {
	p.grad = g
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = 0
}

// String implements fmt.Stringer.
func (p *Parameter) String() string {
	return fmt.Sprintf("%s, %v, %v", p.name, p.value, p.grad)
}

// ParamGrad is a snapshot of one parameter: its name, value and gradient.
type ParamGrad struct {
	Name  string
	Value float64
	Grad  float64
}

// Params is an ordered set of named parameters.
//
// Values and gradients live on the same Parameter, so the set of names
// with a value is always the set of names with a gradient. Iteration
// follows insertion order.
//
// Functions embed Params to get Parameters and ParamsAndGrads for free.
type Params struct {
	order  []*Parameter
	byName map[string]*Parameter
}

// Register adds a parameter under name and returns it.
//
// Panics if the name is already registered: a function declaring the
// same parameter twice is a programming error.
func (ps *Params) Register(name string, value, grad float64) *Parameter {
	if ps.byName == nil {
		ps.byName = make(map[string]*Parameter)
	}
	if _, exists := ps.byName[name]; exists {
		panic(fmt.Sprintf("nn: parameter %q registered twice", name))
	}
	p := NewParameter(name, value, grad)
	ps.order = append(ps.order, p)
	ps.byName[name] = p
	return p
}

// Parameters returns the parameters in insertion order.
//
// The returned slice is a copy; the parameters themselves are shared, so
// SetValue on an element updates the owning function.
func (ps *Params) Parameters() []*Parameter {
	out := make([]*Parameter, len(ps.order))
	copy(out, ps.order)
	return out
}

// Param looks up a parameter by name.
func (ps *Params) Param(name string) (*Parameter, error) {
	p, ok := ps.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return p, nil
}

// ParamsAndGrads returns (name, value, grad) snapshots in insertion order.
func (ps *Params) ParamsAndGrads() []ParamGrad {
	out := make([]ParamGrad, 0, len(ps.order))
	for _, p := range ps.order {
		out = append(out, ParamGrad{Name: p.name, Value: p.value, Grad: p.grad})
	}
	return out
}
