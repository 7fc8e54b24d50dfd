package serialization

import (
	"fmt"
	"os"

	"github.com/kudzunn/kudzu/internal/nn"
)

// StateDict returns the parameter values of f keyed by name.
func StateDict(f nn.Function) map[string][]float64 {
	state := make(map[string][]float64)
	for _, pg := range f.ParamsAndGrads() {
		state[pg.Name] = []float64{pg.Value}
	}
	return state
}

// LoadStateDict sets the parameters of f from state.
//
// Every parameter of f must be present with exactly one value. Extra
// entries in state are ignored. Nothing is written unless every
// parameter validates.
func LoadStateDict(f nn.Function, state map[string][]float64) error {
	params := f.Parameters()
	values := make([]float64, len(params))
	for i, p := range params {
		v, ok := state[p.Name()]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingTensor, p.Name())
		}
		if len(v) != 1 {
			return fmt.Errorf("%w: %q has %d elements, want 1", nn.ErrShapeMismatch, p.Name(), len(v))
		}
		values[i] = v[0]
	}
	for i, p := range params {
		p.SetValue(values[i])
	}
	return nil
}

// SaveFunction writes the parameters of f to path.
func SaveFunction(path string, f nn.Function, metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	return Encode(file, StateDict(f), metadata)
}

// LoadFunction reads parameters from path into f and returns the metadata.
func LoadFunction(path string, f nn.Function) (map[string]string, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	state, metadata, err := Decode(file)
	if err != nil {
		return nil, err
	}
	if err := LoadStateDict(f, state); err != nil {
		return nil, err
	}
	return metadata, nil
}
