package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch  = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge    = errors.New("header exceeds maximum size")
	ErrInvalidHeader     = errors.New("invalid header")
	ErrOutOfBounds       = errors.New("tensor extends beyond data section")
	ErrUnsupportedDType  = errors.New("unsupported dtype")
	ErrInvalidTensorName = errors.New("invalid tensor name")
	ErrMissingTensor     = errors.New("missing tensor")
)

// ValidationError provides detailed information about a rejected tensor.
type ValidationError struct {
	Tensor  string // Tensor name involved
	Details string // Additional details
	Err     error  // Sentinel describing the failure class
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: tensor %q: %s", e.Err, e.Tensor, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
