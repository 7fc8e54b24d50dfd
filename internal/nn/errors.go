package nn

import "errors"

// Common errors.
var (
	ErrNotImplemented   = errors.New("not implemented")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrNoForward        = errors.New("backward called before forward")
	ErrEmpty            = errors.New("empty input")
	ErrUnknownParameter = errors.New("unknown parameter")
)
