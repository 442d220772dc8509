package drift

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a parameter for which the model is undefined,
	// such as a population with no allele copies.
	ErrInvalidParameter = errors.New("drift: invalid parameter")

	// ErrOutOfRange indicates a parameter outside its valid domain.
	ErrOutOfRange = errors.New("drift: parameter out of range")
)

// ParamError records which parameter failed validation.
type ParamError struct {
	Name  string
	Value float64
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %g", e.Err.Error(), e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}
