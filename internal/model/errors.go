package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientInput means a required number was missing, zero where
	// positivity is required, negative, or non-finite. Callers must show
	// "cannot compute" rather than a zero.
	ErrInsufficientInput = errors.New("insufficient input")

	// ErrOutOfDomainAssumption is matched by every *DomainError.
	ErrOutOfDomainAssumption = errors.New("assumption out of domain")
)

// DomainError names the assumption field that failed validation.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s=%v %s", e.Field, e.Value, e.Reason)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrOutOfDomainAssumption
}
