package kinetics

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every validation failure.
var ErrInvalidParameter = errors.New("kinetics: invalid parameter")

// ParameterError names the offending field and why it was rejected.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("kinetics: invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field string, value float64, reason string) error {
	return &ParameterError{Field: field, Value: value, Reason: reason}
}
