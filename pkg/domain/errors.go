package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is returned when a variable, rule table or pipeline is malformed.
var ErrConfiguration = errors.New("invalid configuration")

// ErrOutOfRange is returned when a crisp value falls outside a variable's domain.
var ErrOutOfRange = errors.New("value out of known ranges")

// ErrInternalInconsistency is returned when an in-range value matches no category.
// It signals a broken coverage invariant and must not be swallowed.
var ErrInternalInconsistency = errors.New("internal inconsistency")

// ErrRecordNotFound is returned when an evaluation record cannot be found in the store.
var ErrRecordNotFound = errors.New("record not found")

// ErrNotFound is returned when a named variable, controller or stage is unknown.
var ErrNotFound = errors.New("not found")

// ConfigurationError describes why a configuration was rejected.
type ConfigurationError struct {
	Variable string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: variable %q: %s", ErrConfiguration, e.Variable, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// OutOfRangeError reports a crisp value outside [Min, Max].
type OutOfRangeError struct {
	Variable string
	Value    float64
	Min      float64
	Max      float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("variable %q: %g not in [%g, %g]: %s", e.Variable, e.Value, e.Min, e.Max, ErrOutOfRange)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InconsistencyError reports an in-range value that no category or gap covered.
type InconsistencyError struct {
	Variable string
	Value    float64
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: variable %q: no category covers %g", ErrInternalInconsistency, e.Variable, e.Value)
}

func (e *InconsistencyError) Unwrap() error { return ErrInternalInconsistency }
