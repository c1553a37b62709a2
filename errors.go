package qprep

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can branch with errors.Is without holding a
// reference to the concrete error value. The typed errors below carry the
// offending values and unwrap to these.
var (
	ErrInvalidDimension = errors.New("qprep: amplitude count is not a positive power of two")
	ErrZeroVector       = errors.New("qprep: cannot normalize a zero vector")
	ErrStatePreparation = errors.New("qprep: backend failed to prepare state")
	ErrUnknownState     = errors.New("qprep: unknown state handle")
)

// InvalidDimensionError reports an amplitude count that cannot index the
// basis states of any qubit register.
type InvalidDimensionError struct {
	Length int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf(
		"qprep: got %d amplitudes, required length is 2^n for some integer n>=0",
		e.Length,
	)
}

func (e *InvalidDimensionError) Unwrap() error { return ErrInvalidDimension }

// ZeroVectorError reports a vector whose norm is numerically
// indistinguishable from zero. Such a vector has no direction to preserve
// and must never be silently rescaled.
type ZeroVectorError struct {
	NormSquared float64
	Epsilon     float64
}

func (e *ZeroVectorError) Error() string {
	return fmt.Sprintf(
		"qprep: sum of squared magnitudes %.3e is below epsilon %.3e, cannot normalize a zero vector",
		e.NormSquared, e.Epsilon,
	)
}

func (e *ZeroVectorError) Unwrap() error { return ErrZeroVector }

// StatePreparationError wraps the diagnostic reported by a backend that
// rejected an otherwise valid, normalized vector.
type StatePreparationError struct {
	Qubits int
	Err    error
}

func (e *StatePreparationError) Error() string {
	return fmt.Sprintf("qprep: backend rejected %d-qubit state: %v", e.Qubits, e.Err)
}

// Unwrap exposes both the package sentinel and the backend diagnostic, so
// errors.Is matches either.
func (e *StatePreparationError) Unwrap() []error {
	return []error{ErrStatePreparation, e.Err}
}
