package cts

import (
	"fmt"

	"github.com/pkg/errors"
)

// MissingParameterError is returned when a projection or operation is
// constructed without a parameter its definition requires.
type MissingParameterError struct {
	Operation string
	Key       string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Operation, e.Key)
}

// NewMissingParameterError builds a MissingParameterError.
func NewMissingParameterError(operation, key string) error {
	return &MissingParameterError{Operation: operation, Key: key}
}

// ContradictoryParameterError is returned when two parameters that
// cannot both be given (e.g. "b" and "rf") are both present.
type ContradictoryParameterError struct {
	Operation  string
	KeyA, KeyB string
}

func (e *ContradictoryParameterError) Error() string {
	return fmt.Sprintf("%s: contradictory parameters %q and %q", e.Operation, e.KeyA, e.KeyB)
}

// NewContradictoryParameterError builds a ContradictoryParameterError.
func NewContradictoryParameterError(operation, a, b string) error {
	return &ContradictoryParameterError{Operation: operation, KeyA: a, KeyB: b}
}

// CoordinateDimensionError is returned when a transform is given a tuple
// shorter than the operation's required arity.
type CoordinateDimensionError struct {
	Operation     string
	Expected, Got int
}

func (e *CoordinateDimensionError) Error() string {
	return fmt.Sprintf("%s: expected a tuple of at least %d components, got %d", e.Operation, e.Expected, e.Got)
}

// NewCoordinateDimensionError builds a CoordinateDimensionError.
func NewCoordinateDimensionError(operation string, expected, got int) error {
	return &CoordinateDimensionError{Operation: operation, Expected: expected, Got: got}
}

// ArithmeticDivergenceError is returned when an iterative solver exceeds
// its documented iteration cap without converging.
type ArithmeticDivergenceError struct {
	Algorithm string
}

func (e *ArithmeticDivergenceError) Error() string {
	return fmt.Sprintf("%s: iterative solver failed to converge", e.Algorithm)
}

// NewArithmeticDivergenceError builds an ArithmeticDivergenceError.
func NewArithmeticDivergenceError(algorithm string) error {
	return &ArithmeticDivergenceError{Algorithm: algorithm}
}

// NonInvertibleError is returned when Inverse() is requested of an
// operation that has no algebraic inverse.
type NonInvertibleError struct {
	Operation string
	Reason    string
}

func (e *NonInvertibleError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: not invertible", e.Operation)
	}
	return fmt.Sprintf("%s: not invertible: %s", e.Operation, e.Reason)
}

// NewNonInvertibleError builds a NonInvertibleError.
func NewNonInvertibleError(operation, reason string) error {
	return &NonInvertibleError{Operation: operation, Reason: reason}
}

// OutOfDomainError is returned by a grid lookup outside its domain of
// definition.
type OutOfDomainError struct {
	Lat, Lon float64
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("grid lookup out of domain at (lat=%g, lon=%g)", e.Lat, e.Lon)
}

// NewOutOfDomainError builds an OutOfDomainError.
func NewOutOfDomainError(lat, lon float64) error {
	return &OutOfDomainError{Lat: lat, Lon: lon}
}

// NoPathError is returned by the transformation graph resolver when no
// sequence of known operations connects two datums, directly or via the
// WGS84 pivot.
type NoPathError struct {
	From, To string
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("no known transformation path from %q to %q", e.From, e.To)
}

// NewNoPathError builds a NoPathError.
func NewNoPathError(from, to string) error {
	return &NoPathError{From: from, To: to}
}

// DomainError wraps a numeric domain failure (e.g. sqrt of a negative
// number caused by an out-of-range input) with the operation identifier
// and the coordinate that triggered it, per the propagation policy in
// spec.md §7.
type DomainError struct {
	Operation string
	Lam, Phi  float64
	cause     error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: domain error at (lam=%g, phi=%g): %v", e.Operation, e.Lam, e.Phi, e.cause)
}

func (e *DomainError) Unwrap() error { return e.cause }

// Cause satisfies github.com/pkg/errors' causer interface so Cause(err)
// can recover the original failure through a DomainError wrapper.
func (e *DomainError) Cause() error { return e.cause }

// NewDomainError wraps cause as a DomainError, recording the failing
// operation and coordinate.
func NewDomainError(operation string, lam, phi float64, cause error) error {
	return &DomainError{Operation: operation, Lam: lam, Phi: phi, cause: errors.WithStack(cause)}
}

// UnsupportedOperationError is returned when a proj-key names no
// registered projection method.
type UnsupportedOperationError struct {
	Key string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("cts: unsupported projection method %q", e.Key)
}

// NewUnsupportedOperationError builds an UnsupportedOperationError.
func NewUnsupportedOperationError(key string) error {
	return &UnsupportedOperationError{Key: key}
}

// Cause returns the underlying cause of err, if any, via
// github.com/pkg/errors. Callers use it to recover the original error
// of a failing step from the DomainError that Sequence.Forward and
// gridShift.Forward wrap around it.
func Cause(err error) error {
	return errors.Cause(err)
}
