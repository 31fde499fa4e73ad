// Package cvrperr defines the error taxonomy of the cvrp solver. The config
// and distmatrix packages return their own errors (plain wrapped errors and
// sentinels respectively), not *Error values.
//
// Four kinds, matching the solver's propagation policy: InvalidInstance and
// InvalidConfig are detected before the solve loop ever runs and are always
// surfaced to the caller; Timeout is not a failure, it is reported via
// Diagnostics; InternalAssertion indicates a bug and is fatal.
package cvrperr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// InvalidInstance marks a problem with the loaded Instance: demand
	// exceeding capacity, a malformed distance matrix, a missing depot.
	InvalidInstance Kind = iota
	// InvalidConfig marks an inconsistent Config: alpha outside (0,1),
	// Tf >= T0, an empty neighbourhood list, negative tenure.
	InvalidConfig
	// InternalAssertion marks an invariant violation detected in debug
	// checks (e.g. a delta-cost mismatch). Always indicates a bug.
	InternalAssertion
)

// String renders the Kind for diagnostics and log fields.
func (k Kind) String() string {
	switch k {
	case InvalidInstance:
		return "invalid_instance"
	case InvalidConfig:
		return "invalid_config"
	case InternalAssertion:
		return "internal_assertion"
	default:
		return "unknown"
	}
}

// Error is the error type cvrp returns across its package boundary, for
// callers that need a Kind to branch on.
type Error struct {
	Kind    Kind
	Message string
	Field   string // optional: which config/instance field triggered this
	Cause   error  // optional: wrapped sentinel from the originating package
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Kind, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped sentinel for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind with a plain message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind around an existing sentinel,
// optionally naming the offending field.
func Wrap(kind Kind, field string, cause error) *Error {
	return &Error{Kind: kind, Message: cause.Error(), Field: field, Cause: cause}
}

// Is reports whether err is a *Error of the given kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
