// Package apperr provides standardized domain error types for the engine.
// Components return these typed errors instead of bare fmt.Errorf so callers
// can branch on Kind without string matching.
package apperr

import "fmt"

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindValidation indicates invalid input data (malformed answers/BOQ).
	KindValidation
	// KindNotFound indicates a referenced model number or category is absent.
	KindNotFound
	// KindInternal indicates an unexpected failure, e.g. incomplete catalog
	// guidance or an unreadable tabular source at construction time.
	KindInternal
)

// Error is a domain error with a typed Kind for programmatic dispatch.
type Error struct {
	Kind    Kind
	Message string
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound creates a not-found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Internal creates an internal error.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
