package errors

import (
	goerrors "errors"
	"fmt"
)

// ScriptError is the interface implemented by all errors the runtime core
// raises toward its embedder.
type ScriptError interface {
	error          // Embed the standard error interface
	Kind() string  // e.g., "Type", "Range", "Internal"
	// Message returns the specific error message without the kind prefix.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// TypeError represents a script-visible TypeError: an operation applied to a
// value of the wrong kind. It unwinds to the embedder; the core never
// recovers from it.
type TypeError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *TypeError) Error() string   { return fmt.Sprintf("TypeError: %s", e.Msg) }
func (e *TypeError) Kind() string    { return "Type" }
func (e *TypeError) Message() string { return e.Msg }
func (e *TypeError) Unwrap() error   { return e.Cause }
func (e *TypeError) CausedBy(cause error) *TypeError {
	e.Cause = cause
	return e
}

// NewTypeError formats a new TypeError.
func NewTypeError(format string, args ...interface{}) *TypeError {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

// RangeError represents a script-visible RangeError. The object core itself
// raises none, but native bindings built on it do.
type RangeError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *RangeError) Error() string   { return fmt.Sprintf("RangeError: %s", e.Msg) }
func (e *RangeError) Kind() string    { return "Range" }
func (e *RangeError) Message() string { return e.Msg }
func (e *RangeError) Unwrap() error   { return e.Cause }
func (e *RangeError) CausedBy(cause error) *RangeError {
	e.Cause = cause
	return e
}

// NewRangeError formats a new RangeError.
func NewRangeError(format string, args ...interface{}) *RangeError {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

// InternalError represents a broken runtime invariant, such as a cycle in a
// prototype or scope chain. It is not script-visible in a well-formed
// program.
type InternalError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *InternalError) Error() string   { return fmt.Sprintf("Internal Error: %s", e.Msg) }
func (e *InternalError) Kind() string    { return "Internal" }
func (e *InternalError) Message() string { return e.Msg }
func (e *InternalError) Unwrap() error   { return e.Cause }
func (e *InternalError) CausedBy(cause error) *InternalError {
	e.Cause = cause
	return e
}

// NewInternalError formats a new InternalError.
func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind tag of err if it is a ScriptError, or "" otherwise.
func KindOf(err error) string {
	var se ScriptError
	if goerrors.As(err, &se) {
		return se.Kind()
	}
	return ""
}

// IsType reports whether err is (or wraps) a TypeError.
func IsType(err error) bool {
	var te *TypeError
	return goerrors.As(err, &te)
}

// IsInternal reports whether err is (or wraps) an InternalError.
func IsInternal(err error) bool {
	var ie *InternalError
	return goerrors.As(err, &ie)
}
