package errlog

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKind is returned by NewRegistry when two bindings share a kind
	ErrDuplicateKind = errors.New("duplicate error kind")
	// ErrEmptyKind is returned by NewRegistry for a binding without a kind name
	ErrEmptyKind = errors.New("empty error kind")
)

// NoHandlerError reports an error whose kind has no registered handler
type NoHandlerError struct {
	Kind string
	Err  error
}

func (e *NoHandlerError) Error() string {
	return fmt.Sprintf("no handler registered for %s: %v", e.Kind, e.Err)
}

// Unwrap returns the unhandled error
func (e *NoHandlerError) Unwrap() error {
	return e.Err
}

// HandlerFailureError reports a handler that returned an error or panicked.
// Err is the handler's error, or the recovered value wrapped in an error.
type HandlerFailureError struct {
	Kind     string
	Err      error
	Panicked bool
}

func (e *HandlerFailureError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("handler for %s panicked: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("handler for %s failed: %v", e.Kind, e.Err)
}

// Unwrap returns the handler's error
func (e *HandlerFailureError) Unwrap() error {
	return e.Err
}

// KindMismatchError reports a typed dispatch of an error of another kind
type KindMismatchError struct {
	Want string
	Got  string
	Err  error
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("dispatch %s: error is of kind %s", e.Want, e.Got)
}

// Unwrap returns the dispatched error
func (e *KindMismatchError) Unwrap() error {
	return e.Err
}

// panicError carries a value recovered from a handler
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprint(e.value)
}

// Unwrap returns the recovered value when it is an error
func (e *panicError) Unwrap() error {
	err, _ := e.value.(error)
	return err
}
