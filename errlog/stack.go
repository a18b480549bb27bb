package errlog

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// NoStackTrace is logged in place of a trace for errors that carry none
const NoStackTrace = "no stack trace available"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

type traceStringer interface {
	StackTrace() string
}

// StackOf returns the stack trace carried by err or by an error it wraps.
// Both errors from this package and from github.com/pkg/errors are
// recognised.
func StackOf(err error) string {
	var ts traceStringer
	if errors.As(err, &ts) {
		return ts.StackTrace()
	}
	var st stackTracer
	if errors.As(err, &st) {
		return formatStack(st.StackTrace())
	}
	return NoStackTrace
}

func formatStack(st pkgerrors.StackTrace) string {
	return strings.TrimPrefix(fmt.Sprintf("%+v", st), "\n")
}

// Error is a kinded error that records where it was created
type Error struct {
	kind  string
	msg   string
	cause error
	stack pkgerrors.StackTrace
}

// New returns an error of the given kind with msg as its message
func New(kind, msg string) error {
	return newError(kind, msg, nil)
}

// Errorf returns an error of the given kind with a formatted message.
// %w verbs wrap their operands like fmt.Errorf does.
func Errorf(kind, format string, args ...any) error {
	wrapped := fmt.Errorf(format, args...)

	var cause error
	switch wrapped.(type) {
	case interface{ Unwrap() error }, interface{ Unwrap() []error }:
		cause = wrapped
	}
	return newError(kind, wrapped.Error(), cause)
}

// Wrap returns an error of the given kind that wraps cause. It returns
// nil when cause is nil.
func Wrap(kind string, cause error, msg string) error {
	if cause == nil {
		return nil
	}
	return newError(kind, msg+": "+cause.Error(), cause)
}

// newError must only be called directly by the exported constructors:
// the two innermost frames are dropped from the trace.
func newError(kind, msg string, cause error) *Error {
	st := pkgerrors.New("").(stackTracer).StackTrace()
	if len(st) > 2 {
		st = st[2:]
	}
	return &Error{kind: kind, msg: msg, cause: cause, stack: st}
}

// Error, Kind, Unwrap and StackTrace accept a nil receiver

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

// Kind implements Kinder
func (e *Error) Kind() string {
	if e == nil {
		return ""
	}
	return e.kind
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// StackTrace renders the frames recorded when the error was created, one
// function and file:line pair per frame.
func (e *Error) StackTrace() string {
	if e == nil {
		return NoStackTrace
	}
	return formatStack(e.stack)
}
