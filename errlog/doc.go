// Package errlog pairs error logging with typed recovery handlers.
//
// Each handler is bound to a named error kind whose result type is fixed
// at compile time:
//
//	var Validation = errlog.NewKind[int]("ValidationError")
//
//	reg, err := errlog.NewRegistry(builder,
//	    errlog.On(Validation, func(err error) (int, error) { return 9, nil }),
//	)
//
//	n, err := errlog.Dispatch(reg, Validation, verr) // n is an int
//
// Every error passed to a Registry is logged exactly once, under the
// context "<kind>Log", before its handler runs. A missing handler, a
// failing handler and a panicking handler are all reported as errors and
// never terminate the process.
//
// The kind of an error is taken from its Kind method when it (or an error
// it wraps) implements Kinder, and from its dynamic type name otherwise.
package errlog
