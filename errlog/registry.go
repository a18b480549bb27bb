package errlog

import (
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/philipp01105/logify/logger"
	"github.com/philipp01105/logify/metrics"
)

const (
	// BaseContext is the context of the registry's own logger
	BaseContext = "ErrorLog"
	// ExceptionContext is the context of diagnostics about dispatch itself
	ExceptionContext = "ErrorHandlerException"
	// NoHandlerMessage is logged when an error's kind has no handler
	NoHandlerMessage = "This error has no handler function registered"
)

// Registry logs errors and runs the handler registered for their kind.
// It holds no errors between calls.
type Registry struct {
	log      *logger.Logger
	handlers map[string]handlerFunc
	metrics  metrics.Recorder
}

// NewRegistry creates a registry with its own error-level logger built
// from a copy of b; b itself is not modified and may be nil.
func NewRegistry(b *logger.Builder, bindings ...Binding) (*Registry, error) {
	if b == nil {
		b = logger.NewBuilder()
	}

	handlers := make(map[string]handlerFunc, len(bindings))
	for _, binding := range bindings {
		if binding.kind == "" {
			return nil, ErrEmptyKind
		}
		if _, exists := handlers[binding.kind]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKind, binding.kind)
		}
		handlers[binding.kind] = binding.handle
	}

	log, err := b.Clone().
		WithLevel(logger.ErrorLevel).
		WithContext(BaseContext).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build error logger: %w", err)
	}

	return &Registry{
		log:      log,
		handlers: handlers,
		metrics:  log.Metrics(),
	}, nil
}

// Logger returns the registry's logger
func (r *Registry) Logger() *logger.Logger {
	return r.log
}

// Kinds returns the registered kinds in sorted order
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Has reports whether a handler is registered for kind
func (r *Registry) Has(kind string) bool {
	_, ok := r.handlers[kind]
	return ok
}

// message builds the logged text: the error's message, then its trace
func message(kind string, err error) string {
	return err.Error() + "\n" + kind + " Stack Trace:\n" + StackOf(err)
}

// LogError writes err to the console under the context "<kind>Log"
func (r *Registry) LogError(err error) {
	if err == nil {
		return
	}
	kind := KindOf(err)
	r.log.OverrideContext(kind+"Log").Error(message(kind, err))
}

// LogErrorToFile appends err to the error log file under the context
// "<kind>Log".
func (r *Registry) LogErrorToFile(err error) error {
	if err == nil {
		return nil
	}
	kind := KindOf(err)
	return r.log.OverrideContext(kind + "Log").ErrorToFile(message(kind, err))
}

// sink selects where a dispatch logs: the console or the error file
type sink struct {
	r      *Registry
	toFile bool
}

func (s sink) logError(err error) error {
	if s.toFile {
		return s.r.LogErrorToFile(err)
	}
	s.r.LogError(err)
	return nil
}

func (s sink) exception(msg string) error {
	l := s.r.log.OverrideContext(ExceptionContext)
	if s.toFile {
		return l.ErrorToFile(msg)
	}
	l.Error(msg)
	return nil
}

// dispatch logs err, then runs the handler for kind. Errors writing the
// log file are appended to the returned error.
func (s sink) dispatch(kind string, err error) (any, error) {
	logErr := s.logError(err)

	handle, ok := s.r.handlers[kind]
	if !ok {
		s.r.metrics.Dispatched(kind, metrics.OutcomeNoHandler)
		logErr = multierr.Append(logErr, s.exception(NoHandlerMessage))
		return nil, multierr.Append(&NoHandlerError{Kind: kind, Err: err}, logErr)
	}

	result, failure := invoke(kind, handle, err)
	if failure != nil {
		s.r.metrics.Dispatched(kind, metrics.OutcomeHandlerFailed)
		msg := fmt.Sprintf("Error in error handler for %s: %v", kind, failure.Err)
		logErr = multierr.Append(logErr, s.exception(msg))
		return nil, multierr.Append(failure, logErr)
	}

	s.r.metrics.Dispatched(kind, metrics.OutcomeHandled)
	return result, logErr
}

// invoke runs handle and converts a returned error or a panic into a
// *HandlerFailureError.
func invoke(kind string, handle handlerFunc, err error) (result any, failure *HandlerFailureError) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			failure = &HandlerFailureError{Kind: kind, Err: &panicError{value: p}, Panicked: true}
		}
	}()

	result, herr := handle(err)
	if herr != nil {
		return nil, &HandlerFailureError{Kind: kind, Err: herr}
	}
	return result, nil
}

// LogAndHandle logs err to the console and returns the result of the
// handler registered for its kind. A missing handler yields a
// *NoHandlerError; a failing or panicking handler yields a
// *HandlerFailureError. A nil err is neither logged nor handled.
func (r *Registry) LogAndHandle(err error) (any, error) {
	if err == nil {
		return nil, nil
	}
	return sink{r: r}.dispatch(KindOf(err), err)
}

// LogAndHandleToFile is LogAndHandle writing to the error log file. File
// write failures are reported alongside the dispatch outcome.
func (r *Registry) LogAndHandleToFile(err error) (any, error) {
	if err == nil {
		return nil, nil
	}
	return sink{r: r, toFile: true}.dispatch(KindOf(err), err)
}

// Dispatch logs err to the console and runs the handler registered for
// kind. It fails with a *KindMismatchError, after logging, when err is of
// another kind.
func Dispatch[R any](r *Registry, kind Kind[R], err error) (R, error) {
	return dispatchTyped(sink{r: r}, kind, err)
}

// DispatchToFile is Dispatch writing to the error log file
func DispatchToFile[R any](r *Registry, kind Kind[R], err error) (R, error) {
	return dispatchTyped(sink{r: r, toFile: true}, kind, err)
}

func dispatchTyped[R any](s sink, kind Kind[R], err error) (R, error) {
	var zero R
	if err == nil {
		return zero, nil
	}

	if got := KindOf(err); got != kind.name {
		logErr := s.logError(err)
		s.r.metrics.Dispatched(got, metrics.OutcomeKindMismatch)
		return zero, multierr.Append(&KindMismatchError{Want: kind.name, Got: got, Err: err}, logErr)
	}

	result, derr := s.dispatch(kind.name, err)
	typed, _ := result.(R)
	return typed, derr
}
