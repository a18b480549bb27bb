package inspect

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipp01105/logify/errlog"
	"github.com/philipp01105/logify/logger"
	"github.com/philipp01105/logify/pretty"
)

// DefaultContext is the context of the logger created by Default
const DefaultContext = "InspectionAction"

const (
	fnTag     = "[FnInspection]"
	methodTag = "[MethodInspection]"
	panicKind = "Panic"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ErrNotFunc is reported when Fn is given something that cannot be called
var ErrNotFunc = errors.New("inspect: not a function")

// Inspector logs calls through a Logger at debug level
type Inspector struct {
	log *logger.Logger
}

// NewInspector creates an inspector that logs through l
func NewInspector(l *logger.Logger) *Inspector {
	return &Inspector{log: l}
}

// Default creates an inspector with its own debug-level logger built from
// a copy of b, using the context "InspectionAction". b may be nil.
func Default(b *logger.Builder) (*Inspector, error) {
	if b == nil {
		b = logger.NewBuilder()
	}
	l, err := b.Clone().
		WithLevel(logger.DebugLevel).
		WithContext(DefaultContext).
		Build()
	if err != nil {
		return nil, err
	}
	return NewInspector(l), nil
}

// Logger returns the inspector's logger
func (i *Inspector) Logger() *logger.Logger {
	return i.log
}

// Result is the outcome of an asynchronous inspection. Err is set when
// the call failed, panicked or was abandoned because its context ended.
type Result struct {
	Values []any
	Err    error
}

// call describes one inspected invocation
type call struct {
	tag    string
	name   string
	fn     reflect.Value
	args   []any
	detail bool
}

// Fn calls fn with args and logs the call. It returns fn's results, or
// nil when the call panicked.
func (i *Inspector) Fn(fn any, args ...any) []any {
	values, _ := i.run(i.fnCall(fn, args, false))
	return values
}

// FnInDetail is Fn with composite argument and result types spelled out
func (i *Inspector) FnInDetail(fn any, args ...any) []any {
	values, _ := i.run(i.fnCall(fn, args, true))
	return values
}

// Method calls the method called name on recv with args and logs the
// call.
func (i *Inspector) Method(recv any, name string, args ...any) []any {
	values, _ := i.run(i.methodCall(recv, name, args, false))
	return values
}

// MethodInDetail is Method with composite argument and result types
// spelled out.
func (i *Inspector) MethodInDetail(recv any, name string, args ...any) []any {
	values, _ := i.run(i.methodCall(recv, name, args, true))
	return values
}

// FnAsync runs Fn on a new goroutine. The returned channel receives
// exactly one Result and is then closed.
func (i *Inspector) FnAsync(ctx context.Context, fn any, args ...any) <-chan Result {
	return i.async(ctx, i.fnCall(fn, args, false))
}

// FnAsyncInDetail runs FnInDetail on a new goroutine
func (i *Inspector) FnAsyncInDetail(ctx context.Context, fn any, args ...any) <-chan Result {
	return i.async(ctx, i.fnCall(fn, args, true))
}

// MethodAsync runs Method on a new goroutine
func (i *Inspector) MethodAsync(ctx context.Context, recv any, name string, args ...any) <-chan Result {
	return i.async(ctx, i.methodCall(recv, name, args, false))
}

// MethodAsyncInDetail runs MethodInDetail on a new goroutine
func (i *Inspector) MethodAsyncInDetail(ctx context.Context, recv any, name string, args ...any) <-chan Result {
	return i.async(ctx, i.methodCall(recv, name, args, true))
}

func (i *Inspector) fnCall(fn any, args []any, detail bool) call {
	v := reflect.ValueOf(fn)
	c := call{tag: fnTag, fn: v, args: args, detail: detail}
	if v.Kind() == reflect.Func && !v.IsNil() {
		c.name = funcName(v)
	}
	return c
}

func (i *Inspector) methodCall(recv any, name string, args []any, detail bool) call {
	c := call{tag: methodTag, name: name, args: args, detail: detail}
	if recv != nil {
		c.fn = reflect.ValueOf(recv).MethodByName(name)
	}
	return c
}

// async runs c on its own goroutine. A context that ends first yields
// ctx.Err(); the call itself keeps running and is still logged.
func (i *Inspector) async(ctx context.Context, c call) <-chan Result {
	out := make(chan Result, 1)
	done := make(chan Result, 1)

	go func() {
		values, err := i.run(c)
		done <- Result{Values: values, Err: err}
	}()

	go func() {
		defer close(out)
		select {
		case <-ctx.Done():
			out <- Result{Err: ctx.Err()}
		case r := <-done:
			out <- r
		}
	}()

	return out
}

// run performs the call. Failures are logged and returned; successful
// calls are logged at debug level.
func (i *Inspector) run(c call) (values []any, err error) {
	if !c.fn.IsValid() || c.fn.Kind() != reflect.Func || c.fn.IsNil() {
		if c.tag == methodTag {
			err = fmt.Errorf("%w: no method %s", ErrNotFunc, c.name)
		} else {
			err = ErrNotFunc
		}
		i.log.Error(err.Error())
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			perr := errlog.New(panicKind, fmt.Sprint(p))
			i.logFailure(perr)
			values, err = nil, perr
		}
	}()

	in, err := arguments(c.fn.Type(), c.args)
	if err != nil {
		i.log.Error(err.Error())
		return nil, err
	}

	out := c.fn.Call(in)
	values = make([]any, len(out))
	for k, v := range out {
		values[k] = v.Interface()
	}

	if n := len(out); n > 0 && c.fn.Type().Out(n-1) == errorType && !out[n-1].IsNil() {
		err = out[n-1].Interface().(error)
		i.logFailure(err)
		return values, err
	}

	if i.log.Enabled(logger.DebugLevel) {
		i.log.Debug(c.message(values))
	}
	return values, nil
}

func (i *Inspector) logFailure(err error) {
	i.log.Error(err.Error() + "\n" + errlog.StackOf(err))
}

// arguments converts args to call values for a function of type t. Nil
// arguments become the zero value of their parameter.
func arguments(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("inspect: want at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("inspect: want %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for k, arg := range args {
		var pt reflect.Type
		if t.IsVariadic() && k >= n-1 {
			pt = t.In(n - 1).Elem()
		} else {
			pt = t.In(k)
		}
		if arg == nil {
			in[k] = reflect.Zero(pt)
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("inspect: argument %d is %s, want %s", k, v.Type(), pt)
		}
		in[k] = v
	}
	return in, nil
}

// message renders "<tag> <name> <argTypes> => <results> <resultTypes>"
func (c call) message(results []any) string {
	argTypes := make([]string, len(c.args))
	for k, a := range c.args {
		argTypes[k] = typeOf(a, c.detail)
	}

	shown := results
	if n := len(results); n > 0 && c.fn.Type().Out(n-1) == errorType {
		shown = results[:n-1]
	}
	vals := make([]string, len(shown))
	resTypes := make([]string, len(shown))
	for k, r := range shown {
		vals[k] = valueOf(r)
		resTypes[k] = typeOf(r, c.detail)
	}

	rendered := strings.Join(vals, ", ")
	if len(shown) == 0 {
		rendered = "()"
	}

	return c.tag + " " + c.name +
		" <" + strings.Join(argTypes, ", ") + "> => " +
		rendered + " <" + strings.Join(resTypes, ", ") + ">"
}

func valueOf(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	if pretty.IsComposite(v) {
		return pretty.Format(v)
	}
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprint(v)
}

func typeOf(v any, detail bool) string {
	if v == nil {
		return "nil"
	}
	if detail && pretty.IsComposite(v) {
		return pretty.Types(v)
	}
	return reflect.TypeOf(v).String()
}

// funcName returns the function's name without its import path and
// package, e.g. "parse" or "Server.Start-fm".
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return v.Type().String()
	}
	name := f.Name()
	if k := strings.LastIndex(name, "/"); k >= 0 {
		name = name[k+1:]
	}
	if k := strings.Index(name, "."); k >= 0 {
		name = name[k+1:]
	}
	return name
}
