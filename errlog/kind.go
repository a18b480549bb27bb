package errlog

import (
	"errors"
	"reflect"
)

// Kinder is implemented by errors that name their own kind
type Kinder interface {
	Kind() string
}

// Kind names an error kind whose handlers produce an R
type Kind[R any] struct {
	name string
}

// NewKind declares an error kind
func NewKind[R any](name string) Kind[R] {
	return Kind[R]{name: name}
}

// Name returns the kind's name
func (k Kind[R]) Name() string {
	return k.name
}

// String implements fmt.Stringer
func (k Kind[R]) String() string {
	return k.name
}

// handlerFunc is the type-erased form of a bound handler
type handlerFunc func(error) (any, error)

// Binding ties a handler to a kind. Create it with On.
type Binding struct {
	kind   string
	handle handlerFunc
}

// Kind returns the bound kind's name
func (b Binding) Kind() string {
	return b.kind
}

// On binds fn to kind. The compiler checks that fn returns the kind's
// result type.
func On[R any](kind Kind[R], fn func(error) (R, error)) Binding {
	return Binding{
		kind: kind.name,
		handle: func(err error) (any, error) {
			return fn(err)
		},
	}
}

// KindOf returns the kind of err: the Kind of the first error in its chain
// implementing Kinder, otherwise the name of err's dynamic type with
// pointers stripped. Nil Kinders and empty kinds fall back to the type
// name. A nil error has no kind.
func KindOf(err error) string {
	if err == nil {
		return ""
	}

	var k Kinder
	if errors.As(err, &k) && !isNilPointer(k) {
		if kind := k.Kind(); kind != "" {
			return kind
		}
	}

	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
