// Package pretty renders arbitrary Go values as indented, human-readable
// text for log messages.
//
// Maps, structs, slices and arrays become multi-line blocks, one element
// per line, indented by two spaces per nesting level:
//
//	{
//	  name: api,
//	  ports: [
//	    80,
//	    443,
//	  ],
//	}
//
// Empty containers render as {} and []. Map keys are sorted so output is
// stable. Values implementing fmt.Stringer or error are treated as leaves.
// Inputs must be acyclic.
package pretty

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

const indentUnit = "  "

var (
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// Format renders v at nesting level zero.
func Format(v any) string {
	return FormatIndent(v, 0)
}

// FormatIndent renders v as if it were nested indent levels deep.
func FormatIndent(v any, indent int) string {
	var b strings.Builder
	p := printer{b: &b, leaf: valueLeaf}
	p.write(reflect.ValueOf(v), indent)
	return b.String()
}

// Types renders the structure of v with every leaf replaced by the name
// of its type.
func Types(v any) string {
	return TypesIndent(v, 0)
}

// TypesIndent is Types starting at the given nesting level.
func TypesIndent(v any, indent int) string {
	var b strings.Builder
	p := printer{b: &b, leaf: typeLeaf}
	p.write(reflect.ValueOf(v), indent)
	return b.String()
}

// IsComposite reports whether v renders as a multi-line block rather
// than a single leaf.
func IsComposite(v any) bool {
	rv := deref(reflect.ValueOf(v))
	if !rv.IsValid() || isLeafType(rv.Type()) {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

type printer struct {
	b    *strings.Builder
	leaf func(reflect.Value) string
}

func (p printer) write(v reflect.Value, indent int) {
	v = deref(v)
	if !v.IsValid() || isLeafType(v.Type()) {
		p.b.WriteString(p.leaf(v))
		return
	}

	switch v.Kind() {
	case reflect.Map:
		p.writeMap(v, indent)
	case reflect.Slice, reflect.Array:
		p.writeList(v, indent)
	case reflect.Struct:
		p.writeStruct(v, indent)
	default:
		p.b.WriteString(p.leaf(v))
	}
}

func (p printer) writeMap(v reflect.Value, indent int) {
	if v.Len() == 0 {
		p.b.WriteString("{}")
		return
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})

	pad := strings.Repeat(indentUnit, indent)
	p.b.WriteString("{\n")
	for _, k := range keys {
		p.b.WriteString(pad)
		p.b.WriteString(indentUnit)
		p.b.WriteString(fmt.Sprint(k))
		p.b.WriteString(": ")
		p.write(v.MapIndex(k), indent+1)
		p.b.WriteString(",\n")
	}
	p.b.WriteString(pad)
	p.b.WriteByte('}')
}

func (p printer) writeList(v reflect.Value, indent int) {
	if v.Len() == 0 {
		p.b.WriteString("[]")
		return
	}

	pad := strings.Repeat(indentUnit, indent)
	p.b.WriteString("[\n")
	for i := 0; i < v.Len(); i++ {
		p.b.WriteString(pad)
		p.b.WriteString(indentUnit)
		p.write(v.Index(i), indent+1)
		p.b.WriteString(",\n")
	}
	p.b.WriteString(pad)
	p.b.WriteByte(']')
}

func (p printer) writeStruct(v reflect.Value, indent int) {
	t := v.Type()
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	if len(fields) == 0 {
		p.b.WriteString("{}")
		return
	}

	pad := strings.Repeat(indentUnit, indent)
	p.b.WriteString("{\n")
	for _, i := range fields {
		p.b.WriteString(pad)
		p.b.WriteString(indentUnit)
		p.b.WriteString(t.Field(i).Name)
		p.b.WriteString(": ")
		p.write(v.Field(i), indent+1)
		p.b.WriteString(",\n")
	}
	p.b.WriteString(pad)
	p.b.WriteByte('}')
}

// deref follows interfaces and non-nil pointers down to the value they
// hold. Nil pointers are returned as-is.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() {
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		case reflect.Pointer:
			if v.IsNil() || isLeafType(v.Type()) {
				return v
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}

func isLeafType(t reflect.Type) bool {
	return t.Implements(stringerType) || t.Implements(errorType)
}

func valueLeaf(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return "<nil>"
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v)
}

func typeLeaf(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
