package list

import "reflect"

// EqualFunc reports whether two elements are the same element. It drives
// Contains, IndexOf and Remove.
type EqualFunc[T any] func(a, b T) bool

// Equal is the natural equality for comparable element types. Like ==, it
// panics when T is an interface type and both values hold the same
// uncomparable dynamic type.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// defaultEqual is the equality installed by New, FromSlice and FromSeq. It is
// Equal unless T can carry an interface value, in which case values that
// cannot be compared with == fall back to reflect.DeepEqual.
func defaultEqual[T comparable]() EqualFunc[T] {
	if holdsInterface(reflect.TypeFor[T]()) {
		return dynamicEqual[T]
	}
	return Equal[T]
}

func dynamicEqual[T comparable](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if va.Comparable() && vb.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(any(a), any(b))
}

// holdsInterface reports whether == on t may compare interface values.
func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// isAbsent reports whether v is the nil form of its type. Value types are
// never absent.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
