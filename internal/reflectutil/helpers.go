package reflectutil

import "reflect"

// IsIntegerKind reports whether kind is one of the signed or unsigned integer kinds.
// Uintptr is excluded, it never maps to a GraphQL Int.
func IsIntegerKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// Indirect follows pointers and interfaces down to the concrete value.
// It reports false when v is invalid or a nil is met on the way, including a
// nil map, slice, chan or func at the end: such values print as GraphQL null.
//
//	var x **int
//	v, ok := Indirect(reflect.ValueOf(x)) // ok is false
func Indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return v, false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if v.IsNil() {
			return v, false
		}
	}
	return v, true
}
