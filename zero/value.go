// Package zero provides utilities for working with zero values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultStr = zero.Value[string]()     // returns ""
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual to perform a deep comparison between value and the zero value of T.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// IsNil reports whether value is absent: a nil interface, or a nil pointer,
// map, slice, channel or function. Values of non-nillable kinds are never nil,
// so IsNil(0) and IsNil("") are false.
//
// Example:
//
//	zero.IsNil[*MyStruct](nil) // true
//	zero.IsNil(0)              // false
func IsNil[T any](value T) bool {
	v := reflect.ValueOf(any(value))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
