// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import "reflect"

// ConvertTo attempts an implicit conversion of v into the given type,
// returning the converted value and whether the conversion succeeded.
// Assignable values pass through unchanged and numeric values convert
// across numeric kinds; anything further is rejected rather than
// guessed at. A nil v converts only to nilable types.
func ConvertTo(v any, t reflect.Type) (any, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return nil, true
		}
		return nil, false
	}
	vt := reflect.TypeOf(v)
	if vt.AssignableTo(t) {
		return v, true
	}
	if kindIsNumeric(vt.Kind()) && kindIsNumeric(t.Kind()) {
		return reflect.ValueOf(v).Convert(t).Interface(), true
	}
	return nil, false
}

// convertTo is the generic form of [ConvertTo], used by the typed
// descriptor variants to resolve untyped routed values.
func convertTo[T any](v any) (T, bool) {
	var zero T
	if tv, ok := v.(T); ok {
		return tv, true
	}
	cv, ok := ConvertTo(v, reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	if cv == nil {
		return zero, true
	}
	return cv.(T), true
}

func kindIsNumeric(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uint64) || k == reflect.Float32 || k == reflect.Float64
}
