// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import "github.com/veldt-ui/veldt/types"

// Priority identifies the layer a value was set at in an owner's
// effective value store. Lower values win: an animation value takes
// precedence over a local value, which takes precedence over values
// coming from templates and styles.
type Priority int32

const (
	PriorityAnimation Priority = iota
	PriorityLocalValue
	PriorityStyleTrigger
	PriorityTemplate
	PriorityStyle

	// PriorityUnset means no value is set at any layer.
	PriorityUnset
)

func (pr Priority) String() string {
	switch pr {
	case PriorityAnimation:
		return "Animation"
	case PriorityLocalValue:
		return "LocalValue"
	case PriorityStyleTrigger:
		return "StyleTrigger"
	case PriorityTemplate:
		return "Template"
	case PriorityStyle:
		return "Style"
	default:
		return "Unset"
	}
}

// Owner is the effective value store that property descriptors route
// into: one per instance, holding its resolved per-property values.
// The [github.com/veldt-ui/veldt/object] package provides the standard
// implementation.
type Owner interface {
	// ObjectType returns the instance's registered type, used for
	// metadata resolution.
	ObjectType() *types.Type

	// Value returns the effective value of the property, or [Unset]
	// if no value is set and the effective metadata has no default.
	Value(p Property) any

	// SetValue validates, coerces, and stores a value at the given
	// priority.
	SetValue(p Property, v any, pr Priority) error

	// SetCurrentValue stores a value at the current effective priority
	// without promoting it.
	SetCurrentValue(p Property, v any) error

	// ClearValue removes the local value of the property.
	ClearValue(p Property)

	// CoerceValue re-applies the effective metadata's coercion to the
	// stored values of the property.
	CoerceValue(p Property)

	// Bind subscribes the binding source so produced values are set on
	// the property at the given priority; the returned function stops
	// the subscription.
	Bind(p Property, b Binding, pr Priority) (func(), error)
}

// DirectValueOwner is implemented by owners that expose unchecked
// direct value slots for [DirectProperty].
type DirectValueOwner interface {
	Owner

	// SetDirectValueUnchecked stores a direct value bypassing
	// validation, coercion, and the read-only flag.
	SetDirectValueUnchecked(p Property, v any) error
}
