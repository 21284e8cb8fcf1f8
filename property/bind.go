// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

// Binding is a source of values for a bound property. Observe must
// call fn with the current value and again on each change, until the
// returned stop function is called.
type Binding interface {
	Observe(fn func(v any)) (stop func())
}

// BindingFunc adapts a subscribe function to the [Binding] interface.
type BindingFunc func(fn func(v any)) (stop func())

func (b BindingFunc) Observe(fn func(v any)) (stop func()) {
	return b(fn)
}

// BindingDescriptor pairs a property with the priority and mode a
// binding to it should use. Descriptors are produced by
// [Property.Bind] and [Property.TemplateBind] and consumed by binding
// construction; attach a source and hand the descriptor to
// [Property.RouteBind].
type BindingDescriptor struct {
	// Property is the bound property.
	Property Property

	// Priority is the layer bound values are set at.
	Priority Priority

	// Mode overrides the effective metadata's default binding mode
	// when not [BindingUnset].
	Mode BindingMode

	// Source produces the bound values.
	Source Binding
}

// WithSource returns the descriptor with the given source attached.
func (d *BindingDescriptor) WithSource(b Binding) *BindingDescriptor {
	d.Source = b
	return d
}

// WithMode returns the descriptor with the given binding mode.
func (d *BindingDescriptor) WithMode(bm BindingMode) *BindingDescriptor {
	d.Mode = bm
	return d
}
