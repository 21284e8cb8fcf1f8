// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object provides the standard per-instance effective value
// store that property descriptors route into. Each [Object] holds the
// resolved values of the properties set on it, layered by priority,
// and falls back to effective metadata defaults and to its parent for
// inheriting properties.
package object

import (
	"fmt"
	"log/slog"

	"github.com/veldt-ui/veldt/property"
	"github.com/veldt-ui/veldt/types"
)

// Object is one instance's effective value store. It is not safe for
// concurrent mutation; like widgets, an object belongs to one
// goroutine.
type Object struct {
	typ    *types.Type
	parent *Object

	// values holds the priority layers per property ID.
	values map[uint64]map[property.Priority]any

	// direct holds the plain slots of direct properties.
	direct map[uint64]any
}

// New returns a new [Object] of the given registered type.
func New(typ *types.Type) *Object {
	if typ == nil {
		panic("object: New requires a non-nil type")
	}
	return &Object{
		typ:    typ,
		values: make(map[uint64]map[property.Priority]any),
		direct: make(map[uint64]any),
	}
}

// ObjectType returns the object's registered type, used for metadata
// resolution.
func (o *Object) ObjectType() *types.Type {
	return o.typ
}

// Parent returns the object's parent, the source of inherited values.
func (o *Object) Parent() *Object {
	return o.parent
}

// SetParent sets the object's parent.
func (o *Object) SetParent(p *Object) {
	o.parent = p
}

// Value returns the effective value of the property: the strongest
// priority layer set on this object, else the parent's value for
// inheriting properties, else the effective metadata default, else
// [property.Unset].
func (o *Object) Value(p property.Property) any {
	if p.IsDirect() {
		if v, ok := o.direct[p.ID()]; ok {
			return v
		}
	} else {
		if v, pr := o.localValue(p); pr != property.PriorityUnset {
			return v
		}
		if p.Inherits() && o.parent != nil {
			return o.parent.Value(p)
		}
	}
	m := p.Metadata(o.typ)
	if m.Default != nil {
		return m.Default
	}
	return property.Unset
}

// localValue returns the strongest value set on this object itself
// and its priority, or [property.PriorityUnset] when none is set.
func (o *Object) localValue(p property.Property) (any, property.Priority) {
	slots, ok := o.values[p.ID()]
	if !ok {
		return nil, property.PriorityUnset
	}
	best := property.PriorityUnset
	var bv any
	for pr, v := range slots {
		if pr < best {
			best, bv = pr, v
		}
	}
	return bv, best
}

// SetValue validates, coerces, and stores a value for the property at
// the given priority. Setting [property.Unset] clears that priority
// layer instead; on a direct property it clears the slot.
func (o *Object) SetValue(p property.Property, v any, pr property.Priority) error {
	if p.IsReadOnly() {
		return fmt.Errorf("object: cannot set %s on %s: %w", p.Name(), o.typ.ShortName(), property.ErrReadOnly)
	}
	if v == property.Unset {
		if p.IsDirect() {
			delete(o.direct, p.ID())
			return nil
		}
		o.clearAt(p, pr)
		return nil
	}
	if !p.IsValidValue(v) {
		return fmt.Errorf("object: cannot set %s on %s: %w: %v (%T) is not a valid %s",
			p.Name(), o.typ.ShortName(), property.ErrInvalidValue, v, v, p.ValueType())
	}
	m := p.Metadata(o.typ)
	if m.Validate != nil && !m.Validate(v) {
		return fmt.Errorf("object: cannot set %s on %s: %w: %v rejected by validator",
			p.Name(), o.typ.ShortName(), property.ErrInvalidValue, v)
	}
	if m.Coerce != nil {
		v = m.Coerce(o, v)
	}
	if p.IsDirect() {
		o.direct[p.ID()] = v
		return nil
	}
	slots, ok := o.values[p.ID()]
	if !ok {
		slots = make(map[property.Priority]any)
		o.values[p.ID()] = slots
	}
	slots[pr] = v
	return nil
}

// SetCurrentValue stores a value at the object's current effective
// priority for the property, or at local-value priority when nothing
// is set, without promoting the value to a stronger layer.
func (o *Object) SetCurrentValue(p property.Property, v any) error {
	if p.IsDirect() {
		return o.SetValue(p, v, property.PriorityLocalValue)
	}
	_, pr := o.localValue(p)
	if pr == property.PriorityUnset {
		pr = property.PriorityLocalValue
	}
	return o.SetValue(p, v, pr)
}

// ClearValue removes the local value of the property: the local-value
// layer for styled properties, the slot for direct properties.
// Weaker layers (template, style) remain in effect.
func (o *Object) ClearValue(p property.Property) {
	if p.IsDirect() {
		delete(o.direct, p.ID())
		return
	}
	o.clearAt(p, property.PriorityLocalValue)
}

func (o *Object) clearAt(p property.Property, pr property.Priority) {
	if slots, ok := o.values[p.ID()]; ok {
		delete(slots, pr)
		if len(slots) == 0 {
			delete(o.values, p.ID())
		}
	}
}

// CoerceValue re-applies the effective metadata's coercion to all
// values stored for the property, including the direct slot.
func (o *Object) CoerceValue(p property.Property) {
	m := p.Metadata(o.typ)
	if m.Coerce == nil {
		return
	}
	if p.IsDirect() {
		if v, ok := o.direct[p.ID()]; ok {
			o.direct[p.ID()] = m.Coerce(o, v)
		}
		return
	}
	for pr, v := range o.values[p.ID()] {
		o.values[p.ID()][pr] = m.Coerce(o, v)
	}
}

// Bind subscribes the binding source, setting each produced value on
// the property at the given priority through the descriptor's typed
// route. The returned function stops the subscription. Values the
// route rejects are logged and dropped.
func (o *Object) Bind(p property.Property, b property.Binding, pr property.Priority) (func(), error) {
	if b == nil {
		return nil, fmt.Errorf("object: cannot bind %s on %s: nil binding", p.Name(), o.typ.ShortName())
	}
	stop := b.Observe(func(v any) {
		if err := p.RouteSetValue(o, v, pr); err != nil {
			slog.Error("object: bound value rejected", "Property", p.Name(), "Type", o.typ.Name, "err", err)
		}
	})
	return stop, nil
}

// SetDirectValueUnchecked stores a direct value bypassing validation,
// coercion, and the read-only flag. It implements
// [property.DirectValueOwner] for [property.DirectProperty] routing.
func (o *Object) SetDirectValueUnchecked(p property.Property, v any) error {
	o.direct[p.ID()] = v
	return nil
}
