// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"reflect"

	"github.com/veldt-ui/veldt/types"
)

// DirectProperty is a property backed by a plain per-instance slot
// instead of prioritized layers. Sets always land at local-value
// priority, and it is the only variant supporting the unchecked
// direct-value route.
type DirectProperty[T any] struct {
	propertyBase
}

// NewDirect performs the primary registration of a direct property
// for the given owner type.
func NewDirect[T any](name string, owner *types.Type, m *Metadata, opts ...Option) *DirectProperty[T] {
	if m != nil {
		normalizeDefault[T](name, m)
	}
	p := &DirectProperty[T]{}
	p.propertyBase = newBase(name, reflect.TypeFor[T](), owner, owner, m, opts...)
	p.direct = true
	p.this = p
	return p
}

// Get returns the typed effective value of the property on the owner,
// or the zero value when the owner reports [Unset].
func (p *DirectProperty[T]) Get(o Owner) T {
	v := o.Value(p.this)
	tv, _ := convertTo[T](v)
	return tv
}

// Set validates, coerces, and stores the typed value on the owner.
func (p *DirectProperty[T]) Set(o Owner, v T) error {
	return o.SetValue(p.this, v, PriorityLocalValue)
}

// RouteGetValue reads the effective value from the owner.
func (p *DirectProperty[T]) RouteGetValue(o Owner) any {
	return o.Value(p.this)
}

// RouteSetValue converts the untyped value to T and sets it. Direct
// properties have no layers, so the priority is ignored and the value
// lands at local-value priority. Setting [Unset] clears the value.
func (p *DirectProperty[T]) RouteSetValue(o Owner, v any, pr Priority) error {
	if v == Unset {
		o.ClearValue(p.this)
		return nil
	}
	tv, ok := convertTo[T](v)
	if !ok {
		return fmt.Errorf("property %s: %w: %v (%T) is not a valid %s",
			p.name, ErrInvalidValue, v, v, p.valueType)
	}
	return o.SetValue(p.this, tv, PriorityLocalValue)
}

// RouteClearValue clears the owner's value for the property.
func (p *DirectProperty[T]) RouteClearValue(o Owner) {
	o.ClearValue(p.this)
}

// RouteCoerceDefaultValue re-applies the effective metadata's coercion
// to the owner's stored value.
func (p *DirectProperty[T]) RouteCoerceDefaultValue(o Owner) {
	o.CoerceValue(p.this)
}

// RouteBind attaches the descriptor's source to the owner.
func (p *DirectProperty[T]) RouteBind(o Owner, d *BindingDescriptor) (func(), error) {
	if d == nil || d.Source == nil {
		return nil, fmt.Errorf("property %s: binding descriptor has no source", p.name)
	}
	return o.Bind(p.this, d.Source, d.Priority)
}

// RouteSetCurrentValue converts the untyped value to T and sets it
// without promoting the current priority.
func (p *DirectProperty[T]) RouteSetCurrentValue(o Owner, v any) error {
	tv, ok := convertTo[T](v)
	if !ok {
		return fmt.Errorf("property %s: %w: %v (%T) is not a valid %s",
			p.name, ErrInvalidValue, v, v, p.valueType)
	}
	return o.SetCurrentValue(p.this, tv)
}

// RouteSetDirectValueUnchecked converts the untyped value to T and
// stores it directly, bypassing validation, coercion, and the
// read-only flag. The owner must implement [DirectValueOwner].
func (p *DirectProperty[T]) RouteSetDirectValueUnchecked(o Owner, v any) error {
	dvo, ok := o.(DirectValueOwner)
	if !ok {
		return fmt.Errorf("property %s: %w: owner %T has no direct value slots", p.name, ErrNotSupported, o)
	}
	tv, ok := convertTo[T](v)
	if !ok {
		return fmt.Errorf("property %s: %w: %v (%T) is not a valid %s",
			p.name, ErrInvalidValue, v, v, p.valueType)
	}
	return dvo.SetDirectValueUnchecked(p.this, tv)
}
