// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"reflect"

	"github.com/veldt-ui/veldt/types"
)

// StyledProperty is a property whose effective value is resolved
// through prioritized layers (animations, local values, templates,
// styles) in the owner's value store. The type parameter gives the
// typed API; the Route methods give untyped callers access to it.
type StyledProperty[T any] struct {
	propertyBase
}

// NewStyled performs the primary registration of a styled property:
// it assigns the next global ID, freezes the metadata, and registers
// it for the owner type, which also hosts the metadata. If the
// metadata carries a default value it must convert to T.
func NewStyled[T any](name string, owner *types.Type, m *Metadata, opts ...Option) *StyledProperty[T] {
	if m != nil {
		normalizeDefault[T](name, m)
	}
	p := &StyledProperty[T]{}
	p.propertyBase = newBase(name, reflect.TypeFor[T](), owner, owner, m, opts...)
	p.this = p
	return p
}

// AddOwner performs a derived/copy registration: the returned
// descriptor shares the source property's name, value type, ID, and
// metadata store, but is owned by the given type. If override
// metadata is supplied it is frozen and stored for the new owner type
// as-is; the resolution walk supplies fallback to less derived
// registrations. Both descriptors compare [Property.Equal].
func AddOwner[T any](src *StyledProperty[T], owner *types.Type, m *Metadata) *StyledProperty[T] {
	p := &StyledProperty[T]{}
	p.propertyBase = copyBase(&src.propertyBase, owner)
	p.this = p
	if m != nil {
		if m.IsFrozen() {
			panic(fmt.Sprintf("property %s: override metadata is already in use", p.name))
		}
		normalizeDefault[T](p.name, m)
		m.Freeze()
		p.store.add(p.name, owner, m)
	}
	return p
}

// normalizeDefault converts the metadata default to T, so typed
// getters never see a differently typed default. Panics if the value
// does not convert, before any instance can observe it.
func normalizeDefault[T any](name string, m *Metadata) {
	if m == nil || m.Default == nil {
		return
	}
	dv, ok := convertTo[T](m.Default)
	if !ok {
		panic(fmt.Sprintf("property %s: default value %v (%T) is not a valid %s",
			name, m.Default, m.Default, reflect.TypeFor[T]()))
	}
	m.Default = dv
}

// Get returns the typed effective value of the property on the owner,
// or the zero value when the owner reports [Unset].
func (p *StyledProperty[T]) Get(o Owner) T {
	v := o.Value(p.this)
	tv, _ := convertTo[T](v)
	return tv
}

// Set validates, coerces, and stores the typed value on the owner at
// local-value priority.
func (p *StyledProperty[T]) Set(o Owner, v T) error {
	return o.SetValue(p.this, v, PriorityLocalValue)
}

// SetAt stores the typed value on the owner at the given priority.
func (p *StyledProperty[T]) SetAt(o Owner, v T, pr Priority) error {
	return o.SetValue(p.this, v, pr)
}

// RouteGetValue reads the effective value from the owner.
func (p *StyledProperty[T]) RouteGetValue(o Owner) any {
	return o.Value(p.this)
}

// RouteSetValue converts the untyped value to T and sets it at the
// given priority. Setting [Unset] clears the value instead.
func (p *StyledProperty[T]) RouteSetValue(o Owner, v any, pr Priority) error {
	if v == Unset {
		o.ClearValue(p.this)
		return nil
	}
	tv, ok := convertTo[T](v)
	if !ok {
		return fmt.Errorf("property %s: %w: %v (%T) is not a valid %s",
			p.name, ErrInvalidValue, v, v, p.valueType)
	}
	return o.SetValue(p.this, tv, pr)
}

// RouteClearValue clears the owner's local value for the property.
func (p *StyledProperty[T]) RouteClearValue(o Owner) {
	o.ClearValue(p.this)
}

// RouteCoerceDefaultValue re-applies the effective metadata's coercion
// to the owner's stored values.
func (p *StyledProperty[T]) RouteCoerceDefaultValue(o Owner) {
	o.CoerceValue(p.this)
}

// RouteBind attaches the descriptor's source to the owner at the
// descriptor's priority.
func (p *StyledProperty[T]) RouteBind(o Owner, d *BindingDescriptor) (func(), error) {
	if d == nil || d.Source == nil {
		return nil, fmt.Errorf("property %s: binding descriptor has no source", p.name)
	}
	return o.Bind(p.this, d.Source, d.Priority)
}

// RouteSetCurrentValue converts the untyped value to T and sets it at
// the owner's current effective priority.
func (p *StyledProperty[T]) RouteSetCurrentValue(o Owner, v any) error {
	tv, ok := convertTo[T](v)
	if !ok {
		return fmt.Errorf("property %s: %w: %v (%T) is not a valid %s",
			p.name, ErrInvalidValue, v, v, p.valueType)
	}
	return o.SetCurrentValue(p.this, tv)
}
