// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package property implements the Veldt property system: typed
// property descriptors with per-host-type metadata, override/merge
// semantics, and untyped routing into a per-instance value store.
//
// Properties are registered during application or package
// initialization, before concurrent use begins; registration calls
// ([NewStyled], [AddOwner], [Property.OverrideMetadata],
// [Property.Unregister]) must not run concurrently. Once registration
// has settled, all read operations (metadata resolution, value
// validation, equality) are safe from multiple goroutines.
package property

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/veldt-ui/veldt/types"
)

// propertyIDCounter is an atomically incremented uint64 used for
// assigning new property ID numbers. IDs are globally unique and
// monotonic across all registries.
var propertyIDCounter uint64

// Property is the untyped interface to one named, typed property
// descriptor. Concrete descriptors are [StyledProperty],
// [DirectProperty], and [AttachedProperty]; the Route methods let an
// untyped caller reach their typed implementations.
type Property interface {
	fmt.Stringer

	// ID returns the unique, monotonically assigned property ID.
	// Two descriptors are the same property iff their IDs match,
	// so the ID is also usable as a map key or hash.
	ID() uint64

	// Name returns the property name, which contains no "." separator.
	Name() string

	// ValueType returns the declared value type of the property.
	ValueType() reflect.Type

	// OwnerType returns the type that declared this descriptor.
	OwnerType() *types.Type

	// Inherits returns whether instance values propagate to children
	// that do not set the property themselves.
	Inherits() bool

	// IsAttached returns whether this is an attached property, declared
	// by one type but hosted on unrelated types.
	IsAttached() bool

	// IsDirect returns whether this is a direct property, backed by a
	// plain field slot rather than prioritized layers.
	IsDirect() bool

	// IsReadOnly returns whether normal value sets are rejected.
	IsReadOnly() bool

	// Equal reports whether the two descriptors identify the same
	// property, comparing IDs only.
	Equal(other Property) bool

	// DefaultMetadata returns the property's default metadata record,
	// which applies to any type with no more specific registration.
	DefaultMetadata() *Metadata

	// Metadata resolves the effective metadata for the given type.
	Metadata(t *types.Type) *Metadata

	// MetadataFor resolves the effective metadata for the runtime type
	// of the given instance.
	MetadataFor(o Owner) *Metadata

	// HasMetadata reports whether metadata is directly registered for
	// the given type, not counting entries inherited through ancestry.
	HasMetadata(t *types.Type) bool

	// OverrideMetadata registers metadata for the given type, merged
	// with the metadata that would otherwise apply to it. It panics if
	// metadata is already registered for the type.
	OverrideMetadata(t *types.Type, m *Metadata)

	// Unregister removes a directly registered metadata entry for the
	// given type, reporting whether one was removed. All cached
	// resolutions are invalidated.
	Unregister(t *types.Type) bool

	// IsValidValue reports whether the value can be implicitly
	// converted to the property's declared value type.
	IsValidValue(v any) bool

	// Bind returns a binding descriptor targeting this property at
	// local-value priority.
	Bind() *BindingDescriptor

	// TemplateBind returns a binding descriptor targeting this property
	// at template priority.
	TemplateBind() *BindingDescriptor

	// RouteGetValue reads the property's effective value from the owner
	// through the descriptor's typed implementation.
	RouteGetValue(o Owner) any

	// RouteSetValue converts the untyped value to the declared value
	// type and sets it on the owner at the given priority. Setting
	// [Unset] clears the value instead.
	RouteSetValue(o Owner, v any, pr Priority) error

	// RouteClearValue clears the owner's local value for the property.
	RouteClearValue(o Owner)

	// RouteCoerceDefaultValue re-applies the effective metadata's
	// coercion to the owner's current value.
	RouteCoerceDefaultValue(o Owner)

	// RouteBind attaches the descriptor's binding source to the owner,
	// returning a stop function.
	RouteBind(o Owner, d *BindingDescriptor) (func(), error)

	// RouteSetCurrentValue sets the value at the owner's current
	// effective priority, without promoting it.
	RouteSetCurrentValue(o Owner, v any) error

	// RouteSetDirectValueUnchecked bypasses validation and coercion to
	// set a direct value slot. Only direct properties support it;
	// all other descriptors return [ErrNotSupported].
	RouteSetDirectValueUnchecked(o Owner, v any) error
}

// Option configures flags on a property descriptor at registration.
type Option func(p *propertyBase)

// Inherits makes instance values of the property propagate to child
// instances that do not set it themselves.
func Inherits() Option {
	return func(p *propertyBase) { p.inherits = true }
}

// ReadOnly makes the property reject normal value sets.
func ReadOnly() Option {
	return func(p *propertyBase) { p.readOnly = true }
}

// propertyBase holds the identity, flags, and metadata store common to
// all descriptor variants. The metadata store is shared between a
// property and its [AddOwner] copies, which have the same ID.
type propertyBase struct {
	this      Property // the concrete descriptor, for self-reference
	id        uint64
	name      string
	valueType reflect.Type
	ownerType *types.Type
	inherits  bool
	attached  bool
	direct    bool
	readOnly  bool
	store     *metadataStore
}

// newBase constructs the base for a primary registration: it assigns
// the next global ID, freezes the metadata, and establishes the
// single-registration fast path for the given host type.
// All arguments are validated before any state is mutated.
func newBase(name string, vt reflect.Type, owner, host *types.Type, m *Metadata, opts ...Option) propertyBase {
	switch {
	case name == "":
		panic("property: name must not be empty")
	case strings.Contains(name, "."):
		panic(fmt.Sprintf("property: name %q must not contain a %q separator", name, "."))
	case vt == nil:
		panic(fmt.Sprintf("property %s: value type must not be nil", name))
	case owner == nil:
		panic(fmt.Sprintf("property %s: owner type must not be nil", name))
	case host == nil:
		panic(fmt.Sprintf("property %s: host type must not be nil", name))
	case m == nil:
		panic(fmt.Sprintf("property %s: metadata must not be nil", name))
	case m.IsFrozen():
		panic(fmt.Sprintf("property %s: metadata is already in use by another property", name))
	}
	if m.DefaultBindingMode == BindingUnset {
		m.DefaultBindingMode = BindingOneWay
	}
	m.Freeze()
	pb := propertyBase{
		id:        atomic.AddUint64(&propertyIDCounter, 1),
		name:      name,
		valueType: vt,
		ownerType: owner,
		store:     newMetadataStore(host, m),
	}
	for _, opt := range opts {
		opt(&pb)
	}
	return pb
}

// copyBase constructs the base for a derived/copy registration: the
// name, value type, ID, flags, and metadata store are shared with the
// source; only the owner type differs.
func copyBase(src *propertyBase, owner *types.Type) propertyBase {
	if owner == nil {
		panic(fmt.Sprintf("property %s: owner type must not be nil", src.name))
	}
	pb := *src
	pb.this = nil
	pb.ownerType = owner
	return pb
}

func (p *propertyBase) String() string          { return p.name }
func (p *propertyBase) ID() uint64              { return p.id }
func (p *propertyBase) Name() string            { return p.name }
func (p *propertyBase) ValueType() reflect.Type { return p.valueType }
func (p *propertyBase) OwnerType() *types.Type  { return p.ownerType }
func (p *propertyBase) Inherits() bool          { return p.inherits }
func (p *propertyBase) IsAttached() bool        { return p.attached }
func (p *propertyBase) IsDirect() bool          { return p.direct }
func (p *propertyBase) IsReadOnly() bool        { return p.readOnly }

// Equal reports whether the two descriptors identify the same
// property. Equality is ID-based, never structural: descriptors with
// coinciding names and types but different IDs are not equal.
func (p *propertyBase) Equal(other Property) bool {
	return other != nil && p.id == other.ID()
}

// DefaultMetadata returns the property's default metadata record.
func (p *propertyBase) DefaultMetadata() *Metadata {
	return p.store.defaultMeta
}

// Metadata resolves the effective metadata for the given type,
// walking from the type to its least-derived ancestor and falling
// back to the default metadata.
func (p *propertyBase) Metadata(t *types.Type) *Metadata {
	if t == nil {
		return p.store.defaultMeta
	}
	return p.store.resolve(t)
}

// MetadataFor resolves the effective metadata for the runtime type of
// the given instance.
func (p *propertyBase) MetadataFor(o Owner) *Metadata {
	if o == nil {
		return p.store.defaultMeta
	}
	return p.Metadata(o.ObjectType())
}

// HasMetadata reports whether metadata is directly registered for the
// given type.
func (p *propertyBase) HasMetadata(t *types.Type) bool {
	if t == nil {
		return false
	}
	_, ok := p.store.values[t.ID]
	return ok
}

// OverrideMetadata registers metadata for the given type. The record
// is first merged with the metadata that would otherwise apply to the
// type, so unset fields fall back to the effective base, then frozen
// and stored. A default value must convert to the property's declared
// value type and is stored converted, so typed and untyped readers
// agree. Registering twice for the same type is a programmer error
// and panics, leaving the first registration intact.
func (p *propertyBase) OverrideMetadata(t *types.Type, m *Metadata) {
	switch {
	case t == nil:
		panic(fmt.Sprintf("property %s: override type must not be nil", p.name))
	case m == nil:
		panic(fmt.Sprintf("property %s: override metadata must not be nil", p.name))
	case m.IsFrozen():
		panic(fmt.Sprintf("property %s: override metadata is already in use", p.name))
	}
	if m.Default != nil {
		dv, ok := ConvertTo(m.Default, p.valueType)
		if !ok {
			panic(fmt.Sprintf("property %s: override default value %v (%T) is not a valid %s",
				p.name, m.Default, m.Default, p.valueType))
		}
		m.Default = dv
	}
	merged := m.Merge(p.store.resolve(t))
	merged.Freeze()
	p.store.add(p.name, t, merged)
	m.Freeze()
}

// Unregister removes the directly registered metadata entry for the
// given type, if any, reporting whether one was removed. The entire
// resolution cache is invalidated, so descendant types re-resolve on
// next lookup. The fast path is never re-enabled.
func (p *propertyBase) Unregister(t *types.Type) bool {
	if t == nil {
		return false
	}
	return p.store.remove(t)
}

// IsValidValue reports whether the value can be implicitly converted
// to the property's declared value type. It never panics.
func (p *propertyBase) IsValidValue(v any) bool {
	_, ok := ConvertTo(v, p.valueType)
	return ok
}

// Bind returns a binding descriptor targeting this property at
// local-value priority, for use by binding construction.
func (p *propertyBase) Bind() *BindingDescriptor {
	return &BindingDescriptor{Property: p.this, Priority: PriorityLocalValue}
}

// TemplateBind returns a binding descriptor targeting this property
// at template priority.
func (p *propertyBase) TemplateBind() *BindingDescriptor {
	return &BindingDescriptor{Property: p.this, Priority: PriorityTemplate}
}

// RouteSetDirectValueUnchecked fails with [ErrNotSupported]; only
// [DirectProperty] overrides it.
func (p *propertyBase) RouteSetDirectValueUnchecked(o Owner, v any) error {
	return fmt.Errorf("property %s: %w: direct value set on non-direct property", p.name, ErrNotSupported)
}

// metadataStore holds the per-host-type metadata registrations for one
// property, the derived resolution cache, and the single-registration
// fast-path fields. It is shared between a property and its AddOwner
// copies.
//
// The store has two states: single-metadata (fast path active) and
// multi-metadata (cache/walk). The transition is one-way, triggered by
// the first registration after construction.
type metadataStore struct {
	// defaultMeta applies to any type with no registered entry on the
	// walk to the root. It is the primary registration's metadata.
	defaultMeta *Metadata

	// values maps host type ID to its directly registered, frozen
	// metadata. Mutated only during registration.
	values map[uint64]*Metadata

	// cache maps an exact queried type ID to its resolved metadata.
	// Only the queried type is cached, not the whole ancestry chain,
	// to bound cache growth. Racy rebuilds converge to the same value.
	cache sync.Map // map[uint64]*Metadata

	// singleHost and singleMeta are the fast-path fields, set while
	// exactly one registration exists; nil once multi is set.
	singleHost *types.Type
	singleMeta *Metadata
	multi      bool

	// resolution counters
	fastHits  uint64
	cacheHits uint64
	walks     uint64
}

func newMetadataStore(host *types.Type, m *Metadata) *metadataStore {
	return &metadataStore{
		defaultMeta: m,
		values:      map[uint64]*Metadata{host.ID: m},
		singleHost:  host,
		singleMeta:  m,
	}
}

// resolve returns the effective metadata for the given type.
func (ms *metadataStore) resolve(t *types.Type) *Metadata {
	if !ms.multi {
		atomic.AddUint64(&ms.fastHits, 1)
		if ms.singleHost != nil && t.HasAncestor(ms.singleHost) {
			return ms.singleMeta
		}
		return ms.defaultMeta
	}
	if m, ok := ms.cache.Load(t.ID); ok {
		atomic.AddUint64(&ms.cacheHits, 1)
		return m.(*Metadata)
	}
	atomic.AddUint64(&ms.walks, 1)
	res := ms.defaultMeta
	for cur := t; cur != nil; cur = cur.Parent {
		if m, ok := ms.values[cur.ID]; ok {
			res = m
			break
		}
	}
	ms.cache.Store(t.ID, res)
	return res
}

// add stores a frozen metadata record for the given type, clears the
// resolution cache, and permanently disables the fast path. It panics
// if an entry for the type already exists.
func (ms *metadataStore) add(pname string, t *types.Type, m *Metadata) {
	if _, exists := ms.values[t.ID]; exists {
		panic(fmt.Sprintf("property %s: metadata already registered for type %s", pname, t.Name))
	}
	ms.values[t.ID] = m
	ms.cache.Clear()
	ms.singleHost = nil
	ms.singleMeta = nil
	ms.multi = true
}

// remove deletes the direct entry for the given type and invalidates
// the entire resolution cache.
func (ms *metadataStore) remove(t *types.Type) bool {
	if _, ok := ms.values[t.ID]; !ok {
		return false
	}
	delete(ms.values, t.ID)
	ms.cache.Clear()
	if !ms.multi && ms.singleHost != nil && ms.singleHost.ID == t.ID {
		ms.singleHost = nil
		ms.singleMeta = nil
	}
	return true
}

// stats returns the resolution counters.
func (ms *metadataStore) stats() (fastHits, cacheHits, walks uint64) {
	return atomic.LoadUint64(&ms.fastHits), atomic.LoadUint64(&ms.cacheHits), atomic.LoadUint64(&ms.walks)
}
