// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/veldt-ui/veldt/types"
)

// Registry maps owner types to the properties they declare and host
// types to the attached properties usable on them. It is explicitly
// constructed and owned by the application context; tests build a
// fresh one per test. Like the descriptors it holds, registration is
// single-threaded by contract and lookups are safe once registration
// has settled.
type Registry struct {
	// properties maps owner type ID to declared properties, in
	// registration order.
	properties map[uint64][]Property

	// attached maps host type ID to the attached properties usable on
	// it, separate from the owner lists.
	attached map[uint64][]Property
}

// NewRegistry returns a new empty property [Registry].
func NewRegistry() *Registry {
	return &Registry{
		properties: make(map[uint64][]Property),
		attached:   make(map[uint64][]Property),
	}
}

// Register adds the property to the owner type's list. Registering
// the same property twice for one owner is a no-op. A second property
// with the same name shadows the earlier one in [Registry.Find].
func (r *Registry) Register(owner *types.Type, p Property) {
	if owner == nil || p == nil {
		panic("property: Registry.Register requires a non-nil owner type and property")
	}
	list := r.properties[owner.ID]
	for _, ep := range list {
		if ep.Equal(p) {
			slog.Debug("property.Registry.Register: property already registered", "Property", p.Name(), "Type", owner.Name)
			return
		}
		if ep.Name() == p.Name() {
			slog.Debug("property.Registry.Register: name shadows earlier registration", "Property", p.Name(), "Type", owner.Name)
		}
	}
	r.properties[owner.ID] = append(list, p)
}

// RegisterAttached adds the attached property to the host type's
// attached list.
func (r *Registry) RegisterAttached(host *types.Type, p Property) {
	if host == nil || p == nil {
		panic("property: Registry.RegisterAttached requires a non-nil host type and property")
	}
	if !p.IsAttached() {
		panic(fmt.Sprintf("property %s: RegisterAttached requires an attached property", p.Name()))
	}
	list := r.attached[host.ID]
	for _, ep := range list {
		if ep.Equal(p) {
			slog.Debug("property.Registry.RegisterAttached: property already registered", "Property", p.Name(), "Type", host.Name)
			return
		}
	}
	r.attached[host.ID] = append(list, p)
}

// Unregister removes the property from the owner type's lists,
// reporting whether anything was removed. Used by designer tooling to
// retract a live registration.
func (r *Registry) Unregister(owner *types.Type, p Property) bool {
	if owner == nil || p == nil {
		return false
	}
	removed := false
	if list, ok := r.properties[owner.ID]; ok {
		nl := slices.DeleteFunc(list, func(ep Property) bool { return ep.Equal(p) })
		removed = len(nl) != len(list)
		r.properties[owner.ID] = nl
	}
	if list, ok := r.attached[owner.ID]; ok {
		nl := slices.DeleteFunc(list, func(ep Property) bool { return ep.Equal(p) })
		removed = removed || len(nl) != len(list)
		r.attached[owner.ID] = nl
	}
	return removed
}

// Registered returns all properties usable on the given type: those
// declared by it and by its ancestors, most derived first, with
// duplicate IDs from derived re-registrations removed.
func (r *Registry) Registered(t *types.Type) []Property {
	var res []Property
	seen := map[uint64]bool{}
	for cur := t; cur != nil; cur = cur.Parent {
		for _, p := range r.properties[cur.ID] {
			if seen[p.ID()] {
				continue
			}
			seen[p.ID()] = true
			res = append(res, p)
		}
	}
	return res
}

// RegisteredAttached returns the attached properties usable on the
// given type and its ancestors, most derived first.
func (r *Registry) RegisteredAttached(t *types.Type) []Property {
	var res []Property
	seen := map[uint64]bool{}
	for cur := t; cur != nil; cur = cur.Parent {
		for _, p := range r.attached[cur.ID] {
			if seen[p.ID()] {
				continue
			}
			seen[p.ID()] = true
			res = append(res, p)
		}
	}
	return res
}

// Find returns the property with the given name usable on the given
// type, or nil if none is registered. Within one type, the latest
// registration wins; across types, the most derived wins. Attached
// properties are included.
func (r *Registry) Find(t *types.Type, name string) Property {
	for cur := t; cur != nil; cur = cur.Parent {
		list := r.properties[cur.ID]
		for i := len(list) - 1; i >= 0; i-- {
			if list[i].Name() == name {
				return list[i]
			}
		}
		alist := r.attached[cur.ID]
		for i := len(alist) - 1; i >= 0; i-- {
			if alist[i].Name() == name {
				return alist[i]
			}
		}
	}
	return nil
}

// IsRegistered reports whether the property is registered for the
// given type or any of its ancestors.
func (r *Registry) IsRegistered(t *types.Type, p Property) bool {
	if p == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.Parent {
		if slices.ContainsFunc(r.properties[cur.ID], p.Equal) {
			return true
		}
		if slices.ContainsFunc(r.attached[cur.ID], p.Equal) {
			return true
		}
	}
	return false
}
