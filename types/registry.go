// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync/atomic"
)

// typeIDCounter is an atomically incremented uint64 used
// for assigning new [Type.ID] numbers.
var typeIDCounter uint64

// Registry holds the registered types for one application context,
// keyed by long type name. It is explicitly constructed and passed by
// reference; there is no process-wide singleton. All types must be
// registered before concurrent use begins: Add is not safe to call
// concurrently, while lookups and ancestry checks are safe once
// registration has settled.
type Registry struct {
	types map[string]*Type
}

// NewRegistry returns a new empty type [Registry].
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Add registers a type with the given long name and parent type,
// and returns it. If the name is already registered, the existing
// type is returned unchanged.
func (r *Registry) Add(name string, parent *Type) *Type {
	if et, has := r.types[name]; has {
		slog.Debug("types.Registry.Add: type already exists", "Type.Name", name)
		return et
	}
	tp := &Type{Name: name, Parent: parent, ID: atomic.AddUint64(&typeIDCounter, 1)}
	tp.CompileAncestors() // eager, so concurrent ancestry checks never mutate
	r.types[name] = tp
	return tp
}

// AddInstance registers a type from an instance of it, using the
// fully package-path-qualified type name. The instance must be passed
// as a pointer; it is retained on [Type.Instance].
func (r *Registry) AddInstance(inst any, parent *Type) *Type {
	typ := reflect.TypeOf(inst).Elem()
	nm := TypeName(typ)
	tp := r.Add(nm, parent)
	if tp.Instance == nil {
		tp.Instance = inst
	}
	return tp
}

// TypeByName returns a [Type] by name, or nil if not found.
func (r *Registry) TypeByName(name string) *Type {
	return r.types[name]
}

// TypeByNameTry returns a [Type] by name, or an error if not found.
func (r *Registry) TypeByNameTry(name string) (*Type, error) {
	tp, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("type %q not found", name)
	}
	return tp, nil
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	return len(r.types)
}

// TypeName returns the long, package-path-qualified name of given
// reflect type, which is guaranteed to be unique.
func TypeName(typ reflect.Type) string {
	return typ.PkgPath() + "." + typ.Name()
}
