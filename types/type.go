// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides an explicit type-hierarchy registry for the
// Veldt property system. Types are registered with a parent pointer,
// so ancestry checks and walks are plain data traversals instead of
// runtime reflection.
package types

import "strings"

// Type represents one registered type in the hierarchy.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (eg: github.com/veldt-ui/veldt/demo.Button)
	Name string

	// ID is the unique type ID number, assigned in registration order.
	ID uint64

	// Parent is the type this type derives from; nil for a root type.
	Parent *Type

	// Instance is an optional instance of the type.
	Instance any

	// allAncestors is the compiled set of all ancestor types, keyed by ID;
	// built on first use by HasAncestor.
	allAncestors map[uint64]*Type
}

func (tp *Type) String() string {
	return tp.Name
}

// ShortName returns the short name of the type (package.Type).
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, "/")
	return tp.Name[li+1:]
}

// HasAncestor returns true if the given type is this type or any of
// its ancestors. The first time called it compiles a map of all
// ancestors so subsequent calls are very fast.
func (tp *Type) HasAncestor(anc *Type) bool {
	if anc == nil {
		return false
	}
	if tp == anc {
		return true
	}
	if tp.allAncestors == nil {
		tp.CompileAncestors()
		if tp.allAncestors == nil {
			return false
		}
	}
	_, has := tp.allAncestors[anc.ID]
	return has
}

// CompileAncestors builds the ancestor map by following Parent pointers.
func (tp *Type) CompileAncestors() {
	if tp.Parent == nil {
		return
	}
	tp.allAncestors = make(map[uint64]*Type)
	for p := tp.Parent; p != nil; p = p.Parent {
		tp.allAncestors[p.ID] = p
	}
}
