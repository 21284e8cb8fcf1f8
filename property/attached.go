// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"reflect"

	"github.com/veldt-ui/veldt/types"
)

// AttachedProperty is a styled property declared by one type but
// hosted on unrelated types, such as a panel declaring a dock slot
// usable on any child. It routes values the same way as
// [StyledProperty]; only registration differs.
type AttachedProperty[T any] struct {
	StyledProperty[T]
}

// NewAttached performs the primary registration of an attached
// property: the owner type declares it, the host type carries the
// initial metadata registration.
func NewAttached[T any](name string, owner, host *types.Type, m *Metadata, opts ...Option) *AttachedProperty[T] {
	if m != nil {
		normalizeDefault[T](name, m)
	}
	p := &AttachedProperty[T]{}
	p.propertyBase = newBase(name, reflect.TypeFor[T](), owner, host, m, opts...)
	p.attached = true
	p.this = p
	return p
}
