// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

// UnsetType is the type of the [Unset] sentinel.
type UnsetType struct{}

func (UnsetType) String() string {
	return "(unset)"
}

// Unset is the reserved sentinel signaling "no value set", distinct
// from any legal property value including nil. It is comparable, so
// it can be checked with ==, returned from getters when no value is
// set, and passed to a set operation to clear the value.
var Unset = UnsetType{}
