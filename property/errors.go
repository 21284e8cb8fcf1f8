// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import "errors"

var (
	// ErrNotSupported indicates a routing operation the descriptor
	// variant does not provide, such as an unchecked direct value set
	// on a styled property.
	ErrNotSupported = errors.New("operation not supported")

	// ErrInvalidValue indicates a value that cannot be implicitly
	// converted to the property's declared value type, or that was
	// rejected by the effective metadata's validator.
	ErrInvalidValue = errors.New("invalid value")

	// ErrReadOnly indicates a value set on a read-only property.
	ErrReadOnly = errors.New("property is read-only")
)
