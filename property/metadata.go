// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// BindingMode describes how a binding propagates values between a
// source and a property. The zero value is [BindingUnset], which
// falls back to the effective base metadata when merging.
type BindingMode int32

const (
	// BindingUnset means no binding mode was specified.
	BindingUnset BindingMode = iota

	// BindingOneWay propagates from source to property only.
	BindingOneWay

	// BindingTwoWay propagates in both directions.
	BindingTwoWay

	// BindingOneTime propagates the source value once and then stops.
	BindingOneTime

	// BindingOneWayToSource propagates from property to source only.
	BindingOneWayToSource
)

func (bm BindingMode) String() string {
	switch bm {
	case BindingOneWay:
		return "OneWay"
	case BindingTwoWay:
		return "TwoWay"
	case BindingOneTime:
		return "OneTime"
	case BindingOneWayToSource:
		return "OneWayToSource"
	default:
		return "Unset"
	}
}

// DataValidation is a tri-state flag controlling whether data
// validation is enabled for bindings to a property. The zero value is
// unset and falls back to the effective base metadata when merging.
type DataValidation int32

const (
	DataValidationUnset DataValidation = iota
	DataValidationEnabled
	DataValidationDisabled
)

// CoerceFunc adjusts a candidate value for a property on a given
// owner, returning the value to actually use.
type CoerceFunc func(o Owner, v any) any

// ValidateFunc reports whether a candidate value is acceptable
// for a property.
type ValidateFunc func(v any) bool

// Metadata is the bundle of default value, coercion, validation, and
// binding flags for a property, applicable to one host type. A nil or
// zero field means unset; unset fields fall back to the effective base
// metadata when the record is merged in [Property.OverrideMetadata].
//
// Once attached to a property for a given type, a Metadata is frozen
// and must not be modified.
type Metadata struct {

	// Default is the default value of the property for the host type.
	// nil means unset.
	Default any

	// Coerce, if set, adjusts candidate values before they are stored.
	Coerce CoerceFunc

	// Validate, if set, rejects unacceptable candidate values.
	Validate ValidateFunc

	// DefaultBindingMode is the binding mode used when a binding does
	// not specify one.
	DefaultBindingMode BindingMode

	// DataValidation controls whether data validation is enabled for
	// bindings to the property.
	DataValidation DataValidation

	frozen bool
}

// NewMetadata returns a new [Metadata] with the given default value.
func NewMetadata(def any) *Metadata {
	return &Metadata{Default: def}
}

// SetCoerce sets the coercion function. It panics if the metadata is
// already frozen.
func (m *Metadata) SetCoerce(f CoerceFunc) *Metadata {
	m.mustMutable()
	m.Coerce = f
	return m
}

// SetValidate sets the validation predicate. It panics if the metadata
// is already frozen.
func (m *Metadata) SetValidate(f ValidateFunc) *Metadata {
	m.mustMutable()
	m.Validate = f
	return m
}

// SetDefaultBindingMode sets the default binding mode. It panics if
// the metadata is already frozen.
func (m *Metadata) SetDefaultBindingMode(bm BindingMode) *Metadata {
	m.mustMutable()
	m.DefaultBindingMode = bm
	return m
}

// SetDataValidation sets the data-validation flag. It panics if the
// metadata is already frozen.
func (m *Metadata) SetDataValidation(dv DataValidation) *Metadata {
	m.mustMutable()
	m.DataValidation = dv
	return m
}

// Freeze marks the metadata as immutable. There is no way back.
func (m *Metadata) Freeze() {
	m.frozen = true
}

// IsFrozen returns whether the metadata has been frozen by attaching
// it to a property.
func (m *Metadata) IsFrozen() bool {
	return m.frozen
}

func (m *Metadata) mustMutable() {
	if m.frozen {
		panic("property: attempt to modify frozen Metadata")
	}
}

// Merge returns a new unfrozen [Metadata] combining m with the given
// base: fields set on m win, unset fields fall back to base.
func (m *Metadata) Merge(base *Metadata) *Metadata {
	merged := &Metadata{}
	if base != nil {
		*merged = *base
		merged.frozen = false
	}
	if m != nil {
		err := copier.CopyWithOption(merged, m, copier.Option{IgnoreEmpty: true})
		if err != nil {
			slog.Error("property: Metadata.Merge copy failed", "err", err)
		}
	}
	return merged
}
