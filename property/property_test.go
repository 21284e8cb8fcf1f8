// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-ui/veldt/object"
	"github.com/veldt-ui/veldt/property"
	"github.com/veldt-ui/veldt/types"
)

// newHierarchy returns a fresh type registry with C deriving from B
// deriving from A.
func newHierarchy(t *testing.T) (tr *types.Registry, a, b, c *types.Type) {
	t.Helper()
	tr = types.NewRegistry()
	a = tr.Add("test.A", nil)
	b = tr.Add("test.B", a)
	c = tr.Add("test.C", b)
	return
}

func TestEqualityIsIDBased(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	bar := property.NewStyled[int]("Foo", b, property.NewMetadata(0)) // same name, new id

	assert.True(t, foo.Equal(foo))
	assert.False(t, foo.Equal(bar))
	assert.False(t, bar.Equal(foo))
	assert.False(t, foo.Equal(nil))
	assert.Equal(t, foo.ID(), foo.ID())
	assert.Greater(t, bar.ID(), foo.ID())
}

func TestAddOwnerSharesIdentity(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	fooB := property.AddOwner(foo, b, nil)

	assert.True(t, foo.Equal(fooB))
	assert.Equal(t, foo.ID(), fooB.ID())
	assert.Equal(t, foo.Name(), fooB.Name())
	assert.Equal(t, foo.ValueType(), fooB.ValueType())
	assert.Equal(t, a, foo.OwnerType())
	assert.Equal(t, b, fooB.OwnerType())
}

func TestDefaultMetadataIsReferenceStable(t *testing.T) {
	_, a, b, c := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	require.Same(t, foo.DefaultMetadata(), foo.Metadata(a))
	require.Same(t, foo.DefaultMetadata(), foo.Metadata(b))
	require.Same(t, foo.DefaultMetadata(), foo.Metadata(c))
	require.Same(t, foo.Metadata(c), foo.Metadata(c))
}

func TestMetadataOverrideResolution(t *testing.T) {
	_, a, b, c := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	assert.Equal(t, 0, foo.Metadata(a).Default)

	foo.OverrideMetadata(b, property.NewMetadata(5))
	assert.Equal(t, 5, foo.Metadata(b).Default)
	assert.Equal(t, 0, foo.Metadata(a).Default)
	assert.Equal(t, 5, foo.Metadata(c).Default) // inherited via walk
}

func TestOverrideMergesUnsetFields(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	even := func(v any) bool { i, _ := v.(int); return i%2 == 0 }
	base := property.NewMetadata(0).SetValidate(even).SetDefaultBindingMode(property.BindingTwoWay)
	foo := property.NewStyled[int]("Foo", a, base)

	foo.OverrideMetadata(b, property.NewMetadata(6))
	mb := foo.Metadata(b)
	assert.Equal(t, 6, mb.Default)
	assert.NotNil(t, mb.Validate, "unset validator must fall back to the base metadata")
	assert.Equal(t, property.BindingTwoWay, mb.DefaultBindingMode)
	assert.True(t, mb.IsFrozen())
}

func TestDuplicateOverridePanics(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	foo.OverrideMetadata(b, property.NewMetadata(5))

	assert.Panics(t, func() {
		foo.OverrideMetadata(b, property.NewMetadata(7))
	})
	// first registration stays intact
	assert.Equal(t, 5, foo.Metadata(b).Default)
}

func TestOverrideDefaultMustMatchValueType(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	spacing := property.NewStyled[int]("Spacing", a, property.NewMetadata(4))
	assert.Panics(t, func() {
		spacing.OverrideMetadata(b, property.NewMetadata("wide"))
	})
	// the rejected override leaves no registration behind
	assert.False(t, spacing.HasMetadata(b))
	assert.Equal(t, 4, spacing.Metadata(b).Default)

	// convertible defaults are stored as the declared type
	spacing.OverrideMetadata(b, property.NewMetadata(int8(8)))
	assert.Equal(t, 8, spacing.Metadata(b).Default)
}

func TestUnregister(t *testing.T) {
	_, a, b, c := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	foo.OverrideMetadata(b, property.NewMetadata(5))
	assert.Equal(t, 5, foo.Metadata(b).Default)
	assert.Equal(t, 5, foo.Metadata(c).Default) // cached for C

	assert.True(t, foo.Unregister(b))
	assert.False(t, foo.Unregister(b))
	assert.Equal(t, 0, foo.Metadata(b).Default)
	// full cache invalidation: C re-resolves instead of keeping 5
	assert.Equal(t, 0, foo.Metadata(c).Default)
	assert.False(t, foo.HasMetadata(b))
}

func TestMetadataForUsesInstanceType(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	foo.OverrideMetadata(b, property.NewMetadata(5))

	o := object.New(b)
	require.Same(t, foo.Metadata(b), foo.MetadataFor(o))
	assert.Equal(t, 5, foo.MetadataFor(o).Default)
	require.Same(t, foo.DefaultMetadata(), foo.MetadataFor(nil))
}

func TestAddOwnerOverrideIsStoredUnmerged(t *testing.T) {
	_, a, b, _ := newHierarchy(t)

	even := func(v any) bool { i, _ := v.(int); return i%2 == 0 }
	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0).SetValidate(even))
	fooB := property.AddOwner(foo, b, property.NewMetadata(5))

	mb := fooB.Metadata(b)
	assert.Equal(t, 5, mb.Default)
	assert.Nil(t, mb.Validate, "copy registration stores the override as-is, without merging")
	// both descriptors resolve through the shared store
	assert.Equal(t, 5, foo.Metadata(b).Default)
}

func TestConstructionValidation(t *testing.T) {
	_, a, _, _ := newHierarchy(t)

	assert.Panics(t, func() { property.NewStyled[int]("", a, property.NewMetadata(0)) })
	assert.Panics(t, func() { property.NewStyled[int]("Foo.Bar", a, property.NewMetadata(0)) })
	assert.Panics(t, func() { property.NewStyled[int]("Foo", nil, property.NewMetadata(0)) })
	assert.Panics(t, func() { property.NewStyled[int]("Foo", a, nil) })
	assert.Panics(t, func() { property.NewStyled[int]("Foo", a, property.NewMetadata("zero")) })

	used := property.NewMetadata(0)
	property.NewStyled[int]("Foo", a, used)
	assert.Panics(t, func() { property.NewStyled[int]("Bar", a, used) }, "metadata cannot be attached twice")
}

func TestIsValidValue(t *testing.T) {
	_, a, _, _ := newHierarchy(t)

	fp := property.NewStyled[float64]("Opacity", a, property.NewMetadata(1.0))
	assert.True(t, fp.IsValidValue(0.5))
	assert.True(t, fp.IsValidValue(2)) // ints convert to floats
	assert.False(t, fp.IsValidValue("half"))
	assert.False(t, fp.IsValidValue(nil))

	sp := property.NewStyled[*string]("Tip", a, property.NewMetadata(nil))
	assert.True(t, sp.IsValidValue(nil))
}

func TestFrozenMetadataRejectsMutation(t *testing.T) {
	_, a, _, _ := newHierarchy(t)

	m := property.NewMetadata(0)
	property.NewStyled[int]("Foo", a, m)
	assert.True(t, m.IsFrozen())
	assert.Panics(t, func() { m.SetValidate(func(any) bool { return true }) })
	assert.Panics(t, func() { m.SetDefaultBindingMode(property.BindingTwoWay) })
}

func TestBindingDescriptors(t *testing.T) {
	_, a, _, _ := newHierarchy(t)

	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))

	d := foo.Bind()
	require.NotNil(t, d)
	assert.Equal(t, property.PriorityLocalValue, d.Priority)
	assert.True(t, foo.Equal(d.Property))

	td := foo.TemplateBind()
	assert.Equal(t, property.PriorityTemplate, td.Priority)
	assert.True(t, foo.Equal(td.Property))

	d.WithMode(property.BindingTwoWay)
	assert.Equal(t, property.BindingTwoWay, d.Mode)
}

func TestDefaultBindingModeDefaultsToOneWay(t *testing.T) {
	_, a, _, _ := newHierarchy(t)
	foo := property.NewStyled[int]("Foo", a, property.NewMetadata(0))
	assert.Equal(t, property.BindingOneWay, foo.DefaultMetadata().DefaultBindingMode)
}
