// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veldt-ui/veldt/types"
)

// White-box tests for the single-metadata fast path, using the
// resolution counters on the metadata store.

func TestFastPathActiveWhileSingleMetadata(t *testing.T) {
	tr := types.NewRegistry()
	a := tr.Add("test.A", nil)
	b := tr.Add("test.B", a)
	other := tr.Add("test.Other", nil)

	foo := NewStyled[int]("Foo", a, NewMetadata(0))

	assert.Equal(t, 0, foo.Metadata(a).Default)
	assert.Equal(t, 0, foo.Metadata(b).Default)
	assert.Same(t, foo.DefaultMetadata(), foo.Metadata(other))

	fast, cache, walks := foo.store.stats()
	assert.Equal(t, uint64(3), fast)
	assert.Zero(t, cache)
	assert.Zero(t, walks)
}

func TestFastPathPermanentlyDisabledBySecondRegistration(t *testing.T) {
	tr := types.NewRegistry()
	a := tr.Add("test.A", nil)
	b := tr.Add("test.B", a)
	c := tr.Add("test.C", b)
	d := tr.Add("test.D", c)

	foo := NewStyled[int]("Foo", a, NewMetadata(0))
	foo.Metadata(b)
	fast0, _, _ := foo.store.stats()
	assert.Equal(t, uint64(1), fast0)

	foo.OverrideMetadata(b, NewMetadata(5))
	// the override resolves its base through the store, still single
	fast1, _, _ := foo.store.stats()
	assert.Equal(t, uint64(2), fast1)

	// types beyond the two registered must walk, then hit the cache
	assert.Equal(t, 5, foo.Metadata(d).Default)
	fast2, cache2, walks2 := foo.store.stats()
	assert.Equal(t, fast1, fast2, "fast path must stay disabled")
	assert.Zero(t, cache2)
	assert.Equal(t, uint64(1), walks2)

	assert.Equal(t, 5, foo.Metadata(d).Default)
	_, cache3, walks3 := foo.store.stats()
	assert.Equal(t, uint64(1), cache3)
	assert.Equal(t, walks2, walks3)

	// registered types resolve by walk/cache too, never by shortcut
	assert.Equal(t, 0, foo.Metadata(a).Default)
	assert.Equal(t, 5, foo.Metadata(c).Default)
	fast3, _, _ := foo.store.stats()
	assert.Equal(t, fast1, fast3)
}

func TestOverrideClearsResolutionCache(t *testing.T) {
	tr := types.NewRegistry()
	a := tr.Add("test.A", nil)
	b := tr.Add("test.B", a)
	c := tr.Add("test.C", b)

	foo := NewStyled[int]("Foo", a, NewMetadata(0))
	foo.OverrideMetadata(b, NewMetadata(5))

	assert.Equal(t, 5, foo.Metadata(c).Default) // walk, cached
	_, _, walks0 := foo.store.stats()

	foo.OverrideMetadata(c, NewMetadata(9))
	// coarse invalidation: C must re-walk and see its own entry
	assert.Equal(t, 9, foo.Metadata(c).Default)
	_, _, walks1 := foo.store.stats()
	assert.Greater(t, walks1, walks0)
}

func TestUnregisterClearsResolutionCache(t *testing.T) {
	tr := types.NewRegistry()
	a := tr.Add("test.A", nil)
	b := tr.Add("test.B", a)
	c := tr.Add("test.C", b)

	foo := NewStyled[int]("Foo", a, NewMetadata(0))
	foo.OverrideMetadata(b, NewMetadata(5))
	assert.Equal(t, 5, foo.Metadata(c).Default)

	foo.Unregister(b)
	_, _, walksBefore := foo.store.stats()
	assert.Equal(t, 0, foo.Metadata(c).Default)
	_, _, walksAfter := foo.store.stats()
	assert.Greater(t, walksAfter, walksBefore)
}
