// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-ui/veldt/types"
)

func TestRegistryAdd(t *testing.T) {
	tr := types.NewRegistry()
	control := tr.Add("test.Control", nil)
	button := tr.Add("test.Button", control)

	assert.Equal(t, "test.Control", control.Name)
	assert.Equal(t, control, button.Parent)
	assert.Equal(t, control, tr.TypeByName("test.Control"))
	assert.Equal(t, 2, tr.Count())
	assert.NotEqual(t, control.ID, button.ID)
	assert.Greater(t, button.ID, control.ID)
}

func TestRegistryAddExisting(t *testing.T) {
	tr := types.NewRegistry()
	control := tr.Add("test.Control", nil)
	again := tr.Add("test.Control", nil)
	assert.Same(t, control, again)
	assert.Equal(t, 1, tr.Count())
}

func TestTypeByNameTry(t *testing.T) {
	tr := types.NewRegistry()
	tr.Add("test.Control", nil)

	tp, err := tr.TypeByNameTry("test.Control")
	require.NoError(t, err)
	assert.Equal(t, "test.Control", tp.Name)

	_, err = tr.TypeByNameTry("test.Missing")
	assert.Error(t, err)
	assert.Nil(t, tr.TypeByName("test.Missing"))
}

func TestHasAncestor(t *testing.T) {
	tr := types.NewRegistry()
	control := tr.Add("test.Control", nil)
	button := tr.Add("test.Button", control)
	toggle := tr.Add("test.ToggleButton", button)
	label := tr.Add("test.Label", control)

	assert.True(t, toggle.HasAncestor(toggle))
	assert.True(t, toggle.HasAncestor(button))
	assert.True(t, toggle.HasAncestor(control))
	assert.True(t, button.HasAncestor(control))
	assert.False(t, control.HasAncestor(button))
	assert.False(t, toggle.HasAncestor(label))
	assert.False(t, label.HasAncestor(nil))
}

func TestShortName(t *testing.T) {
	tr := types.NewRegistry()
	tp := tr.Add("github.com/veldt-ui/veldt/demo.Button", nil)
	assert.Equal(t, "demo.Button", tp.ShortName())
	assert.Equal(t, "github.com/veldt-ui/veldt/demo.Button", tp.String())
}

type thing struct{}

func TestAddInstance(t *testing.T) {
	tr := types.NewRegistry()
	tp := tr.AddInstance(&thing{}, nil)
	assert.Contains(t, tp.Name, "types_test.thing")
	assert.NotNil(t, tp.Instance)
}
