// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme loads property metadata defaults from TOML files and
// applies them as metadata overrides, with optional live reload for
// designer tooling. A theme file holds one table per registered type,
// mapping property names to default values:
//
//	["github.com/veldt-ui/veldt/demo.Button"]
//	Spacing = 8
//	Label = "OK"
//
// Because a property's primary registration already occupies its
// owner type, themes re-default properties on descendant host types,
// not on the declaring type itself.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/veldt-ui/veldt/property"
	"github.com/veldt-ui/veldt/types"
)

// applied records one (property, type) metadata registration made by
// the theme, so it can be retracted on reload or revert.
type applied struct {
	prop property.Property
	typ  *types.Type
}

// Theme applies default-value metadata overrides from a TOML file to
// the properties in a registry. Apply and Revert mutate property
// metadata, so they follow the registration contract: do not run them
// concurrently with other registration or with readers.
type Theme struct {
	// Types resolves the type names used as table keys.
	Types *types.Registry

	// Props resolves the property names within each table.
	Props *property.Registry

	// File is the theme file path.
	File string

	applied []applied
	watcher *watcher
}

// New returns a [Theme] reading the given file against the given
// registries.
func New(tr *types.Registry, pr *property.Registry, file string) *Theme {
	return &Theme{Types: tr, Props: pr, File: file}
}

// Open reads the theme file and applies it. Entries that do not
// resolve to a registered type or property, or whose value does not
// convert to the property's value type, are collected into the
// returned error; the rest still apply.
func (th *Theme) Open() error {
	b, err := os.ReadFile(th.File)
	if err != nil {
		return err
	}
	var tables map[string]map[string]any
	if err := toml.Unmarshal(b, &tables); err != nil {
		return fmt.Errorf("theme: %s: %w", th.File, err)
	}
	return th.Apply(tables)
}

// Apply applies the given type → property → default value tables as
// metadata overrides. A (property, type) pair that already has a
// direct registration from elsewhere is skipped and reported, never
// clobbered.
func (th *Theme) Apply(tables map[string]map[string]any) error {
	var errs []error
	for tname, props := range tables {
		t, err := th.Types.TypeByNameTry(tname)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %w", err))
			continue
		}
		for pname, raw := range props {
			p := th.Props.Find(t, pname)
			if p == nil {
				errs = append(errs, fmt.Errorf("theme: property %q not registered for type %s", pname, tname))
				continue
			}
			cv, ok := property.ConvertTo(raw, p.ValueType())
			if !ok {
				errs = append(errs, fmt.Errorf("theme: value %v (%T) for %s.%s is not a valid %s",
					raw, raw, t.ShortName(), pname, p.ValueType()))
				continue
			}
			if p.HasMetadata(t) {
				errs = append(errs, fmt.Errorf("theme: %s already has metadata registered for %s, skipping", pname, tname))
				continue
			}
			p.OverrideMetadata(t, property.NewMetadata(cv))
			th.applied = append(th.applied, applied{prop: p, typ: t})
		}
	}
	return errors.Join(errs...)
}

// Revert retracts every (property, type) registration the theme has
// made, in reverse order of application.
func (th *Theme) Revert() {
	for i := len(th.applied) - 1; i >= 0; i-- {
		a := th.applied[i]
		a.prop.Unregister(a.typ)
	}
	th.applied = nil
}

// Reload retracts the current registrations and re-applies the file,
// supporting live metadata edits.
func (th *Theme) Reload() error {
	th.Revert()
	return th.Open()
}
