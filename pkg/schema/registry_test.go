/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)

	assert.Equal(t, 19, reg.Len())

	// Spot-check a few catalog entries against the upstream contract.
	twp, ok := reg.Get("total_working_population")
	require.True(t, ok)
	assert.Equal(t, []string{"ccode", "country", "year", "population"}, twp.Columns)
	assert.Equal(t, TypeInteger, twp.Types["population"])
	assert.True(t, twp.IsNullable("population"))

	wp, ok := reg.Get("employed_working_poor")
	require.True(t, ok)
	assert.Len(t, wp.Domains["status_poor"], 3)
	assert.Contains(t, wp.Domains["status_poor"], "Extremely poor < USD 2.15 PPP")

	inactive, ok := reg.Get("africa_education_inactive")
	require.True(t, ok)
	assert.Contains(t, inactive.Domains["reason_inactive"], "childcare/pregnancy")

	// Second call returns the cached registry.
	reg2, err := DefaultRegistry()
	require.NoError(t, err)
	assert.Same(t, reg, reg2)
}

func TestDefaultRegistryAllSchemasValid(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)

	for _, name := range reg.Names() {
		s, ok := reg.Get(name)
		require.True(t, ok, name)
		assert.NoError(t, s.Validate(), name)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg, err := NewRegistry(validTestSchema())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	err = reg.Register(validTestSchema())
	assert.ErrorContains(t, err, "already registered")

	bad := validTestSchema()
	bad.Columns = nil
	_, err = NewRegistry(bad)
	assert.ErrorContains(t, err, "invalid schema")
}

func TestRegistrySuggest(t *testing.T) {
	reg, err := DefaultRegistry()
	require.NoError(t, err)

	got, ok := reg.Suggest("total_working_populaton")
	require.True(t, ok)
	assert.Equal(t, "total_working_population", got)

	_, ok = reg.Suggest("completely_unrelated_table_name")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	catalog := `schemas:
  - name: people
    columns: [id, name]
    types:
      id: int
      name: str
    nullable: [name]
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	s, ok := reg.Get("people")
	require.True(t, ok)
	// Short type aliases normalize to the canonical names.
	assert.Equal(t, TypeInteger, s.Types["id"])
	assert.Equal(t, TypeString, s.Types["name"])
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("schemas: []\n"), 0o644))
	_, err = LoadFile(empty)
	assert.ErrorContains(t, err, "no schemas")

	badType := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badType, []byte(`schemas:
  - name: t
    columns: [a]
    types:
      a: decimal
`), 0o644))
	_, err = LoadFile(badType)
	assert.ErrorContains(t, err, "unknown column type")
}
