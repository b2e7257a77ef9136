/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package schema

import (
	"fmt"
	"slices"
)

// Schema is the declarative contract a table must satisfy: its complete column
// set in canonical order, the expected type per column, the subset of columns
// allowed to contain missing values, and optional categorical domains for
// string columns.
type Schema struct {
	// Name is the table name; files resolve to schemas by base name.
	Name string `yaml:"name" json:"name"`

	// Columns is the complete required column set in canonical order.
	Columns []string `yaml:"columns" json:"columns"`

	// Types maps each column to its expected type.
	Types map[string]ColumnType `yaml:"types" json:"types"`

	// Nullable lists the columns permitted to contain missing values.
	// Every column not listed here is non-nullable.
	Nullable []string `yaml:"nullable,omitempty" json:"nullable,omitempty"`

	// Domains maps string columns to their permitted literal values.
	Domains map[string][]string `yaml:"domains,omitempty" json:"domains,omitempty"`
}

// Validate checks the internal consistency of the schema definition: every
// type key, nullable member, and domain key must belong to Columns, every
// column must have a declared type, and domains may only apply to string
// columns.
func (s *Schema) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("schema %q declares no columns", s.Name)
	}

	seen := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		if seen[col] {
			return fmt.Errorf("schema %q declares column %q more than once", s.Name, col)
		}
		seen[col] = true
	}

	for _, col := range s.Columns {
		if _, ok := s.Types[col]; !ok {
			return fmt.Errorf("schema %q column %q has no declared type", s.Name, col)
		}
	}
	for col, typ := range s.Types {
		if !seen[col] {
			return fmt.Errorf("schema %q declares a type for unknown column %q", s.Name, col)
		}
		if !typ.IsValid() {
			return fmt.Errorf("schema %q column %q has invalid type %q", s.Name, col, typ)
		}
	}
	for _, col := range s.Nullable {
		if !seen[col] {
			return fmt.Errorf("schema %q marks unknown column %q as nullable", s.Name, col)
		}
	}
	for col := range s.Domains {
		if !seen[col] {
			return fmt.Errorf("schema %q declares a domain for unknown column %q", s.Name, col)
		}
		if s.Types[col] != TypeString {
			return fmt.Errorf("schema %q declares a categorical domain for non-string column %q", s.Name, col)
		}
		if len(s.Domains[col]) == 0 {
			return fmt.Errorf("schema %q declares an empty domain for column %q", s.Name, col)
		}
	}

	return nil
}

// IsNullable reports whether the column is allowed to contain missing values.
func (s *Schema) IsNullable(column string) bool {
	return slices.Contains(s.Nullable, column)
}

// NonNullableColumns returns the columns that must not contain missing values,
// in canonical column order.
func (s *Schema) NonNullableColumns() []string {
	cols := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if !s.IsNullable(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// ColumnsOfType returns the columns declared with the given type, in
// canonical column order.
func (s *Schema) ColumnsOfType(t ColumnType) []string {
	cols := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if s.Types[col] == t {
			cols = append(cols, col)
		}
	}
	return cols
}

// NonNullableColumnsOfType returns the non-nullable columns declared with the
// given type, in canonical column order.
func (s *Schema) NonNullableColumnsOfType(t ColumnType) []string {
	cols := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if s.Types[col] == t && !s.IsNullable(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// HasDomains reports whether any column declares a categorical domain.
func (s *Schema) HasDomains() bool {
	return len(s.Domains) > 0
}
