/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// missingTokens are the cell contents treated as missing values. This mirrors
// the NA tokens the upstream export pipeline writes.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

// Value is a single cell. A value is either present with its raw text, or
// missing.
type Value struct {
	raw     string
	missing bool
}

// NewValue creates a present value with the given raw text.
func NewValue(raw string) Value {
	return Value{raw: raw}
}

// MissingValue creates a missing value.
func MissingValue() Value {
	return Value{missing: true}
}

// valueFromCell interprets a raw CSV cell, mapping NA tokens to missing.
func valueFromCell(cell string) Value {
	if _, ok := missingTokens[cell]; ok {
		return MissingValue()
	}
	return Value{raw: cell}
}

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool {
	return v.missing
}

// Raw returns the raw cell text. Missing values return the empty string.
func (v Value) Raw() string {
	return v.raw
}

// Float parses the value as a real number.
func (v Value) Float() (float64, error) {
	if v.missing {
		return 0, fmt.Errorf("value is missing")
	}
	return strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
}

// IsNumeric reports whether the value parses as a real number.
func (v Value) IsNumeric() bool {
	_, err := v.Float()
	return err == nil
}

// IsWholeNumber reports whether the value is mathematically whole: 4 and 4.0
// qualify, 4.5 and non-numeric text do not.
func (v Value) IsWholeNumber() bool {
	f, err := v.Float()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f == math.Trunc(f)
}

// IsInfinite reports whether the value parses as an infinity.
func (v Value) IsInfinite() bool {
	f, err := v.Float()
	return err == nil && math.IsInf(f, 0)
}

// Column is a named sequence of values, one per row.
type Column struct {
	Name   string
	Values []Value
}

// MissingCount returns the number of missing values in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}

// Table is an immutable in-memory rectangular structure: an ordered sequence
// of named columns with aligned row positions. Tables are built once by the
// loader (or New) and never mutated, so they are safe to share.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New creates a table from the given columns. Columns must have unique names
// and equal lengths.
func New(columns []Column) (*Table, error) {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if _, exists := t.index[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		t.index[col.Name] = i
		if i == 0 {
			t.rows = len(col.Values)
		} else if len(col.Values) != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), t.rows)
		}
	}
	return t, nil
}

// FromRecords creates a table from a header row and data records, mapping NA
// tokens to missing values. Records must all match the header width.
func FromRecords(header []string, records [][]string) (*Table, error) {
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name, Values: make([]Value, 0, len(records))}
	}
	for n, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, expected %d", n+1, len(rec), len(header))
		}
		for i, cell := range rec {
			columns[i].Values = append(columns[i].Values, valueFromCell(cell))
		}
	}
	return New(columns)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnNames returns the column names in file order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column retrieves a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.columns[i], true
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}
