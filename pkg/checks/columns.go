/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"slices"
	"strings"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/table"
)

// Check name constants. The names appear in reports and structured output.
const (
	CheckMissingColumns     = "missing-columns"
	CheckExtraColumns       = "extra-columns"
	CheckColumnOrder        = "column-order"
	CheckNullability        = "nullability"
	CheckTypeConformance    = "type-conformance"
	CheckCategoricalDomain  = "categorical-domain"
	CheckNonEmptyStrings    = "non-empty-strings"
	CheckIntegerColumns     = "integer-columns"
	CheckValueRange         = "value-range"
	CheckScientificNotation = "scientific-notation"
	CheckYearRange          = "year-range"
)

// MissingColumns fails if any required column is absent from the table.
func MissingColumns(t *table.Table, required []string) Result {
	r := newResult(CheckMissingColumns)
	for _, col := range required {
		if !t.HasColumn(col) {
			r.errorf(col, "required column %q is missing", col)
		}
	}
	return r
}

// ExtraColumns fails if the table contains columns outside the required set.
func ExtraColumns(t *table.Table, required []string) Result {
	r := newResult(CheckExtraColumns)
	for _, col := range t.ColumnNames() {
		if !slices.Contains(required, col) {
			r.errorf(col, "column %q is not part of the schema", col)
		}
	}
	return r
}

// ColumnOrder fails unless the table's column sequence matches the required
// order exactly.
func ColumnOrder(t *table.Table, required []string) Result {
	r := newResult(CheckColumnOrder)
	got := t.ColumnNames()
	if !slices.Equal(got, required) {
		r.errorf("", "columns are not in the required order: got [%s], want [%s]",
			strings.Join(got, ", "), strings.Join(required, ", "))
	}
	return r
}
