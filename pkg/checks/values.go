/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/table"
)

// maxExamples caps the number of offending rows or values quoted in a single
// diagnostic message.
const maxExamples = 5

// Nullability fails if any of the given non-nullable columns contains a
// missing value. Columns absent from the table are ignored; MissingColumns
// reports those.
func Nullability(t *table.Table, nonNullable []string) Result {
	r := newResult(CheckNullability)
	for _, name := range nonNullable {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		if n := col.MissingCount(); n > 0 {
			r.errorf(name, "column %q is non-nullable but contains %d missing values", name, n)
		}
	}
	return r
}

// TypeConformance verifies that every present value in each typed column
// conforms to its declared type. Integer columns require mathematically whole
// values (3.0 conforms, 3.5 does not); float columns require parseable real
// numbers. A declared string column fails only when every present value
// parses as a number, which means the producer wrote a numeric column where
// text was expected. Missing values are Nullability's concern and are never
// type errors.
func TypeConformance(t *table.Table, types map[string]schema.ColumnType, nullable []string) Result {
	r := newResult(CheckTypeConformance)

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		suffix := ""
		if slices.Contains(nullable, name) {
			suffix = " (nullable column)"
		}

		switch types[name] {
		case schema.TypeInteger:
			if bad, total := countViolations(col, func(v table.Value) bool { return !v.IsWholeNumber() }); bad > 0 {
				r.errorf(name, "column %q contains %d non-integer values out of %d sampled%s", name, bad, total, suffix)
			}
		case schema.TypeFloat:
			if bad, total := countViolations(col, func(v table.Value) bool { return !v.IsNumeric() }); bad > 0 {
				r.errorf(name, "column %q contains %d non-float values out of %d sampled%s", name, bad, total, suffix)
			}
		case schema.TypeString:
			if numeric, total := countViolations(col, table.Value.IsNumeric); total > 0 && numeric == total {
				r.errorf(name, "column %q is declared string but every sampled value parses as a number%s", name, suffix)
			}
		}
	}
	return r
}

// countViolations counts the present values in col for which bad is true,
// returning the violation count and the number of present values.
func countViolations(col *table.Column, bad func(table.Value) bool) (violations, present int) {
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		present++
		if bad(v) {
			violations++
		}
	}
	return violations, present
}

// CategoricalDomain fails if a column with a declared domain contains values
// outside it. For nullable columns only present values are checked; for
// non-nullable columns a missing value is also a domain violation.
func CategoricalDomain(t *table.Table, domains map[string][]string, nullable []string) Result {
	r := newResult(CheckCategoricalDomain)

	names := make([]string, 0, len(domains))
	for name := range domains {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		allowed := domains[name]
		skipMissing := slices.Contains(nullable, name)

		invalid := map[string]bool{}
		for _, v := range col.Values {
			if v.IsMissing() {
				if !skipMissing {
					invalid["<missing>"] = true
				}
				continue
			}
			if !slices.Contains(allowed, v.Raw()) {
				invalid[v.Raw()] = true
			}
		}
		if len(invalid) > 0 {
			found := make([]string, 0, len(invalid))
			for v := range invalid {
				found = append(found, v)
			}
			sort.Strings(found)
			r.errorf(name, "column %q contains invalid categorical values %s, expected one of [%s]",
				name, quoteList(found, maxExamples), strings.Join(allowed, ", "))
		}
	}
	return r
}

// NonEmptyStrings fails if any of the given string columns contains a value
// that is zero-length or whitespace-only.
func NonEmptyStrings(t *table.Table, columns []string) Result {
	r := newResult(CheckNonEmptyStrings)
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		var rows []int
		for i, v := range col.Values {
			if !v.IsMissing() && strings.TrimSpace(v.Raw()) == "" {
				rows = append(rows, i+1)
			}
		}
		if len(rows) > 0 {
			r.errorf(name, "column %q contains %d empty or whitespace-only strings (%s)",
				name, len(rows), rowList(rows, maxExamples))
		}
	}
	return r
}

// IntegerColumns fails if any present value in the given columns is not
// integer-valued: 4 and 4.0 pass, 4.5 fails.
func IntegerColumns(t *table.Table, columns []string) Result {
	r := newResult(CheckIntegerColumns)
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		var rows []int
		var examples []string
		for i, v := range col.Values {
			if v.IsMissing() || v.IsWholeNumber() {
				continue
			}
			rows = append(rows, i+1)
			if len(examples) < maxExamples {
				examples = append(examples, v.Raw())
			}
		}
		if len(rows) > 0 {
			r.errorf(name, "column %q contains %d non-integer values such as %s (%s)",
				name, len(rows), quoteList(examples, maxExamples), rowList(rows, maxExamples))
		}
	}
	return r
}

// rowList formats 1-based data row numbers for a diagnostic, truncated to max.
func rowList(rows []int, max int) string {
	shown := rows
	more := 0
	if len(rows) > max {
		shown = rows[:max]
		more = len(rows) - max
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = fmt.Sprintf("%d", n)
	}
	out := "rows " + strings.Join(parts, ", ")
	if more > 0 {
		out += fmt.Sprintf(" and %d more", more)
	}
	return out
}

// quoteList formats a list of literal values for a diagnostic, truncated to max.
func quoteList(values []string, max int) string {
	shown := values
	more := 0
	if len(values) > max {
		shown = values[:max]
		more = len(values) - max
	}
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = fmt.Sprintf("%q", v)
	}
	out := "[" + strings.Join(parts, ", ") + "]"
	if more > 0 {
		out += fmt.Sprintf(" and %d more", more)
	}
	return out
}
