/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package checks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/table"
)

// yearColumn is the column consulted by YearRange.
const yearColumn = "year"

// Range bounds a numeric column. A nil bound is unbounded on that side.
type Range struct {
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// ValueRange fails if any present finite value falls outside its column's
// bounds. Infinite values are exempt from the upper bound and surface as
// informational diagnostics: the domain uses open-ended buckets such as the
// "65+" age group, which exports as infinity.
func ValueRange(t *table.Table, ranges map[string]Range) Result {
	r := newResult(CheckValueRange)

	names := make([]string, 0, len(ranges))
	for name := range ranges {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		bounds := ranges[name]

		belowMin, aboveMax, infinite := 0, 0, 0
		for _, v := range col.Values {
			if v.IsMissing() {
				continue
			}
			f, err := v.Float()
			if err != nil {
				// Non-numeric content is type-conformance territory.
				continue
			}
			if v.IsInfinite() {
				infinite++
				continue
			}
			if bounds.Min != nil && f < *bounds.Min {
				belowMin++
			}
			if bounds.Max != nil && f > *bounds.Max {
				aboveMax++
			}
		}

		if infinite > 0 {
			r.infof(name, "column %q contains %d infinite values, treated as open-ended upper bound", name, infinite)
		}
		if belowMin > 0 {
			r.errorf(name, "column %q contains %d values below minimum %v", name, belowMin, *bounds.Min)
		}
		if aboveMax > 0 {
			r.errorf(name, "column %q contains %d values above maximum %v", name, aboveMax, *bounds.Max)
		}
	}
	return r
}

// ScientificNotation fails if a float column's raw text carries an exponent
// marker, e.g. "1.2e+07". Such values parse fine but signal that an upstream
// formatter leaked scientific notation into the delivery.
func ScientificNotation(t *table.Table, columns []string) Result {
	r := newResult(CheckScientificNotation)
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		var rows []int
		for i, v := range col.Values {
			if v.IsMissing() || !v.IsNumeric() {
				continue
			}
			if strings.ContainsAny(v.Raw(), "eE") {
				rows = append(rows, i+1)
			}
		}
		if len(rows) > 0 {
			r.errorf(name, "column %q contains %d values rendered in scientific notation (%s)",
				name, len(rows), rowList(rows, maxExamples))
		}
	}
	return r
}

// YearRange fails unless the table's year column contains every year in the
// inclusive [start, end] range at least once.
func YearRange(t *table.Table, start, end int) Result {
	r := newResult(CheckYearRange)

	col, ok := t.Column(yearColumn)
	if !ok {
		r.errorf(yearColumn, "column %q not found", yearColumn)
		return r
	}

	present := make(map[int]bool)
	for _, v := range col.Values {
		if v.IsMissing() || !v.IsWholeNumber() {
			continue
		}
		f, _ := v.Float()
		present[int(f)] = true
	}

	var missing []int
	for y := start; y <= end; y++ {
		if !present[y] {
			missing = append(missing, y)
		}
	}
	if len(missing) > 0 {
		parts := make([]string, len(missing))
		for i, y := range missing {
			parts[i] = strconv.Itoa(y)
		}
		r.errorf(yearColumn, "column %q is missing %d of the years %d-%d: %s",
			yearColumn, len(missing), start, end, strings.Join(parts, ", "))
	}
	return r
}
