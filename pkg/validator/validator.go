/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"log/slog"
	"time"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/checks"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/table"
)

// DefaultSampleRows is the default per-file row cap.
const DefaultSampleRows = 100000

// Validator validates one table file at a time against its registered schema.
type Validator struct {
	registry   *schema.Registry
	sampleRows int

	// Opt-in checks. Not every schema constrains order, ranges, or years, so
	// these run only when the caller asks for them.
	checkOrder  bool
	checkSciNot bool
	yearStart   int
	yearEnd     int
	checkYears  bool
	valueRanges map[string]checks.Range
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithSampleRows caps the number of rows loaded per file.
func WithSampleRows(n int) Option {
	return func(v *Validator) {
		v.sampleRows = n
	}
}

// WithColumnOrderCheck enables the strict column-order check.
func WithColumnOrderCheck() Option {
	return func(v *Validator) {
		v.checkOrder = true
	}
}

// WithScientificNotationCheck enables the scientific-notation leak check on
// float columns.
func WithScientificNotationCheck() Option {
	return func(v *Validator) {
		v.checkSciNot = true
	}
}

// WithYearRange enables the year-range completeness check for tables with a
// year column.
func WithYearRange(start, end int) Option {
	return func(v *Validator) {
		v.yearStart = start
		v.yearEnd = end
		v.checkYears = true
	}
}

// WithValueRanges enables numeric range checking for the given columns, on
// any table that contains them.
func WithValueRanges(ranges map[string]checks.Range) Option {
	return func(v *Validator) {
		v.valueRanges = ranges
	}
}

// New creates a new Validator backed by the given schema registry.
func New(registry *schema.Registry, opts ...Option) *Validator {
	v := &Validator{
		registry:   registry,
		sampleRows: DefaultSampleRows,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SampleRows returns the configured per-file row cap.
func (v *Validator) SampleRows() int {
	return v.sampleRows
}

// ValidateFile validates the file at path as the named table. The returned
// error is non-nil only when the context was canceled; everything else, from
// an unknown table name to a decode failure to rule violations, is recorded
// in the Result so the batch can continue.
//
// All applicable checks run even after one fails, so a single invocation
// surfaces every defect class in one pass.
func (v *Validator) ValidateFile(ctx context.Context, name, path string) (*Result, error) {
	start := time.Now()
	res := &Result{Table: name, Path: path}
	defer func() {
		res.Duration = time.Since(start)
		observeTable(res)
	}()

	sch, ok := v.registry.Get(name)
	if !ok {
		res.Status = checks.StatusFailed
		res.Err = "no schema registered for table " + name
		return res, nil
	}

	tbl, err := table.Load(path, table.WithMaxRows(v.sampleRows))
	if err != nil {
		res.Status = checks.StatusFailed
		res.Err = err.Error()
		slog.Warn("table load failed", "table", name, "path", path, "error", err)
		return res, nil
	}
	res.Rows = tbl.NumRows()
	res.Columns = tbl.NumColumns()

	for _, run := range v.applicableChecks(sch, tbl) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res.Checks = append(res.Checks, run())
	}

	res.Status = checks.StatusPassed
	for _, c := range res.Checks {
		if !c.Passed() {
			res.Status = checks.StatusFailed
		}
	}

	slog.Debug("table validated",
		"table", name,
		"status", res.Status,
		"rows", res.Rows,
		"checks", len(res.Checks))

	return res, nil
}

// applicableChecks assembles the check sequence for a schema and table.
// Column presence, extras, nullability, and types always run; categorical,
// non-empty-string, and integer checks run when the schema gives them
// something to test; the rest run only when requested via options.
func (v *Validator) applicableChecks(sch *schema.Schema, tbl *table.Table) []func() checks.Result {
	runs := []func() checks.Result{
		func() checks.Result { return checks.MissingColumns(tbl, sch.Columns) },
		func() checks.Result { return checks.ExtraColumns(tbl, sch.Columns) },
		func() checks.Result { return checks.Nullability(tbl, sch.NonNullableColumns()) },
		func() checks.Result { return checks.TypeConformance(tbl, sch.Types, sch.Nullable) },
	}

	if sch.HasDomains() {
		runs = append(runs, func() checks.Result {
			return checks.CategoricalDomain(tbl, sch.Domains, sch.Nullable)
		})
	}
	if cols := sch.NonNullableColumnsOfType(schema.TypeString); len(cols) > 0 {
		runs = append(runs, func() checks.Result { return checks.NonEmptyStrings(tbl, cols) })
	}
	if cols := sch.NonNullableColumnsOfType(schema.TypeInteger); len(cols) > 0 {
		runs = append(runs, func() checks.Result { return checks.IntegerColumns(tbl, cols) })
	}

	if v.checkOrder {
		runs = append(runs, func() checks.Result { return checks.ColumnOrder(tbl, sch.Columns) })
	}
	if len(v.valueRanges) > 0 {
		applicable := make(map[string]checks.Range)
		for col, rng := range v.valueRanges {
			if tbl.HasColumn(col) {
				applicable[col] = rng
			}
		}
		if len(applicable) > 0 {
			runs = append(runs, func() checks.Result { return checks.ValueRange(tbl, applicable) })
		}
	}
	if v.checkYears && tbl.HasColumn("year") {
		runs = append(runs, func() checks.Result { return checks.YearRange(tbl, v.yearStart, v.yearEnd) })
	}
	if v.checkSciNot {
		if cols := sch.ColumnsOfType(schema.TypeFloat); len(cols) > 0 {
			runs = append(runs, func() checks.Result { return checks.ScientificNotation(tbl, cols) })
		}
	}

	return runs
}
