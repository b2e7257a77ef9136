/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

// Package validator runs the full check sequence for a single table file.
//
// # Pipeline
//
// ValidateFile moves through four stages: schema lookup, loading, checking,
// aggregation. An unknown table name or a load failure terminates validation
// for that file with a failed Result carrying the cause; once checks start,
// every applicable check runs regardless of earlier failures, so one pass
// over a file surfaces every defect class it has.
//
// # Check Selection
//
// The default check set is driven by the schema: column presence, extra
// columns, nullability, and type conformance always run; the categorical
// domain check runs when the schema declares domains; the non-empty-string
// and integer-value checks run for the schema's non-nullable string and
// integer columns respectively.
//
// Column order, value ranges, year-range completeness, and the
// scientific-notation leak check are opt-in through functional options,
// since not every schema constrains those facets:
//
//	v := validator.New(reg,
//	    validator.WithSampleRows(50000),
//	    validator.WithColumnOrderCheck(),
//	    validator.WithYearRange(2000, 2030),
//	)
//	res, err := v.ValidateFile(ctx, "total_working_population", path)
//
// # Errors
//
// The error returned by ValidateFile is non-nil only for context
// cancellation. Every per-file problem is recorded in the Result instead, so
// a batch run is never aborted by a single bad file.
package validator
