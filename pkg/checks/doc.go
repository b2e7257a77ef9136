/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

// Package checks implements the individual validation rules run against a
// loaded table.
//
// Each check is a pure function over a table and its rule parameters,
// returning a Result: a pass/fail status plus structured diagnostics naming
// the offending columns. Checks never mutate the table and are independent of
// one another, so the order they run in only affects the order diagnostics
// are reported in.
//
// A check fails exactly when it produced at least one error-severity
// diagnostic; informational diagnostics (such as the open-ended-range note
// from ValueRange) never fail a check. Presentation is deliberately left to
// the reporter so that results can also be consumed as JSON or YAML.
package checks
