/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"time"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/checks"
)

// Result is the outcome of validating one table file: the per-check results
// in the order they ran, plus the overall status. Overall pass is the logical
// AND of every check that ran.
type Result struct {
	// Table is the table name derived from the file name.
	Table string `json:"table" yaml:"table"`

	// Path is the validated file.
	Path string `json:"path" yaml:"path"`

	// Rows and Columns describe the loaded sample, not necessarily the whole
	// file.
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`

	// Checks holds the individual check results in execution order.
	Checks []checks.Result `json:"checks,omitempty" yaml:"checks,omitempty"`

	// Status is the aggregate outcome.
	Status checks.Status `json:"status" yaml:"status"`

	// Err carries the cause when validation terminated before any check ran:
	// unknown table name, load failure, or an unexpected per-file error.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`

	// Duration is the wall time spent on this file.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Passed reports whether every check passed.
func (r *Result) Passed() bool {
	return r.Status == checks.StatusPassed
}

// FailedChecks returns the checks that found violations.
func (r *Result) FailedChecks() []checks.Result {
	var failed []checks.Result
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}
