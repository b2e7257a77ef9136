/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package checks

import "fmt"

const (
	// StatusPassed indicates the check found no violations.
	StatusPassed Status = "passed"

	// StatusFailed indicates the check found at least one violation.
	StatusFailed Status = "failed"
)

// Status is the outcome of a single check.
type Status string

const (
	// SeverityError diagnostics are rule violations and fail the check.
	SeverityError Severity = "error"

	// SeverityInfo diagnostics are informational notes and do not affect the
	// check outcome.
	SeverityInfo Severity = "info"
)

// Severity classifies a diagnostic.
type Severity string

// Diagnostic is one structured finding produced by a check. Rendering to text
// is the reporter's concern.
type Diagnostic struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Column   string   `json:"column,omitempty" yaml:"column,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

// Result is the outcome of a single check: a pass/fail status plus zero or
// more diagnostics. A check fails exactly when it produced at least one
// error-severity diagnostic.
type Result struct {
	Check       string       `json:"check" yaml:"check"`
	Status      Status       `json:"status" yaml:"status"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Passed reports whether the check found no violations.
func (r Result) Passed() bool {
	return r.Status == StatusPassed
}

// newResult creates a passing result for the named check.
func newResult(check string) Result {
	return Result{Check: check, Status: StatusPassed}
}

// errorf records an error-severity diagnostic against a column and marks the
// check failed.
func (r *Result) errorf(column, format string, args ...any) {
	r.Status = StatusFailed
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityError,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	})
}

// infof records an informational diagnostic against a column without
// affecting the check outcome.
func (r *Result) infof(column, format string, args ...any) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Column:   column,
		Message:  fmt.Sprintf(format, args...),
	})
}
