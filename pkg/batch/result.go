/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"time"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/validator"
)

// SkippedFile records a discovered file whose name did not resolve to any
// registered schema. Skipping is a distinct disposition, not a failure.
type SkippedFile struct {
	Path  string `json:"path" yaml:"path"`
	Table string `json:"table" yaml:"table"`

	// Suggestion is the nearest registered table name, when one is close
	// enough to look like a typo.
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Summary aggregates the run-level counts.
type Summary struct {
	Total    int           `json:"total" yaml:"total"`
	Passed   int           `json:"passed" yaml:"passed"`
	Failed   int           `json:"failed" yaml:"failed"`
	Skipped  int           `json:"skipped" yaml:"skipped"`
	Missing  int           `json:"missing" yaml:"missing"`
	Success  bool          `json:"success" yaml:"success"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of one batch run over a directory.
type Result struct {
	// RunID uniquely identifies this run in logs and reports.
	RunID string `json:"runId" yaml:"runId"`

	// Dir is the validated directory.
	Dir string `json:"dir" yaml:"dir"`

	// SampleRows is the per-file row cap that was in effect.
	SampleRows int `json:"sampleRows" yaml:"sampleRows"`

	// Expected lists the file names every registered schema should deliver.
	Expected []string `json:"expected" yaml:"expected"`

	// Missing lists expected files absent from the directory.
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Tables holds per-file validation results in processing order.
	Tables []*validator.Result `json:"tables" yaml:"tables"`

	// Skipped lists files that did not resolve to a schema.
	Skipped []SkippedFile `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	Summary Summary `json:"summary" yaml:"summary"`
}

// Passed returns the table results that passed, in processing order.
func (r *Result) Passed() []*validator.Result {
	var out []*validator.Result
	for _, t := range r.Tables {
		if t.Passed() {
			out = append(out, t)
		}
	}
	return out
}

// Failed returns the table results that failed, in processing order.
func (r *Result) Failed() []*validator.Result {
	var out []*validator.Result
	for _, t := range r.Tables {
		if !t.Passed() {
			out = append(out, t)
		}
	}
	return out
}

// finalize computes the summary counts and applies the success policy.
func (r *Result) finalize(policy Policy, duration time.Duration) {
	r.Summary = Summary{
		Total:    len(r.Tables),
		Passed:   len(r.Passed()),
		Failed:   len(r.Failed()),
		Skipped:  len(r.Skipped),
		Missing:  len(r.Missing),
		Duration: duration,
	}

	r.Summary.Success = r.Summary.Failed == 0
	if policy.FailOnMissing && r.Summary.Missing > 0 {
		r.Summary.Success = false
	}
	if policy.FailOnSkipped && r.Summary.Skipped > 0 {
		r.Summary.Success = false
	}
}
