/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/checks"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/validator"
)

// fileExtension is the expected table file extension. Matching is
// case-insensitive, so .CSV deliveries are accepted as equivalent.
const fileExtension = ".csv"

// Policy decides what, beyond failed tables, flips a run to failure. The
// defaults preserve the historical leniency: missing expected files and
// unrecognized files are reported but validate partial deliveries cleanly.
type Policy struct {
	// FailOnMissing fails the run when an expected file is absent.
	FailOnMissing bool

	// FailOnSkipped fails the run when a file does not resolve to a schema.
	FailOnSkipped bool
}

// Orchestrator validates every recognized table file in a directory.
type Orchestrator struct {
	registry  *schema.Registry
	validator *validator.Validator
	workers   int
	policy    Policy
}

// Option is a functional option for configuring Orchestrator instances.
type Option func(*Orchestrator)

// WithWorkers sets the number of files validated concurrently. Values below 1
// mean sequential processing.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		o.workers = n
	}
}

// WithPolicy sets the run-level success policy.
func WithPolicy(p Policy) Option {
	return func(o *Orchestrator) {
		o.policy = p
	}
}

// New creates a new Orchestrator.
func New(registry *schema.Registry, v *validator.Validator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:  registry,
		validator: v,
		workers:   1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run validates every candidate file in dir and returns the aggregated run
// result. It returns an error only for the two batch-fatal conditions: dir is
// not a directory, or it contains no candidate files. Per-file problems are
// recorded in the result and processing continues.
func (o *Orchestrator) Run(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q is not a valid directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		Dir:        dir,
		SampleRows: o.validator.SampleRows(),
	}

	// Every registered table is expected to be delivered as <name>.csv.
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			present[strings.ToLower(e.Name())] = true
		}
	}
	for _, name := range o.registry.Names() {
		expected := name + fileExtension
		res.Expected = append(res.Expected, expected)
		if !present[strings.ToLower(expected)] {
			res.Missing = append(res.Missing, expected)
		}
	}

	files := discoverFiles(dir, entries)
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %q", fileExtension, dir)
	}

	slog.Info("starting batch validation",
		"run_id", res.RunID,
		"dir", dir,
		"files", len(files),
		"missing_expected", len(res.Missing),
		"sample_rows", res.SampleRows,
		"workers", o.workers)

	// Partition into recognized tables and skipped files up front so the
	// worker pool only ever sees validatable work.
	type job struct {
		table string
		path  string
	}
	var jobs []job
	for _, path := range files {
		name := tableName(path)
		if _, ok := o.registry.Get(name); !ok {
			skipped := SkippedFile{Path: path, Table: name}
			if suggestion, ok := o.registry.Suggest(name); ok {
				skipped.Suggestion = suggestion
			}
			res.Skipped = append(res.Skipped, skipped)
			slog.Warn("skipping unrecognized file", "path", path, "table", name)
			continue
		}
		jobs = append(jobs, job{table: name, path: path})
	}

	workers := o.workers
	if workers < 1 {
		workers = 1
	}
	results := make([]*validator.Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			r, err := o.validateSafely(gctx, j.table, j.path)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Only context cancellation propagates out of validateSafely.
		return nil, err
	}
	res.Tables = results

	res.finalize(o.policy, time.Since(start))
	observeRun(res)

	slog.Info("batch validation finished",
		"run_id", res.RunID,
		"passed", res.Summary.Passed,
		"failed", res.Summary.Failed,
		"skipped", res.Summary.Skipped,
		"missing", res.Summary.Missing,
		"success", res.Summary.Success,
		"duration", res.Summary.Duration)

	return res, nil
}

// validateSafely contains any panic from a single file's validation, turning
// it into that file's failure instead of aborting the batch.
func (o *Orchestrator) validateSafely(ctx context.Context, name, path string) (res *validator.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("unexpected error validating file", "table", name, "path", path, "panic", r)
			res = &validator.Result{
				Table:  name,
				Path:   path,
				Status: checks.StatusFailed,
				Err:    fmt.Sprintf("unexpected error: %v", r),
			}
			err = nil
		}
	}()
	return o.validator.ValidateFile(ctx, name, path)
}

// discoverFiles returns the candidate files in dir, deduplicated and sorted
// for a deterministic processing order.
func discoverFiles(dir string, entries []os.DirEntry) []string {
	seen := make(map[string]bool)
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExtension) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files
}

// tableName derives the table name from a file path: the base name without
// its extension is the sole file-to-schema resolution mechanism.
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
