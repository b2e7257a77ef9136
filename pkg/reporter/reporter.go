/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/batch"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/checks"
)

const rule = "================================================================================"

// Reporter renders a batch run result to a writer. Checks produce structured
// diagnostics; all formatting decisions live here.
type Reporter struct {
	w       io.Writer
	format  Format
	printer *message.Printer
}

// New creates a reporter writing the given format to w.
func New(w io.Writer, format Format) *Reporter {
	return &Reporter{
		w:       w,
		format:  format,
		printer: message.NewPrinter(language.English),
	}
}

// NewFileOrStdout creates a reporter writing to the given path, or to stdout
// when path is empty.
func NewFileOrStdout(path string, format Format) (*Reporter, func() error, error) {
	if path == "" {
		return New(os.Stdout, format), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating report file: %w", err)
	}
	return New(f, format), f.Close, nil
}

// Render writes the run result in the configured format.
func (r *Reporter) Render(res *batch.Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		defer enc.Close()
		return enc.Encode(res)
	case FormatText:
		return r.renderText(res)
	default:
		return fmt.Errorf("unknown report format: %q, valid formats are: %v", r.format, SupportedFormats())
	}
}

func (r *Reporter) renderText(res *batch.Result) error {
	p := r.printer

	r.line(rule)
	r.line("AYEC CSV Batch Validation")
	r.line(rule)
	r.linef("Folder: %s", res.Dir)
	r.linef("Run ID: %s", res.RunID)
	r.linef("Found %d CSV file(s)", res.Summary.Total+res.Summary.Skipped)
	r.linef("Sample size: %s rows per file", p.Sprintf("%d", res.SampleRows))
	r.line(rule)

	r.line("")
	r.linef("Checking for existence of all %d required files", len(res.Expected))
	r.linef("  Found: %d", len(res.Expected)-len(res.Missing))
	if len(res.Missing) > 0 {
		r.linef("  ❌ Missing required files:")
		for _, f := range res.Missing {
			r.linef("     - %s", f)
		}
	} else {
		r.linef("  ✅ All %d required files are present", len(res.Expected))
	}

	for _, t := range res.Tables {
		r.line("")
		r.line(rule)
		r.linef("Validating: %s", t.Table)
		r.linef("File: %s", t.Path)
		r.line(rule)

		if t.Err != "" {
			r.linef("  ❌ %s", t.Err)
		} else {
			r.linef("  Loaded %s rows, %d columns", p.Sprintf("%d", t.Rows), t.Columns)
			for _, c := range t.Checks {
				r.renderCheck(c)
			}
		}

		if t.Passed() {
			r.linef("  ✅ '%s' passed all validation checks", t.Table)
		} else {
			r.linef("  ❌ '%s' failed some validation checks", t.Table)
		}
	}

	r.line("")
	r.line(rule)
	r.line("VALIDATION SUMMARY")
	r.line(rule)
	r.linef("Total files processed: %d", res.Summary.Total)
	r.linef("✅ Passed: %d", res.Summary.Passed)
	r.linef("❌ Failed: %d", res.Summary.Failed)
	if res.Summary.Skipped > 0 {
		r.linef("⚠️  Skipped: %d", res.Summary.Skipped)
	}
	if res.Summary.Missing > 0 {
		r.linef("❌ Missing expected files: %d", res.Summary.Missing)
	}

	if passed := res.Passed(); len(passed) > 0 {
		r.line("")
		r.line("✅ Passed files:")
		for _, t := range passed {
			r.linef("   - %s (%s)", baseName(t.Path), t.Table)
		}
	}
	if failed := res.Failed(); len(failed) > 0 {
		r.line("")
		r.line("❌ Failed files:")
		for _, t := range failed {
			r.linef("   - %s (%s)", baseName(t.Path), t.Table)
		}
	}
	if len(res.Skipped) > 0 {
		r.line("")
		r.line("⚠️  Skipped files:")
		for _, s := range res.Skipped {
			if s.Suggestion != "" {
				r.linef("   - %s (did you mean %q?)", baseName(s.Path), s.Suggestion)
			} else {
				r.linef("   - %s", baseName(s.Path))
			}
		}
	}
	r.line(rule)

	return nil
}

func (r *Reporter) renderCheck(c checks.Result) {
	if c.Passed() {
		r.linef("  ✅ %s", c.Check)
	} else {
		r.linef("  ❌ %s", c.Check)
	}
	for _, d := range c.Diagnostics {
		switch d.Severity {
		case checks.SeverityInfo:
			r.linef("     ℹ️ %s", d.Message)
		default:
			r.linef("     - %s", d.Message)
		}
	}
}

func (r *Reporter) line(s string) {
	fmt.Fprintln(r.w, s)
}

func (r *Reporter) linef(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func baseName(path string) string {
	return filepath.Base(path)
}
