/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/batch"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/reporter"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate every CSV table file in a directory against its schema",
		ArgsUsage:             "DIRECTORY",
		Description: `Validates all recognized CSV files in DIRECTORY against the schema catalog.
Each file resolves to a table by its base name (total_working_population.csv
validates against the total_working_population schema); files that do not
resolve are skipped. Gzip-compressed files are detected by content and
validate exactly like plain ones.

For each table the following always run: required-column presence, extra
columns, nullability, and type conformance; categorical domains, non-empty
strings, and integer values run where the schema constrains them. Column
order, year-range completeness, and scientific-notation detection are opt-in
flags.

# Examples

Validate a delivery with the built-in catalog:
  ayecctl validate ./data

Validate a small sample of each file and write a JSON report:
  ayecctl validate ./data --sample-size 1000 --format json --output report.json

Require the complete file set and strict column order:
  ayecctl validate ./data --fail-on-missing --check-column-order

# Exit Status

Exits 0 when every validated table passed. Exits 1 when DIRECTORY is invalid,
no CSV files were found, or at least one validated table failed. Missing
expected files and skipped files do not fail the run unless the corresponding
--fail-on-* flag is set; partial deliveries validate cleanly by default.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "sample-size",
				Aliases: []string{"n"},
				Value:   validator.DefaultSampleRows,
				Usage:   "Number of leading rows to load from each file",
			},
			&cli.StringFlag{
				Name:  "schemas",
				Usage: "Path to an external schema catalog (YAML); defaults to the built-in catalog",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "text",
				Usage:   "Report format (text, json, yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Report file path (default: stdout)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "Number of files validated concurrently",
			},
			&cli.BoolFlag{
				Name:  "check-column-order",
				Usage: "Require columns in exact schema order",
			},
			&cli.StringFlag{
				Name:  "year-range",
				Usage: "Require every year in the inclusive range to be present, format START-END (e.g. 2000-2030)",
			},
			&cli.BoolFlag{
				Name:  "check-scientific-notation",
				Usage: "Flag float values rendered in scientific notation",
			},
			&cli.BoolFlag{
				Name:  "fail-on-missing",
				Usage: "Fail the run when an expected file is absent",
			},
			&cli.BoolFlag{
				Name:  "fail-on-skipped",
				Usage: "Fail the run when a file does not resolve to a schema",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				return errors.New("missing required argument: DIRECTORY")
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			reg, err := loadRegistry(cmd)
			if err != nil {
				return err
			}

			vopts := []validator.Option{
				validator.WithSampleRows(int(cmd.Int("sample-size"))),
			}
			if cmd.Bool("check-column-order") {
				vopts = append(vopts, validator.WithColumnOrderCheck())
			}
			if cmd.Bool("check-scientific-notation") {
				vopts = append(vopts, validator.WithScientificNotationCheck())
			}
			if yr := cmd.String("year-range"); yr != "" {
				start, end, err := parseYearRange(yr)
				if err != nil {
					return fmt.Errorf("invalid --year-range: %w", err)
				}
				vopts = append(vopts, validator.WithYearRange(start, end))
			}

			orch := batch.New(reg, validator.New(reg, vopts...),
				batch.WithWorkers(int(cmd.Int("workers"))),
				batch.WithPolicy(batch.Policy{
					FailOnMissing: cmd.Bool("fail-on-missing"),
					FailOnSkipped: cmd.Bool("fail-on-skipped"),
				}),
			)

			res, err := orch.Run(ctx, dir)
			if err != nil {
				return err
			}

			rep, closeReport, err := reporter.NewFileOrStdout(cmd.String("output"), outFormat)
			if err != nil {
				return err
			}
			if err := rep.Render(res); err != nil {
				closeReport()
				return err
			}
			if err := closeReport(); err != nil {
				return err
			}

			if !res.Summary.Success {
				return cli.Exit(fmt.Sprintf("validation failed: %d of %d tables failed",
					res.Summary.Failed, res.Summary.Total), 1)
			}
			return nil
		},
	}
}
