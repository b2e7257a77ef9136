/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/checks"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
)

func testRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg, err := schema.NewRegistry(&schema.Schema{
		Name:    "workforce",
		Columns: []string{"ccode", "country", "year", "sector_group", "share", "population"},
		Types: map[string]schema.ColumnType{
			"ccode":        schema.TypeString,
			"country":      schema.TypeString,
			"year":         schema.TypeInteger,
			"sector_group": schema.TypeString,
			"share":        schema.TypeFloat,
			"population":   schema.TypeInteger,
		},
		Nullable: []string{"share"},
		Domains:  map[string][]string{"sector_group": {"Industry", "Agriculture", "Services"}},
	})
	require.NoError(t, err)
	return reg
}

const validWorkforceCSV = `ccode,country,year,sector_group,share,population
KEN,Kenya,2020,Industry,0.4,100
UGA,Uganda,2021,Agriculture,,250
TZA,Tanzania,2022,Services,0.25,317
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func checkStatus(t *testing.T, res *Result, check string) checks.Status {
	t.Helper()
	for _, c := range res.Checks {
		if c.Check == check {
			return c.Status
		}
	}
	t.Fatalf("check %s did not run", check)
	return ""
}

func TestValidateFileValidTable(t *testing.T) {
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", validWorkforceCSV))
	require.NoError(t, err)

	assert.True(t, res.Passed(), "failed checks: %+v", res.FailedChecks())
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 6, res.Columns)
	assert.Empty(t, res.FailedChecks())

	// The full default set ran for this schema.
	for _, want := range []string{
		checks.CheckMissingColumns,
		checks.CheckExtraColumns,
		checks.CheckNullability,
		checks.CheckTypeConformance,
		checks.CheckCategoricalDomain,
		checks.CheckNonEmptyStrings,
		checks.CheckIntegerColumns,
	} {
		assert.Equal(t, checks.StatusPassed, checkStatus(t, res, want), want)
	}
}

func TestValidateFileUnknownTable(t *testing.T) {
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "nope", writeFile(t, "nope.csv", validWorkforceCSV))
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.Contains(t, res.Err, "no schema registered")
	assert.Empty(t, res.Checks)
}

func TestValidateFileLoadFailure(t *testing.T) {
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.NotEmpty(t, res.Err)
	assert.Empty(t, res.Checks)
}

func TestValidateFileMissingColumnDoesNotMaskOthers(t *testing.T) {
	// Drop the ccode column entirely: missing-columns must fail while the
	// remaining checks still run and pass.
	csv := `country,year,sector_group,share,population
Kenya,2020,Industry,0.4,100
`
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", csv))
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.Equal(t, checks.StatusFailed, checkStatus(t, res, checks.CheckMissingColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckExtraColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckTypeConformance))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckCategoricalDomain))
}

func TestValidateFileNullInNonNullable(t *testing.T) {
	csv := `ccode,country,year,sector_group,share,population
KEN,Kenya,2020,Industry,0.4,
UGA,Uganda,2021,Services,0.2,250
`
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", csv))
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.Equal(t, checks.StatusFailed, checkStatus(t, res, checks.CheckNullability))
	// Everything else on the otherwise-valid table still passes.
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckMissingColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckExtraColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckTypeConformance))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckIntegerColumns))
}

func TestValidateFileNullsInNullableColumn(t *testing.T) {
	csv := `ccode,country,year,sector_group,share,population
KEN,Kenya,2020,Industry,,100
UGA,Uganda,2021,Services,,250
`
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", csv))
	require.NoError(t, err)

	assert.True(t, res.Passed(), "failed checks: %+v", res.FailedChecks())
}

func TestValidateFileExtraColumn(t *testing.T) {
	csv := `ccode,country,year,sector_group,share,population,notes
KEN,Kenya,2020,Industry,0.4,100,checked
`
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", csv))
	require.NoError(t, err)

	assert.False(t, res.Passed())
	assert.Equal(t, checks.StatusFailed, checkStatus(t, res, checks.CheckExtraColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckMissingColumns))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckTypeConformance))
}

func TestValidateFileSampleCap(t *testing.T) {
	v := New(testRegistry(t), WithSampleRows(1))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", validWorkforceCSV))
	require.NoError(t, err)

	assert.True(t, res.Passed())
	assert.Equal(t, 1, res.Rows)
}

func TestValidateFileOptInChecks(t *testing.T) {
	v := New(testRegistry(t),
		WithColumnOrderCheck(),
		WithYearRange(2020, 2023),
		WithScientificNotationCheck(),
		WithValueRanges(map[string]checks.Range{
			"share": {Min: floatPtr(0), Max: floatPtr(1)},
		}),
	)
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", validWorkforceCSV))
	require.NoError(t, err)

	// 2023 is absent from the file, so only the year check fails.
	assert.False(t, res.Passed())
	assert.Equal(t, checks.StatusFailed, checkStatus(t, res, checks.CheckYearRange))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckColumnOrder))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckValueRange))
	assert.Equal(t, checks.StatusPassed, checkStatus(t, res, checks.CheckScientificNotation))
}

func TestValidateFileDefaultsSkipOptInChecks(t *testing.T) {
	v := New(testRegistry(t))
	res, err := v.ValidateFile(context.Background(), "workforce", writeFile(t, "workforce.csv", validWorkforceCSV))
	require.NoError(t, err)

	for _, c := range res.Checks {
		assert.NotEqual(t, checks.CheckColumnOrder, c.Check)
		assert.NotEqual(t, checks.CheckYearRange, c.Check)
		assert.NotEqual(t, checks.CheckValueRange, c.Check)
		assert.NotEqual(t, checks.CheckScientificNotation, c.Check)
	}
}

func TestValidateFileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := New(testRegistry(t))
	_, err := v.ValidateFile(ctx, "workforce", writeFile(t, "workforce.csv", validWorkforceCSV))
	assert.ErrorIs(t, err, context.Canceled)
}

func floatPtr(f float64) *float64 { return &f }
