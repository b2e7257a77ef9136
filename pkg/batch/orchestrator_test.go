/*
Copyright © 2025 World Data Lab
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/schema"
	"github.com/WorldDataLabResearch/ayec-data-validation-script/pkg/validator"
)

const validTotalWorkingCSV = `ccode,country,year,population
KEN,Kenya,2020,100
UGA,Uganda,2020,250
TZA,Tanzania,2021,317
RWA,Rwanda,2021,120
BDI,Burundi,2022,90
ETH,Ethiopia,2022,820
GHA,Ghana,2023,310
NGA,Nigeria,2023,2100
SEN,Senegal,2024,170
CIV,Ivory Coast,2024,260
`

func writeDelivery(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func newOrchestrator(t *testing.T, opts ...Option) *Orchestrator {
	t.Helper()
	reg, err := schema.DefaultRegistry()
	require.NoError(t, err)
	return New(reg, validator.New(reg), opts...)
}

func TestRunPartialDeliveryIsLenient(t *testing.T) {
	// One valid table out of 19 expected: the other 18 are reported missing,
	// but missing files do not flip run-level success by default.
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_population.csv": validTotalWorkingCSV,
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Passed)
	assert.Equal(t, 0, res.Summary.Failed)
	assert.Equal(t, 0, res.Summary.Skipped)
	assert.Equal(t, 18, res.Summary.Missing)
	assert.True(t, res.Summary.Success)
	assert.NotEmpty(t, res.RunID)

	require.Len(t, res.Tables, 1)
	assert.Equal(t, "total_working_population", res.Tables[0].Table)
	assert.True(t, res.Tables[0].Passed())
}

func TestRunUnrecognizedFileIsSkippedNotFailed(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_population.csv": validTotalWorkingCSV,
		"unknown_table.csv":            "a,b\n1,2\n",
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Passed)
	assert.Equal(t, 0, res.Summary.Failed)
	assert.Equal(t, 1, res.Summary.Skipped)
	assert.True(t, res.Summary.Success)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "unknown_table", res.Skipped[0].Table)
}

func TestRunSkippedFileSuggestsNearestName(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_populaton.csv": validTotalWorkingCSV,
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "total_working_population", res.Skipped[0].Suggestion)
}

func TestRunFailedTableFailsRun(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		// Extra column not in the schema.
		"total_working_population.csv": "ccode,country,year,population,notes\nKEN,Kenya,2020,100,x\n",
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Failed)
	assert.False(t, res.Summary.Success)
}

func TestRunLoadFailureRecordedAsTableFailure(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_population.csv": "",
		"africa_education_student.csv": "ccode,country,year,age,gender,education,status,population\nKEN,Kenya,2020,20,male,primary,student,10\n",
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	// The empty file fails to load; the valid file still validates.
	assert.Equal(t, 1, res.Summary.Failed)
	assert.Equal(t, 1, res.Summary.Passed)
	assert.False(t, res.Summary.Success)
}

func TestRunSuccessPolicy(t *testing.T) {
	files := map[string]string{
		"total_working_population.csv": validTotalWorkingCSV,
		"unknown_table.csv":            "a\n1\n",
	}

	t.Run("fail on missing", func(t *testing.T) {
		dir := t.TempDir()
		writeDelivery(t, dir, files)
		res, err := newOrchestrator(t, WithPolicy(Policy{FailOnMissing: true})).Run(context.Background(), dir)
		require.NoError(t, err)
		assert.False(t, res.Summary.Success)
	})

	t.Run("fail on skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeDelivery(t, dir, files)
		res, err := newOrchestrator(t, WithPolicy(Policy{FailOnSkipped: true})).Run(context.Background(), dir)
		require.NoError(t, err)
		assert.False(t, res.Summary.Success)
	})
}

func TestRunPanicIsContainedAsTableFailure(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_population.csv": validTotalWorkingCSV,
		"africa_education_student.csv": "ccode,country,year,age,gender,education,status,population\nKEN,Kenya,2020,20,male,primary,student,10\n",
	})

	reg, err := schema.DefaultRegistry()
	require.NoError(t, err)
	// A validator built without a registry dereferences nil on schema lookup.
	// The orchestrator must contain that per file, not crash the run.
	orch := New(reg, validator.New(nil))

	res, err := orch.Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 2, res.Summary.Failed)
	assert.False(t, res.Summary.Success)
	for _, tbl := range res.Tables {
		require.NotNil(t, tbl)
		assert.False(t, tbl.Passed())
		assert.Contains(t, tbl.Err, "unexpected error")
	}
}

func TestRunUppercaseExtensionAccepted(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"total_working_population.CSV": validTotalWorkingCSV,
	})

	res, err := newOrchestrator(t).Run(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Summary.Passed)
	// The uppercase delivery also satisfies the expected-file audit.
	assert.Equal(t, 18, res.Summary.Missing)
	assert.NotContains(t, res.Missing, "total_working_population.csv")
}

func TestRunWithWorkersKeepsDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeDelivery(t, dir, map[string]string{
		"africa_education_student.csv":    "ccode,country,year,age,gender,education,status,population\nKEN,Kenya,2020,20,male,primary,student,10\n",
		"africa_education_unemployed.csv": "ccode,country,year,age,gender,education,status,population\nKEN,Kenya,2020,20,male,primary,unemployed,10\n",
		"total_working_population.csv":    validTotalWorkingCSV,
	})

	res, err := newOrchestrator(t, WithWorkers(4)).Run(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, res.Tables, 3)
	assert.Equal(t, "africa_education_student", res.Tables[0].Table)
	assert.Equal(t, "africa_education_unemployed", res.Tables[1].Table)
	assert.Equal(t, "total_working_population", res.Tables[2].Table)
	assert.Equal(t, 3, res.Summary.Passed)
}

func TestRunFatalErrors(t *testing.T) {
	t.Run("not a directory", func(t *testing.T) {
		_, err := newOrchestrator(t).Run(context.Background(), filepath.Join(t.TempDir(), "absent"))
		assert.ErrorContains(t, err, "not a valid directory")
	})

	t.Run("no candidate files", func(t *testing.T) {
		dir := t.TempDir()
		writeDelivery(t, dir, map[string]string{"readme.txt": "hi"})
		_, err := newOrchestrator(t).Run(context.Background(), dir)
		assert.ErrorContains(t, err, "no .csv files")
	})
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "total_working_population", tableName("/data/total_working_population.csv"))
	assert.Equal(t, "total_working_population", tableName(`total_working_population.CSV`))
}
