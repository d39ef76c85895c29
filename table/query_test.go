// Copyright 2023 The tidycsv authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tidycsv/table"
)

func TestQuery_SurveyPipeline(t *testing.T) {
	fname := writeFixture(t, "surveys.csv", surveysCSV)

	tbl, err := table.Read(fname, nil).
		Select("species_id", "year").
		Where("species_id", "NL").
		CountBy("year").
		Table()
	require.NoError(t, err)
	require.Equal(t, []string{"year", "n"}, tbl.Names())
	require.Equal(t, [][]string{
		{"2000", "2"},
		{"2001", "1"},
	}, tbl.Rows())
}

func TestQuery_FirstErrorWins(t *testing.T) {
	fname := writeFixture(t, "surveys.csv", surveysCSV)

	_, err := table.Read(fname, nil).
		Select("species_id", "elevation").
		Where("species_id", "NL").
		CountBy("year").
		Table()
	require.ErrorIs(t, err, table.ErrColumnNotFound)
	require.Contains(t, err.Error(), "elevation")
}

func TestQuery_ReadErrorPropagates(t *testing.T) {
	_, err := table.Read(filepath.Join(t.TempDir(), "nope.csv"), nil).
		Select("species_id").
		Table()
	require.True(t, table.IsNotExist(err))
}

func TestQuery_WriteTo(t *testing.T) {
	in := writeFixture(t, "surveys.csv", surveysCSV)
	out := filepath.Join(t.TempDir(), "counts.csv")

	err := table.Read(in, nil).
		Where("species_id", "NL").
		CountBy("year").
		WriteTo(out, nil)
	require.NoError(t, err)

	back, err := table.ReadFile(out, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"year", "n"}, back.Names())
	require.Equal(t, 2, back.NumRows())
}

func TestQuery_FailedPipelineWritesNoFile(t *testing.T) {
	in := writeFixture(t, "surveys.csv", surveysCSV)
	out := filepath.Join(t.TempDir(), "counts.csv")

	err := table.Read(in, nil).
		Select("elevation").
		WriteTo(out, nil)
	require.ErrorIs(t, err, table.ErrColumnNotFound)

	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err))
}

func TestQuery_FromTable(t *testing.T) {
	tbl, err := table.FromTable(surveys(t)).
		Distinct("species_id").
		Select("species_id").
		Table()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"NL"}, {"DM"}}, tbl.Rows())
}
