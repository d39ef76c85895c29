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

const surveysCSV = `record_id,species_id,weight,year
1,NL,32.5,2000
2,NL,33.0,2000
3,DM,41.2,2000
4,NL,31.8,2001
`

func writeFixture(t *testing.T, name, content string) string {
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func TestReadFile_LoadsHeaderAndRows(t *testing.T) {
	fname := writeFixture(t, "surveys.csv", surveysCSV)

	tbl, err := table.ReadFile(fname, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"record_id", "species_id", "weight", "year"}, tbl.Names())
	require.Equal(t, 4, tbl.NumRows())
	require.Equal(t, []string{"3", "DM", "41.2", "2000"}, tbl.Row(2))
}

func TestReadFile_InfersColumnKinds(t *testing.T) {
	fname := writeFixture(t, "surveys.csv", surveysCSV)

	tbl, err := table.ReadFile(fname, nil)
	require.NoError(t, err)

	expected := map[string]table.Kind{
		"record_id":  table.Int,
		"species_id": table.String,
		"weight":     table.Float,
		"year":       table.Int,
	}
	for name, kind := range expected {
		col, err := tbl.Column(name)
		require.NoError(t, err)
		require.Equal(t, kind, col.Kind, "column %s", name)
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := table.ReadFile(filepath.Join(t.TempDir(), "nope.csv"), nil)
	require.Error(t, err)
	require.True(t, table.IsNotExist(err))
}

func TestReadFile_RaggedRecord(t *testing.T) {
	fname := writeFixture(t, "bad.csv", "a,b\n1,2\n3\n")

	_, err := table.ReadFile(fname, nil)
	require.Error(t, err)
	var pe *table.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 3, pe.Line)
}

func TestReadFile_EmptyFile(t *testing.T) {
	fname := writeFixture(t, "empty.csv", "")

	_, err := table.ReadFile(fname, nil)
	var pe *table.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestReadFile_CustomDelimiter(t *testing.T) {
	fname := writeFixture(t, "surveys.tsv", "species_id;year\nNL;2000\n")

	tbl, err := table.ReadFile(fname, &table.Options{Delim: ';'})
	require.NoError(t, err)
	require.Equal(t, []string{"species_id", "year"}, tbl.Names())
	require.Equal(t, []string{"NL", "2000"}, tbl.Row(0))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	in := writeFixture(t, "surveys.csv", surveysCSV)
	out := filepath.Join(t.TempDir(), "out.csv")

	tbl, err := table.ReadFile(in, nil)
	require.NoError(t, err)
	require.NoError(t, table.WriteFile(out, tbl, nil))

	back, err := table.ReadFile(out, nil)
	require.NoError(t, err)
	require.Equal(t, tbl.Names(), back.Names())
	require.Equal(t, tbl.NumRows(), back.NumRows())
	require.Equal(t, tbl.Rows(), back.Rows())
}

func TestWriteFile_Overwrites(t *testing.T) {
	out := writeFixture(t, "out.csv", "stale,content\n1,2\n")

	tbl, err := table.New(
		table.Column{Name: "year", Kind: table.Int, Values: []string{"2000"}})
	require.NoError(t, err)
	require.NoError(t, table.WriteFile(out, tbl, nil))

	back, err := table.ReadFile(out, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"year"}, back.Names())
	require.Equal(t, 1, back.NumRows())
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "year", Values: []string{"2000"}})
	require.NoError(t, err)
	err = table.WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), tbl, nil)
	require.Error(t, err)
}
