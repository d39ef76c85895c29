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

package table

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind is the inferred scalar type of a column. Values are always kept in
// their source text form; Kind only selects numeric vs lexical ordering.
type Kind int

const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "string"
}

// Column is a named, ordered sequence of scalar values.
type Column struct {
	Name   string
	Kind   Kind
	Values []string
}

// Table is an ordered collection of equal-length named columns. Row i across
// all columns is one logical record. Transforms never mutate their receiver,
// each produces a new Table.
type Table struct {
	cols []Column
}

// New creates a Table from the given columns. All columns must have the same
// length and distinct names.
func New(cols ...Column) (*Table, error) {
	seen := map[string]bool{}
	for i, col := range cols {
		if seen[col.Name] {
			return nil, errors.Wrapf(ErrDuplicateColumn, "'%s'", col.Name)
		}
		seen[col.Name] = true
		if len(col.Values) != len(cols[0].Values) {
			return nil, errors.Wrapf(ErrRaggedColumns,
				"'%s' has %d values, '%s' has %d",
				cols[i].Name, len(col.Values), cols[0].Name, len(cols[0].Values))
		}
	}
	return &Table{cols: cols}, nil
}

// NumRows answers the number of records in the table.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0].Values)
}

// NumCols answers the number of columns in the table.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// Names answers the ordered column names.
func (t *Table) Names() []string {
	result := make([]string, len(t.cols))
	for i, col := range t.cols {
		result[i] = col.Name
	}
	return result
}

// Column answers the named column.
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i], nil
		}
	}
	return nil, errors.Wrapf(ErrColumnNotFound, "'%s'", name)
}

// Row answers record n as one value per column, in column order.
func (t *Table) Row(n int) []string {
	result := make([]string, len(t.cols))
	for i, col := range t.cols {
		result[i] = col.Values[n]
	}
	return result
}

// Rows answers all records in row order.
func (t *Table) Rows() [][]string {
	result := make([][]string, t.NumRows())
	for i := range result {
		result[i] = t.Row(i)
	}
	return result
}

// take builds a new table holding the rows of t selected by the given
// indices, in the given order. Column names and kinds are preserved.
func (t *Table) take(rows []int) *Table {
	cols := make([]Column, len(t.cols))
	for i, col := range t.cols {
		values := make([]string, len(rows))
		for j, n := range rows {
			values[j] = col.Values[n]
		}
		cols[i] = Column{Name: col.Name, Kind: col.Kind, Values: values}
	}
	return &Table{cols: cols}
}

// less compares two values of the given kind in natural order: numeric for
// Int and Float columns, lexical otherwise. Unparsable values sort as text.
func less(kind Kind, a, b string) bool {
	switch kind {
	case Int:
		av, aerr := strconv.ParseInt(a, 10, 64)
		bv, berr := strconv.ParseInt(b, 10, 64)
		if aerr == nil && berr == nil {
			return av < bv
		}
	case Float:
		av, aerr := strconv.ParseFloat(a, 64)
		bv, berr := strconv.ParseFloat(b, 64)
		if aerr == nil && berr == nil {
			return av < bv
		}
	}
	return a < b
}

// inferKinds assigns each column the narrowest kind that parses every one of
// its values: Int, then Float, then String. Columns with no values or any
// empty value stay String.
func (t *Table) inferKinds() {
	for i := range t.cols {
		t.cols[i].Kind = inferKind(t.cols[i].Values)
	}
}

func inferKind(values []string) Kind {
	if len(values) == 0 {
		return String
	}
	kind := Int
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 64); err == nil {
			continue
		}
		kind = Float
		break
	}
	if kind == Int {
		return Int
	}
	for _, v := range values {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return String
		}
	}
	return Float
}
