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
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// CountColumn is the name of the count column emitted by CountBy.
const CountColumn = "n"

// Select answers a new table holding only the named columns, in the order
// requested. Row order and count are preserved.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, len(names))
	for i, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = *col
	}
	return New(cols...)
}

// Where answers a new table holding only the rows whose value in the named
// column equals value, preserving relative row order. A result with zero
// rows is valid.
func (t *Table) Where(column, value string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	rows := []int{}
	for i, v := range col.Values {
		if v == value {
			rows = append(rows, i)
		}
	}
	return t.take(rows), nil
}

// CountBy partitions rows by their value in the named column and answers a
// two column table: the distinct key values and the row count of each group,
// ordered by the key's natural sort order (numeric for Int and Float key
// columns, lexical otherwise).
func (t *Table) CountBy(column string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	keys := []string{}
	for _, v := range col.Values {
		if _, ok := counts[v]; !ok {
			keys = append(keys, v)
		}
		counts[v]++
	}
	sort.Slice(keys, func(i, j int) bool {
		return less(col.Kind, keys[i], keys[j])
	})
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = strconv.Itoa(counts[k])
	}
	return New(
		Column{Name: col.Name, Kind: col.Kind, Values: keys},
		Column{Name: CountColumn, Kind: Int, Values: values})
}

// Distinct answers a new table holding the first row for each distinct value
// of the named column, in order of first appearance.
func (t *Table) Distinct(column string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	rows := []int{}
	for i, v := range col.Values {
		if !seen[v] {
			seen[v] = true
			rows = append(rows, i)
		}
	}
	return t.take(rows), nil
}

// Head answers a new table holding the first n rows. If the table has fewer
// than n rows the whole table is answered.
func (t *Table) Head(n int) (*Table, error) {
	if n < 0 {
		return nil, errors.Errorf("head: negative row count %d", n)
	}
	if n > t.NumRows() {
		n = t.NumRows()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.take(rows), nil
}

// Arrange answers a new table with rows sorted by the named column in its
// natural order. The sort is stable, rows with equal keys keep their
// relative order.
func (t *Table) Arrange(column string) (*Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	rows := make([]int, t.NumRows())
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return less(col.Kind, col.Values[rows[i]], col.Values[rows[j]])
	})
	return t.take(rows), nil
}
