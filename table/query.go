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

// Query chains table transforms into a pipeline without intermediate error
// checks. The first error wins: once a stage fails, every later stage is a
// no-op and the error surfaces from Table or WriteTo.
//
//	err := table.Read("surveys.csv", nil).
//		Select("species_id", "year").
//		Where("species_id", "NL").
//		CountBy("year").
//		WriteTo("counts.csv", nil)
type Query struct {
	t   *Table
	err error
}

// Read starts a pipeline by loading the named delimited file.
func Read(fname string, opts *Options) *Query {
	t, err := ReadFile(fname, opts)
	return &Query{t: t, err: err}
}

// FromTable starts a pipeline from an existing table.
func FromTable(t *Table) *Query {
	return &Query{t: t}
}

func (q *Query) apply(fn func(*Table) (*Table, error)) *Query {
	if q.err != nil {
		return q
	}
	t, err := fn(q.t)
	return &Query{t: t, err: err}
}

// Select keeps only the named columns.
func (q *Query) Select(names ...string) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.Select(names...) })
}

// Where keeps only the rows whose value in the named column equals value.
func (q *Query) Where(column, value string) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.Where(column, value) })
}

// CountBy groups rows by the named column and counts each group.
func (q *Query) CountBy(column string) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.CountBy(column) })
}

// Distinct keeps the first row for each distinct value of the named column.
func (q *Query) Distinct(column string) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.Distinct(column) })
}

// Head keeps the first n rows.
func (q *Query) Head(n int) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.Head(n) })
}

// Arrange sorts rows by the named column in its natural order.
func (q *Query) Arrange(column string) *Query {
	return q.apply(func(t *Table) (*Table, error) { return t.Arrange(column) })
}

// Table answers the pipeline result, or the first error encountered.
func (q *Query) Table() (*Table, error) {
	return q.t, q.err
}

// WriteTo serializes the pipeline result to the named file. If any earlier
// stage failed, no file is created and the stage's error is answered.
func (q *Query) WriteTo(fname string, opts *Options) error {
	if q.err != nil {
		return q.err
	}
	return WriteFile(fname, q.t, opts)
}
