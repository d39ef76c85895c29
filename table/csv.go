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
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

// Options control how delimited files are read and written.
type Options struct {
	Delim rune // field delimiter (default: ',')
}

func (opts *Options) delim() rune {
	if opts == nil || opts.Delim == 0 {
		return ','
	}
	return opts.Delim
}

// ReadFile loads the named delimited file into a Table. The first record is
// the header, every following record is one row. Column kinds are inferred
// from the loaded values. Records whose field count does not match the
// header surface as a *ParseError.
func ReadFile(fname string, opts *Options) (*Table, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "reading '%s'", fname)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = opts.delim()
	records, err := r.ReadAll()
	if err != nil {
		if e, ok := err.(*csv.ParseError); ok {
			return nil, &ParseError{Line: e.Line, Err: e.Err}
		}
		return nil, errors.Wrapf(err, "reading '%s'", fname)
	}
	if len(records) == 0 {
		return nil, &ParseError{Line: 1, Err: errors.New("missing header record")}
	}

	header := records[0]
	cols := make([]Column, len(header))
	for i, name := range header {
		values := make([]string, len(records)-1)
		for j, record := range records[1:] {
			values[j] = record[i]
		}
		cols[i] = Column{Name: name, Values: values}
	}
	result, err := New(cols...)
	if err != nil {
		return nil, err
	}
	result.inferKinds()
	return result, nil
}

// WriteFile serializes the table to the named delimited file, header record
// first. An existing file is overwritten.
func WriteFile(fname string, t *Table, opts *Options) error {
	f, err := os.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "writing '%s'", fname)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = opts.delim()
	if err := w.Write(t.Names()); err != nil {
		return errors.Wrapf(err, "writing '%s'", fname)
	}
	for i := 0; i < t.NumRows(); i++ {
		if err := w.Write(t.Row(i)); err != nil {
			return errors.Wrapf(err, "writing '%s'", fname)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "writing '%s'", fname)
	}
	return nil
}
