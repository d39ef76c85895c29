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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Showable is anything that can pretty-print itself to stdout.
type Showable interface {
	Show()
}

func makeIndent(indent int) string {
	return strings.Repeat(" ", indent)
}

// Encode the given item as JSON to the given writer.
func Encode(w io.Writer, item interface{}, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", makeIndent(indent))
	return enc.Encode(item)
}

// Print the given item as JSON to stdout.
func ShowJSON(item interface{}, indent int) error {
	return Encode(os.Stdout, item, indent)
}

type tableJSON struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(&tableJSON{Header: t.Names(), Rows: t.Rows()})
}

// Show pretty-prints the table to stdout: a header record, a rule, then one
// line per row, with columns padded to a common width.
func (t *Table) Show() {
	widths := make([]int, t.NumCols())
	for i, name := range t.Names() {
		widths[i] = len(name)
	}
	for _, row := range t.Rows() {
		for i, v := range row {
			if len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}
	showRow(t.Names(), widths)
	rule := make([]string, t.NumCols())
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	showRow(rule, widths)
	for _, row := range t.Rows() {
		showRow(row, widths)
	}
}

func showRow(row []string, widths []int) {
	for i, v := range row {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Printf("%-*s", widths[i], v)
	}
	fmt.Println()
}
