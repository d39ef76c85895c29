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
	"os"

	"github.com/pkg/errors"
)

var ErrColumnNotFound = errors.New("column not found")
var ErrDuplicateColumn = errors.New("duplicate column name")
var ErrRaggedColumns = errors.New("columns have unequal lengths")

// ParseError reports malformed CSV content, eg. a record whose field count
// does not match the header.
type ParseError struct {
	Line int // 1-based line number of the offending record
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Cause() error { return e.Err }

func (e *ParseError) Unwrap() error { return e.Err }

// Answers if the given error originates from a missing input file.
func IsNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}
