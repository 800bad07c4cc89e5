// Copyright 2025 gdeltPyR Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package feed

import (
	"github.com/msamylea/gdeltPyR/table"
	"github.com/stockparfait/errors"
)

// EmptyResultError reports a query whose every partial result came back
// empty. A single missing interval is not an error; an entirely empty batch
// is, and the caller must see it rather than an empty table.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string {
	return "the query returned no data; check the query parameters and retry"
}

// IsEmptyResult checks whether err is an EmptyResultError.
func IsEmptyResult(err error) bool {
	var e *EmptyResultError
	return errors.As(err, &e)
}

// Merge concatenates the partial results into one table and applies the
// declared column names. Concatenation is commutative: partials arrive in
// whatever order the fetch pool completed them, so no row ordering is
// guaranteed across buckets. A combined width of exactly one column fewer
// than declared is known version drift, reconciled by dropping the last
// declared name and keeping the stable leading columns.
func Merge(partials []Rows, columns []string) (*table.Table, error) {
	var rows []table.Row
	width := 0
	for _, p := range partials {
		for _, r := range p {
			if width == 0 {
				width = len(r)
			}
			rows = append(rows, table.Strings(r))
		}
	}
	if len(rows) == 0 {
		return nil, &EmptyResultError{}
	}
	header := columns
	if width == len(columns)-1 {
		header = columns[:len(columns)-1]
	}
	tbl := table.NewTable(header...)
	tbl.AddRow(rows...)
	return tbl, nil
}
