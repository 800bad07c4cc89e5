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

package search

import (
	"strconv"

	"github.com/msamylea/gdeltPyR/feed"
	"github.com/stockparfait/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds basic statistics of one numeric column.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummaryColumns are the numeric columns worth summarizing per table. The
// gkg tone column is a composite field, not a plain number, so gkg has none.
func SummaryColumns(t feed.Table) []string {
	switch t {
	case feed.Events:
		return []string{"GoldsteinScale", "AvgTone"}
	case feed.Mentions:
		return []string{"MentionDocTone"}
	}
	return nil
}

// Summarize computes statistics over the parseable numeric values of the
// named column, skipping blank and malformed cells.
func Summarize(r *Result, column string) (*Summary, error) {
	col := -1
	for i, name := range r.Data.Header {
		if name == column {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errors.Reason("no column '%s' in the %s result", column, r.Table)
	}
	var xs []float64
	for _, row := range r.Data.Rows {
		fields := row.CSV()
		if col >= len(fields) || fields[col] == "" {
			continue
		}
		x, err := strconv.ParseFloat(fields[col], 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		return nil, errors.Reason("column '%s' has no numeric values", column)
	}
	return &Summary{
		Column: column,
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}, nil
}
