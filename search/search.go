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

// Package search exposes the single query entry point: date input in,
// combined table with its schema applied out.
package search

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/msamylea/gdeltPyR/dates"
	"github.com/msamylea/gdeltPyR/feed"
	"github.com/msamylea/gdeltPyR/schema"
	"github.com/msamylea/gdeltPyR/table"
	"github.com/stockparfait/logging"
)

// Query are the user-facing parameters of one search.
type Query struct {
	Dates       []string // single date, 2-element range, or discrete dates
	Table       string   // events (default), mentions or gkg
	Coverage    bool     // every 15-minute interval per day, not one snapshot
	Translation bool     // the translated set instead of the English set
	NormCols    bool     // lowercase column names, underscores stripped
}

// Searcher runs feed queries. The clock and the CAMEO mapping are injected
// once and shared read-only across queries and fetch workers.
type Searcher struct {
	clock   clockwork.Clock
	codes   schema.CAMEOCodes
	workers int
}

// New creates a Searcher. A nil clock means the real clock, nil codes mean
// the builtin root-code mapping, and workers <= 0 means one worker per CPU.
func New(clock clockwork.Clock, codes schema.CAMEOCodes, workers int) *Searcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if codes == nil {
		codes = schema.BuiltinCAMEOCodes()
	}
	return &Searcher{clock: clock, codes: codes, workers: workers}
}

// Result is the terminal artifact of one query: the combined table with
// named columns, plus the table selector so that downstream consumers know
// which enrichments apply.
type Result struct {
	Table feed.Table
	Data  *table.Table
}

// Search validates the query, resolves it into buckets and locators, fetches
// them and merges the results. All input validation happens before any
// network activity; per-locator fetch failures surface only as an
// EmptyResultError when nothing at all came back.
func (s *Searcher) Search(ctx context.Context, q Query) (*Result, error) {
	tbl, err := feed.ParseTable(q.Table)
	if err != nil {
		return nil, err
	}
	parsed, err := dates.Validate(s.clock, q.Dates)
	if err != nil {
		return nil, err
	}
	days := dates.Resolve(parsed)
	buckets := dates.Buckets(s.clock, days, q.Coverage)
	urls, err := feed.URLs(buckets, tbl, q.Translation)
	if err != nil {
		return nil, err
	}
	logging.Infof(ctx, "fetching %d %s file(s) over %d day(s)",
		len(urls), tbl, len(days))
	partials := feed.FetchAll(ctx, urls, s.workers)
	combined, err := feed.Merge(partials, schema.Columns(tbl))
	if err != nil {
		return nil, err
	}
	logging.Infof(ctx, "merged %d rows", len(combined.Rows))
	if tbl == feed.Events {
		describeEvents(combined, s.codes)
	}
	if q.NormCols {
		normalizeColumns(combined)
	}
	return &Result{Table: tbl, Data: combined}, nil
}

// eventCodeColumn is the position of EventCode in the events schema; the
// description is inserted immediately after it.
const eventCodeColumn = 26

// describeEvents inserts a CAMEOCodeDescription column after EventCode.
func describeEvents(t *table.Table, codes schema.CAMEOCodes) {
	at := eventCodeColumn + 1
	if len(t.Header) < at {
		return
	}
	t.Header = insertString(t.Header, at, "CAMEOCodeDescription")
	for i, r := range t.Rows {
		row := r.CSV()
		if len(row) < at {
			continue
		}
		t.Rows[i] = table.Strings(
			insertString(row, at, codes.Describe(row[eventCodeColumn])))
	}
}

func insertString(row []string, at int, value string) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, row[:at]...)
	out = append(out, value)
	return append(out, row[at:]...)
}

// normalizeColumns rewrites column names for SQL and shapefile
// compatibility: lowercase, underscores removed.
func normalizeColumns(t *table.Table) {
	for i, name := range t.Header {
		t.Header[i] = strings.ToLower(strings.ReplaceAll(name, "_", ""))
	}
}
