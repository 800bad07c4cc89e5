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
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"runtime"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"
)

// Rows is the parsed contents of one fetched resource: an ordered sequence of
// positional records with no header. Column names are applied later, at merge
// time.
type Rows [][]string

// Fetch downloads one compressed resource and parses the single tab-delimited
// file inside. Failures are absorbed: a missing interval (the feed returns
// 404 for not-yet-published files), a transient network error or an
// unreadable payload all yield an empty result with a warning log, so that
// one silent interval cannot abort a whole batch.
func Fetch(ctx context.Context, url string) Rows {
	resp, err := fetch.GetRetry(ctx, url, nil, nil)
	if err != nil {
		logging.Warningf(ctx, "no data for %s: %s", url, err.Error())
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logging.Warningf(ctx, "no data for %s: HTTP %d", url, resp.StatusCode)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Warningf(ctx, "no data for %s: %s", url, err.Error())
		return nil
	}
	rows, err := parseArchive(data)
	if err != nil {
		logging.Warningf(ctx, "no data for %s: %s", url, err.Error())
		return nil
	}
	return rows
}

// parseArchive unpacks a zip archive holding exactly one tab-delimited file
// and reads it into rows.
func parseArchive(data []byte) (Rows, error) {
	r := bytes.NewReader(data)
	z, err := zip.NewReader(r, r.Size())
	if err != nil {
		return nil, errors.Annotate(err, "failed to read zip archive")
	}
	if len(z.File) != 1 {
		return nil, errors.Reason("archive contains %d files (expected 1)", len(z.File))
	}
	rc, err := z.File[0].Open()
	if err != nil {
		return nil, errors.Annotate(err,
			"failed to open file in archive '%s'", z.File[0].Name)
	}
	defer rc.Close()

	cr := csv.NewReader(rc)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	var rows Rows
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Annotate(err, "failed to parse row %d", len(rows)+1)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// FetchAll retrieves every locator and returns one Rows per locator. A single
// locator is fetched synchronously in the calling goroutine; more than one
// fans out over a flat worker pool created for this call and torn down after
// it. Completion order is unordered, tasks share no mutable state, and a
// failed task degrades to empty Rows rather than cancelling the others.
func FetchAll(ctx context.Context, urls []string, workers int) []Rows {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(urls) <= 1 {
		var partials []Rows
		for _, u := range urls {
			partials = append(partials, Fetch(ctx, u))
		}
		return partials
	}
	f := func(u string) Rows { return Fetch(ctx, u) }
	pm := iterator.ParallelMap(ctx, workers, iterator.FromSlice(urls), f)
	defer pm.Close()

	return iterator.Reduce[Rows, []Rows](pm, []Rows{},
		func(r Rows, partials []Rows) []Rows {
			return append(partials, r)
		})
}
