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

// Package dates turns user-supplied date input into the ordered list of time
// buckets addressing the feed's 15-minute files. All validation happens here,
// before any locator is built or any network request is made.
package dates

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stockparfait/errors"
	"golang.org/x/exp/slices"
)

// MinDate is the earliest date served by the version 2 feed, inclusive.
var MinDate = NewDate(2015, 2, 18)

// BucketLayout is the time layout of a single 15-minute bucket string.
const BucketLayout = "20060102150405"

// InvalidDateError reports date input that is malformed, out of the feed's
// supported range, or an inverted range.
type InvalidDateError struct {
	msg string
}

func (e *InvalidDateError) Error() string { return e.msg }

func invalidDatef(format string, args ...interface{}) error {
	return &InvalidDateError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidDate checks whether err is an InvalidDateError.
func IsInvalidDate(err error) bool {
	var e *InvalidDateError
	return errors.As(err, &e)
}

// Validate parses and checks the raw date input: every element must parse,
// none may be in the future or before MinDate, and a 2-element input must be
// an ascending range. It returns the parsed dates in input order and performs
// no network activity.
func Validate(clock clockwork.Clock, input []string) ([]Date, error) {
	if len(input) == 0 {
		return nil, invalidDatef("no date given; enter at least one date")
	}
	now := clock.Now().UTC()
	parsed := make([]Date, len(input))
	for i, s := range input {
		d, err := NewDateFromString(s)
		if err != nil {
			return nil, invalidDatef(
				"date string '%s' does not parse to a date format; check input", s)
		}
		if d.ToTime().After(now) {
			return nil, invalidDatef(
				"date %s is greater than the current date; enter a relevant date", d)
		}
		if d.Before(MinDate) {
			return nil, invalidDatef(
				"the version 2 feed only supports %s to present; %s is too early",
				MinDate, d)
		}
		parsed[i] = d
	}
	if len(parsed) == 2 && !parsed[0].Before(parsed[1]) {
		return nil, invalidDatef(
			"start date %s is not before end date %s; check the entered range",
			parsed[0], parsed[1])
	}
	return parsed, nil
}

// Resolve expands validated input into the ordered, deduplicated day
// sequence. Exactly two dates are always a closed calendar range, one entry
// per day including both endpoints; three or more dates are discrete days,
// sorted ascending. This range-vs-list distinction is long-standing query
// semantics and must not change.
func Resolve(ds []Date) []Date {
	switch len(ds) {
	case 0:
		return nil
	case 1:
		return []Date{ds[0]}
	case 2:
		days := []Date{}
		for d := ds[0]; !d.After(ds[1]); d = d.Next() {
			days = append(days, d)
		}
		return days
	}
	days := make([]Date, len(ds))
	copy(days, ds)
	slices.SortFunc(days, func(a, b Date) bool { return a.Before(b) })
	return slices.Compact(days)
}

// Buckets maps each day to its 15-minute bucket strings. With coverage, a
// historical day yields all 96 boundaries from 00:00 to 23:45; the current
// day is truncated at the latest completed boundary. Without coverage, each
// day yields a single bucket: its final completed snapshot, which stands in
// for the whole day since the feed publishes no daily file.
func Buckets(clock clockwork.Clock, days []Date, coverage bool) []string {
	now := clock.Now().UTC()
	latest := now.Truncate(15 * time.Minute)
	today := NewDateFromTime(now)

	var buckets []string
	for _, day := range days {
		if !coverage {
			t := day.ToTime().Add(23*time.Hour + 45*time.Minute)
			if day == today && latest.Before(t) {
				t = latest
			}
			buckets = append(buckets, t.Format(BucketLayout))
			continue
		}
		end := day.ToTime().AddDate(0, 0, 1)
		for t := day.ToTime(); t.Before(end); t = t.Add(15 * time.Minute) {
			if day == today && t.After(latest) {
				break
			}
			buckets = append(buckets, t.Format(BucketLayout))
		}
	}
	return buckets
}
