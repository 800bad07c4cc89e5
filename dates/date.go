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

package dates

import (
	"fmt"
	"time"

	"github.com/stockparfait/errors"
)

// genericLayouts are the date layouts accepted for user input, tried in
// order. Year-only and year-month forms are handled separately, since "2015"
// must not be read as a day-of-month layout.
var genericLayouts = []string{
	"20060102",
	"2006-01-02",
	"2006/01/02",
	"2006 01 02",
	"2006 Jan 2",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2 2006",
	"January 2, 2006",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Date records a calendar date as year, month and day. The struct fits into
// 4 bytes, and its zero value is recognizably "no date".
type Date struct {
	YearVal  uint16
	MonthVal uint8
	DayVal   uint8
}

// NewDate is the constructor for Date.
func NewDate(year uint16, month, day uint8) Date {
	return Date{year, month, day}
}

// NewDateFromTime creates a Date instance from a time.Time value in UTC.
func NewDateFromTime(t time.Time) Date {
	return Date{
		YearVal:  uint16(t.Year()),
		MonthVal: uint8(t.Month()),
		DayVal:   uint8(t.Day()),
	}
}

// NewDateFromString parses a user-supplied date string. A 4-digit string is
// read as a year, a 6-digit string as year-month, and anything else is tried
// against the generic layouts.
func NewDateFromString(s string) (Date, error) {
	if allDigits(s) {
		switch len(s) {
		case 4:
			t, err := time.Parse("2006", s)
			if err != nil {
				return Date{}, errors.Annotate(err, "failed to parse year: '%s'", s)
			}
			return NewDateFromTime(t), nil
		case 6:
			t, err := time.Parse("200601", s)
			if err != nil {
				return Date{}, errors.Annotate(err, "failed to parse year-month: '%s'", s)
			}
			return NewDateFromTime(t), nil
		}
	}
	var err error
	for _, layout := range genericLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return NewDateFromTime(t), nil
		}
	}
	return Date{}, errors.Annotate(err, "failed to parse a Date string: '%s'", s)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (d Date) Year() uint16 { return d.YearVal }
func (d Date) Month() uint8 { return d.MonthVal }
func (d Date) Day() uint8   { return d.DayVal }

// String representation of the value.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// ToTime converts Date to midnight UTC of that day.
func (d Date) ToTime() time.Time {
	return time.Date(int(d.Year()), time.Month(d.Month()), int(d.Day()),
		0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return NewDateFromTime(d.ToTime().AddDate(0, 0, 1))
}

// Before compares two Date objects for strict inequality, self < d2.
func (d Date) Before(d2 Date) bool {
	if d.Year() != d2.Year() {
		return d.Year() < d2.Year()
	}
	if d.Month() != d2.Month() {
		return d.Month() < d2.Month()
	}
	return d.Day() < d2.Day()
}

// After compares two Date objects for strict inequality, self > d2.
func (d Date) After(d2 Date) bool {
	return d2.Before(d)
}

// IsZero checks whether the date has a zero value.
func (d Date) IsZero() bool {
	return d.Year() == 0 && d.Month() == 0 && d.Day() == 0
}
