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
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	// 22 Oct 2016, 08:28 UTC; the latest completed boundary is 08:15.
	clock := clockwork.NewFakeClockAt(
		time.Date(2016, 10, 22, 8, 28, 0, 0, time.UTC))

	Convey("Validate accepts good input", t, func() {
		Convey("a single date", func() {
			ds, err := Validate(clock, []string{"2016-10-19"})
			So(err, ShouldBeNil)
			So(ds, ShouldResemble, []Date{NewDate(2016, 10, 19)})
		})

		Convey("the minimum supported date itself", func() {
			ds, err := Validate(clock, []string{"2015-02-18"})
			So(err, ShouldBeNil)
			So(ds, ShouldResemble, []Date{MinDate})
		})

		Convey("today", func() {
			_, err := Validate(clock, []string{"2016-10-22"})
			So(err, ShouldBeNil)
		})

		Convey("an ascending pair", func() {
			ds, err := Validate(clock, []string{"2016-01-01", "2016-01-03"})
			So(err, ShouldBeNil)
			So(len(ds), ShouldEqual, 2)
		})

		Convey("mixed input forms in a list", func() {
			ds, err := Validate(clock, []string{"2016", "201602", "Oct 19 2016"})
			So(err, ShouldBeNil)
			So(ds, ShouldResemble, []Date{
				NewDate(2016, 1, 1), NewDate(2016, 2, 1), NewDate(2016, 10, 19),
			})
		})
	})

	Convey("Validate rejects bad input", t, func() {
		Convey("no dates", func() {
			_, err := Validate(clock, nil)
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("unparseable date", func() {
			_, err := Validate(clock, []string{"2016-10-19", "snorkle"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("future date", func() {
			_, err := Validate(clock, []string{"2017-01-01"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("future date in a list", func() {
			_, err := Validate(clock, []string{"2016-10-19", "2017-01-01"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("date before the feed minimum", func() {
			_, err := Validate(clock, []string{"2015-02-01"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("inverted range", func() {
			_, err := Validate(clock, []string{"2016-03-01", "2016-02-01"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})

		Convey("equal range endpoints", func() {
			_, err := Validate(clock, []string{"2016-02-01", "2016-02-01"})
			So(IsInvalidDate(err), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	Convey("Resolve expands input into day buckets", t, func() {
		Convey("a single day stays single", func() {
			So(Resolve([]Date{NewDate(2016, 10, 19)}),
				ShouldResemble, []Date{NewDate(2016, 10, 19)})
		})

		Convey("two dates are a closed range, one entry per day", func() {
			days := Resolve([]Date{NewDate(2016, 1, 1), NewDate(2016, 1, 3)})
			So(days, ShouldResemble, []Date{
				NewDate(2016, 1, 1), NewDate(2016, 1, 2), NewDate(2016, 1, 3),
			})
		})

		Convey("a range spans month boundaries", func() {
			days := Resolve([]Date{NewDate(2016, 1, 30), NewDate(2016, 2, 2)})
			So(len(days), ShouldEqual, 4)
			So(days[0], ShouldResemble, NewDate(2016, 1, 30))
			So(days[3], ShouldResemble, NewDate(2016, 2, 2))
		})

		Convey("three or more dates are discrete days, sorted and deduplicated", func() {
			days := Resolve([]Date{
				NewDate(2016, 5, 1), NewDate(2016, 3, 1),
				NewDate(2016, 4, 1), NewDate(2016, 3, 1),
			})
			So(days, ShouldResemble, []Date{
				NewDate(2016, 3, 1), NewDate(2016, 4, 1), NewDate(2016, 5, 1),
			})
		})
	})
}

func TestBuckets(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(
		time.Date(2016, 10, 22, 8, 28, 0, 0, time.UTC))

	Convey("Buckets without coverage", t, func() {
		Convey("a historical day yields its final snapshot", func() {
			buckets := Buckets(clock, []Date{NewDate(2016, 10, 19)}, false)
			So(buckets, ShouldResemble, []string{"20161019234500"})
		})

		Convey("today yields the latest completed boundary", func() {
			buckets := Buckets(clock, []Date{NewDate(2016, 10, 22)}, false)
			So(buckets, ShouldResemble, []string{"20161022081500"})
		})

		Convey("multiple days keep order", func() {
			buckets := Buckets(clock, []Date{
				NewDate(2016, 10, 19), NewDate(2016, 10, 20),
			}, false)
			So(buckets, ShouldResemble,
				[]string{"20161019234500", "20161020234500"})
		})
	})

	Convey("Buckets with coverage", t, func() {
		Convey("a historical day yields all 96 boundaries", func() {
			buckets := Buckets(clock, []Date{NewDate(2016, 10, 19)}, true)
			So(len(buckets), ShouldEqual, 96)
			So(buckets[0], ShouldEqual, "20161019000000")
			So(buckets[1], ShouldEqual, "20161019001500")
			So(buckets[95], ShouldEqual, "20161019234500")
		})

		Convey("today is truncated at the latest completed boundary", func() {
			buckets := Buckets(clock, []Date{NewDate(2016, 10, 22)}, true)
			// 00:00 through 08:15 inclusive.
			So(len(buckets), ShouldEqual, 34)
			So(buckets[len(buckets)-1], ShouldEqual, "20161022081500")
			for _, b := range buckets {
				So(b <= "20161022081500", ShouldBeTrue)
			}
		})
	})

	Convey("Resolution is idempotent under a fixed clock", t, func() {
		days := Resolve([]Date{NewDate(2016, 10, 20), NewDate(2016, 10, 22)})
		first := Buckets(clock, days, true)
		second := Buckets(clock, Resolve([]Date{
			NewDate(2016, 10, 20), NewDate(2016, 10, 22)}), true)
		So(second, ShouldResemble, first)
	})
}
