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

package schema

import (
	"strings"
	"testing"

	"github.com/msamylea/gdeltPyR/feed"

	. "github.com/smartystreets/goconvey/convey"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	Convey("Columns declares the known schemas", t, func() {
		Convey("events", func() {
			cols := Columns(feed.Events)
			So(len(cols), ShouldEqual, 61)
			So(cols[0], ShouldEqual, "GLOBALEVENTID")
			So(cols[26], ShouldEqual, "EventCode")
			So(cols[60], ShouldEqual, "SOURCEURL")
		})

		Convey("mentions", func() {
			cols := Columns(feed.Mentions)
			So(len(cols), ShouldEqual, 16)
			So(cols[13], ShouldEqual, "MentionDocTone")
		})

		Convey("gkg", func() {
			cols := Columns(feed.GKG)
			So(len(cols), ShouldEqual, 27)
			So(cols[0], ShouldEqual, "GKGRECORDID")
		})

		Convey("unknown table", func() {
			So(Columns(feed.Table("knack")), ShouldBeNil)
		})

		Convey("returned slice is a copy", func() {
			cols := Columns(feed.Events)
			cols[0] = "clobbered"
			So(Columns(feed.Events)[0], ShouldEqual, "GLOBALEVENTID")
		})
	})
}

func TestCAMEOCodes(t *testing.T) {
	t.Parallel()

	Convey("Describe resolves codes", t, func() {
		codes := BuiltinCAMEOCodes()

		Convey("exact root code", func() {
			So(codes.Describe("14"), ShouldEqual, "Protest")
		})

		Convey("sub-code falls back to its root", func() {
			So(codes.Describe("1411"), ShouldEqual, "Protest")
			So(codes.Describe("0211"), ShouldEqual, "Appeal")
		})

		Convey("unknown code yields an empty string", func() {
			So(codes.Describe("99"), ShouldEqual, "")
			So(codes.Describe(""), ShouldEqual, "")
		})

		Convey("a loaded exact entry wins over the prefix fallback", func() {
			codes["1411"] = "Demonstrate for leadership change"
			So(codes.Describe("1411"), ShouldEqual,
				"Demonstrate for leadership change")
		})
	})

	Convey("LoadCAMEOCodes parses the JSON mapping", t, func() {
		Convey("well-formed records", func() {
			r := strings.NewReader(`[
				{"cameoCode": "01", "CAMEOcodeDescription": "MAKE PUBLIC STATEMENT", "GoldsteinScale": 0.0},
				{"cameoCode": "010", "CAMEOcodeDescription": "Make statement, not specified below"}
			]`)
			codes, err := LoadCAMEOCodes(r)
			So(err, ShouldBeNil)
			So(len(codes), ShouldEqual, 2)
			So(codes.Describe("010"), ShouldEqual,
				"Make statement, not specified below")
		})

		Convey("malformed JSON fails", func() {
			_, err := LoadCAMEOCodes(strings.NewReader("not json"))
			So(err, ShouldNotBeNil)
		})

		Convey("no records fails", func() {
			_, err := LoadCAMEOCodes(strings.NewReader("[]"))
			So(err, ShouldNotBeNil)
		})
	})
}
