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

// Package feed builds resource locators for the public GDELT v2 file feed,
// downloads them concurrently, and merges the parsed contents into a single
// table.
package feed

import (
	"fmt"
	"time"

	"github.com/stockparfait/errors"
)

// BaseURL of the version 2 file feed. It may be overwritten in tests before
// building locators.
var BaseURL = "http://data.gdeltproject.org/gdeltv2/"

// Table selects one of the feed's datasets.
type Table string

// Recognized tables.
const (
	Events   = Table("events")
	Mentions = Table("mentions")
	GKG      = Table("gkg")
)

// InvalidTableError reports an unrecognized table selector.
type InvalidTableError struct {
	name string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf(
		`"%s" is not a valid table name; choose from "events", "mentions" or "gkg"`,
		e.name)
}

// IsInvalidTable checks whether err is an InvalidTableError.
func IsInvalidTable(err error) bool {
	var e *InvalidTableError
	return errors.As(err, &e)
}

// ParseTable maps a user-supplied table name to a Table. The empty string and
// the legacy aliases "vgkg" and "iatv" map to the events table.
func ParseTable(name string) (Table, error) {
	switch name {
	case "", "events", "vgkg", "iatv":
		return Events, nil
	case "mentions":
		return Mentions, nil
	case "gkg":
		return GKG, nil
	}
	return "", &InvalidTableError{name: name}
}

// cutover is the start of the per-table file naming scheme. Files dated
// before it were published under a single table-agnostic suffix.
var cutover = time.Date(2013, 4, 1, 0, 0, 0, 0, time.UTC)

func suffix(table Table, translation bool) (string, error) {
	switch table {
	case Events:
		if translation {
			return ".translation.export.CSV.zip", nil
		}
		return ".export.CSV.zip", nil
	case Mentions:
		if translation {
			return ".translation.mentions.CSV.zip", nil
		}
		return ".mentions.CSV.zip", nil
	case GKG:
		if translation {
			return ".translation.gkg.csv.zip", nil
		}
		return ".gkg.csv.zip", nil
	}
	return "", &InvalidTableError{name: string(table)}
}

// URL builds the locator for a single bucket string. The suffix cutover is
// evaluated per bucket: a locator list spanning the cutover date legitimately
// mixes both suffix styles.
func URL(bucket string, table Table, translation bool) (string, error) {
	caboose, err := suffix(table, translation)
	if err != nil {
		return "", err
	}
	t, err := time.Parse("20060102150405", bucket)
	if err != nil {
		return "", errors.Annotate(err, "malformed bucket string '%s'", bucket)
	}
	if t.Before(cutover) {
		return BaseURL + bucket + ".zip", nil
	}
	return BaseURL + bucket + caboose, nil
}

// URLs builds one locator per bucket, preserving order.
func URLs(buckets []string, table Table, translation bool) ([]string, error) {
	urls := make([]string, len(buckets))
	for i, b := range buckets {
		u, err := URL(b, table, translation)
		if err != nil {
			return nil, err
		}
		urls[i] = u
	}
	return urls, nil
}
