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
	"encoding/json"
	"io"

	"github.com/stockparfait/errors"
)

// CAMEOCodes maps CAMEO event codes to human-readable descriptions. It is
// loaded once at startup and passed by reference into enrichment; it is
// read-only thereafter.
type CAMEOCodes map[string]string

// BuiltinCAMEOCodes returns the 20 root verb codes. Sub-codes resolve to
// their root via Describe's prefix fallback; a full per-code mapping can be
// loaded with LoadCAMEOCodes instead.
func BuiltinCAMEOCodes() CAMEOCodes {
	return CAMEOCodes{
		"01": "Make public statement",
		"02": "Appeal",
		"03": "Express intent to cooperate",
		"04": "Consult",
		"05": "Engage in diplomatic cooperation",
		"06": "Engage in material cooperation",
		"07": "Provide aid",
		"08": "Yield",
		"09": "Investigate",
		"10": "Demand",
		"11": "Disapprove",
		"12": "Reject",
		"13": "Threaten",
		"14": "Protest",
		"15": "Exhibit force posture",
		"16": "Reduce relations",
		"17": "Coerce",
		"18": "Assault",
		"19": "Fight",
		"20": "Use unconventional mass violence",
	}
}

// Describe looks up the description of a CAMEO code, falling back to its
// 2-digit root code. Unknown codes yield an empty string.
func (c CAMEOCodes) Describe(code string) string {
	if d, ok := c[code]; ok {
		return d
	}
	if len(code) > 2 {
		if d, ok := c[code[:2]]; ok {
			return d
		}
	}
	return ""
}

type cameoRecord struct {
	Code        string `json:"cameoCode"`
	Description string `json:"CAMEOcodeDescription"`
}

// LoadCAMEOCodes reads a full CAMEO mapping from its JSON representation: an
// array of records with "cameoCode" and "CAMEOcodeDescription" fields.
func LoadCAMEOCodes(r io.Reader) (CAMEOCodes, error) {
	var records []cameoRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Annotate(err, "failed to parse CAMEO codes JSON")
	}
	if len(records) == 0 {
		return nil, errors.Reason("CAMEO codes JSON contains no records")
	}
	codes := make(CAMEOCodes, len(records))
	for _, rec := range records {
		if rec.Code == "" {
			continue
		}
		codes[rec.Code] = rec.Description
	}
	return codes, nil
}
