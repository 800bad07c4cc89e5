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
	"io"

	"github.com/msamylea/gdeltPyR/table"
	"github.com/stockparfait/errors"
)

// Renderer writes a query result in one output format. The variant is
// selected once per query with NewRenderer.
type Renderer interface {
	Render(w io.Writer, r *Result) error
}

// NewRenderer selects the output format: "text" (also the empty string),
// "csv" or "json".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return textRenderer{}, nil
	case "csv":
		return csvRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	}
	return nil, errors.Reason(
		`unsupported output format "%s"; choose from "text", "csv" or "json"`,
		format)
}

type textRenderer struct{}

func (textRenderer) Render(w io.Writer, r *Result) error {
	if err := r.Data.WriteText(w, table.Params{MaxColWidth: 32}); err != nil {
		return errors.Annotate(err, "failed to write text output")
	}
	return nil
}

type csvRenderer struct{}

func (csvRenderer) Render(w io.Writer, r *Result) error {
	if err := r.Data.WriteCSV(w, table.Params{}); err != nil {
		return errors.Annotate(err, "failed to write CSV output")
	}
	return nil
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, r *Result) error {
	if err := r.Data.WriteJSON(w, table.Params{}); err != nil {
		return errors.Annotate(err, "failed to write JSON output")
	}
	return nil
}
