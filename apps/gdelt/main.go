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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/msamylea/gdeltPyR/feed"
	"github.com/msamylea/gdeltPyR/schema"
	"github.com/msamylea/gdeltPyR/search"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	Date        string // comma-separated date(s); required unless -schema
	Table       string
	Coverage    bool
	Translation bool
	Output      string // text, csv or json
	Summary     bool   // print numeric column statistics after the table
	NormCols    bool
	Schema      bool   // print the declared columns and exit
	Config      string // optional TOML config file
	LogLevel    logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("gdelt", flag.ExitOnError)
	fs.StringVar(&flags.Date, "date", "",
		"comma-separated date(s): one date, a start,end range, or 3+ discrete days")
	fs.StringVar(&flags.Table, "table", "events", "table: events, mentions or gkg")
	fs.BoolVar(&flags.Coverage, "coverage", false,
		"pull every 15-minute interval per day, not one daily snapshot")
	fs.BoolVar(&flags.Translation, "translation", false,
		"pull the translated set instead of the English set")
	fs.StringVar(&flags.Output, "output", "text", "output format: text, csv or json")
	fs.BoolVar(&flags.Summary, "summary", false,
		"print statistics of the numeric columns after the table")
	fs.BoolVar(&flags.NormCols, "normcols", false,
		"normalize column names for SQL or shapefile compatibility")
	fs.BoolVar(&flags.Schema, "schema", false,
		"print the declared column schema for -table and exit")
	fs.StringVar(&flags.Config, "config", "", "TOML config file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.Date == "" && !flags.Schema {
		return nil, errors.Reason("missing required -date argument")
	}
	return &flags, nil
}

// Config is the optional TOML configuration file.
type Config struct {
	BaseURL    string            `toml:"base_url"`
	Proxies    map[string]string `toml:"proxies"` // protocol -> proxy address
	Workers    int               `toml:"workers"`
	CAMEOCodes string            `toml:"cameo_codes"` // path to a full CAMEO JSON mapping
}

func parseConfig(path string) (*Config, error) {
	var c Config
	if path == "" {
		return &c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", path)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", path)
	}
	return &c, nil
}

func loadCodes(config *Config) (schema.CAMEOCodes, error) {
	if config.CAMEOCodes == "" {
		return schema.BuiltinCAMEOCodes(), nil
	}
	f, err := os.Open(config.CAMEOCodes)
	if err != nil {
		return nil, errors.Annotate(err,
			"failed to open CAMEO codes file %s", config.CAMEOCodes)
	}
	defer f.Close()
	codes, err := schema.LoadCAMEOCodes(f)
	if err != nil {
		return nil, errors.Annotate(err,
			"failed to load CAMEO codes from %s", config.CAMEOCodes)
	}
	return codes, nil
}

func splitDates(s string) []string {
	var out []string
	for _, d := range strings.Split(s, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func printSchema(w io.Writer, name string) error {
	tbl, err := feed.ParseTable(name)
	if err != nil {
		return err
	}
	for i, col := range schema.Columns(tbl) {
		if _, err := fmt.Fprintf(w, "%2d  %s\n", i, col); err != nil {
			return errors.Annotate(err, "failed to print schema")
		}
	}
	return nil
}

func run(ctx context.Context, flags *Flags, w io.Writer) error {
	if flags.Schema {
		return printSchema(w, flags.Table)
	}
	config, err := parseConfig(flags.Config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	if config.BaseURL != "" {
		feed.BaseURL = config.BaseURL
	}
	ctx, err = feed.UseProxies(ctx, config.Proxies)
	if err != nil {
		return err
	}
	codes, err := loadCodes(config)
	if err != nil {
		return err
	}

	s := search.New(clockwork.NewRealClock(), codes, config.Workers)
	result, err := s.Search(ctx, search.Query{
		Dates:       splitDates(flags.Date),
		Table:       flags.Table,
		Coverage:    flags.Coverage,
		Translation: flags.Translation,
		NormCols:    flags.NormCols,
	})
	if err != nil {
		return errors.Annotate(err, "query failed")
	}
	renderer, err := search.NewRenderer(flags.Output)
	if err != nil {
		return err
	}
	if err := renderer.Render(w, result); err != nil {
		return errors.Annotate(err, "failed to render result")
	}
	if flags.Summary {
		for _, col := range search.SummaryColumns(result.Table) {
			sm, err := search.Summarize(result, col)
			if err != nil {
				logging.Warningf(ctx, "skipping summary: %s", err.Error())
				continue
			}
			fmt.Fprintf(w, "%s: n=%d mean=%.4f std=%.4f min=%.4f max=%.4f\n",
				sm.Column, sm.Count, sm.Mean, sm.StdDev, sm.Min, sm.Max)
		}
	}
	return nil
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := run(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
