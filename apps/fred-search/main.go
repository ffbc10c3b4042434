// Copyright 2023 Full FRED Authors

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
	"io"
	"os"
	"strings"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/Masrik-Dahir/full-fred/fred"
	"github.com/Masrik-Dahir/full-fred/table"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

type Flags struct {
	Key      string // default: $FRED_API_KEY
	Limit    int
	CSV      bool // dump CSV format; default: text.
	LogLevel logging.Level
	Text     string // the search words, from the positional arguments
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fred-search", flag.ExitOnError)
	fs.StringVar(&flags.Key, "key", os.Getenv("FRED_API_KEY"),
		"FRED API key; default: $FRED_API_KEY")
	fs.IntVar(&flags.Limit, "limit", 20, "maximum number of results")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.Key == "" {
		return nil, errors.Reason("missing -key argument or FRED_API_KEY in env")
	}
	flags.Text = strings.Join(fs.Args(), " ")
	if flags.Text == "" {
		return nil, errors.Reason("missing the search words")
	}
	return &flags, err
}

func search(ctx context.Context, flags *Flags, w io.Writer) error {
	ctx = fred.UseClient(ctx, flags.Key)
	q := fred.NewQuery().Limit(flags.Limit).OrderBy("popularity").
		SortOrder(fred.SortDesc)
	page, err := fred.FetchSeriesSearch(ctx, flags.Text, q)
	if err != nil {
		return errors.Annotate(err, "search failed for '%s'", flags.Text)
	}
	logging.Infof(ctx, "found %d series, showing %d",
		page.Count, len(page.Series))

	tbl := table.NewTable(db.SeriesRowHeader()...)
	for _, s := range page.Series {
		tbl.AddRow(s.SeriesRow().Row(s.ID))
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w, table.Params{}); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, table.Params{MaxColWidth: 40}); err != nil {
		return errors.Annotate(err, "failed to print text")
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

	if err := search(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
