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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/Masrik-Dahir/full-fred/table"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Flags struct {
	DBDir    string // default: ~/.fullfred
	LogLevel logging.Level
	// Exactly one of series, observations or summary must be present.
	Series       bool   // print all series rows
	Observations string // series ID to print observations for
	Summary      string // series ID to print summary statistics for
	CSV          bool   // dump CSV format; default: text.
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fred-list", flag.ExitOnError)
	fs.StringVar(&flags.DBDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".fullfred"),
		"path to the cache directory")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.BoolVar(&flags.Series, "series", false, "print all series rows")
	fs.StringVar(&flags.Observations, "observations", "",
		"series ID to print observations for")
	fs.StringVar(&flags.Summary, "summary", "",
		"series ID to print summary statistics for")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	kinds := 0
	if flags.Series {
		kinds++
	}
	if flags.Observations != "" {
		kinds++
	}
	if flags.Summary != "" {
		kinds++
	}
	if kinds != 1 {
		return nil, errors.Reason(
			"expected exactly one of -series, -observations or -summary")
	}
	return &flags, err
}

func seriesTable(database *db.Database) (*table.Table, error) {
	ids, err := database.SeriesIDs()
	if err != nil {
		return nil, errors.Annotate(err, "failed to list series")
	}
	var rows []table.Row
	for _, id := range ids {
		sr, err := database.Series(id)
		if err != nil {
			return nil, errors.Annotate(err, "failed to read series row for %s", id)
		}
		rows = append(rows, sr.Row(id))
	}
	tbl := table.NewTable(db.SeriesRowHeader()...)
	tbl.AddRow(rows...)
	return tbl, nil
}

func observationsTable(database *db.Database, id string) (*table.Table, error) {
	obs, err := database.Observations(id, db.Date{}, db.Date{})
	if err != nil {
		return nil, errors.Annotate(err, "failed to read observations for %s", id)
	}
	rows := make([]table.Row, len(obs))
	for i, o := range obs {
		rows[i] = o.Row()
	}
	tbl := table.NewTable(db.ObservationRowHeader()...)
	tbl.AddRow(rows...)
	return tbl, nil
}

// summaryRow is a single row of the summary table.
type summaryRow []string

func (r summaryRow) CSV() []string { return r }

func summaryTable(database *db.Database, id string) (*table.Table, error) {
	obs, err := database.Observations(id, db.Date{}, db.Date{})
	if err != nil {
		return nil, errors.Annotate(err, "failed to read observations for %s", id)
	}
	var values []float64
	missing := 0
	for _, o := range obs {
		if o.Missing {
			missing++
			continue
		}
		values = append(values, o.Value)
	}
	if len(values) == 0 {
		return nil, errors.Reason("series %s has no values to summarize", id)
	}
	ff := func(v float64) string { return fmt.Sprintf("%.6g", v) }
	tbl := table.NewTable(
		"Series", "Samples", "Missing", "Mean", "StdDev", "Min", "Max")
	tbl.AddRow(summaryRow{
		id,
		fmt.Sprintf("%d", len(values)),
		fmt.Sprintf("%d", missing),
		ff(stat.Mean(values, nil)),
		ff(stat.StdDev(values, nil)),
		ff(floats.Min(values)),
		ff(floats.Max(values)),
	})
	return tbl, nil
}

func printData(ctx context.Context, flags *Flags, w io.Writer) error {
	var tbl *table.Table
	var err error
	database := db.NewDatabase(flags.DBDir)
	if flags.Series {
		if tbl, err = seriesTable(database); err != nil {
			return errors.Annotate(err, "failed to read the series table")
		}
	}
	if flags.Observations != "" {
		if tbl, err = observationsTable(database, flags.Observations); err != nil {
			return errors.Annotate(err, "failed to read observations for %s",
				flags.Observations)
		}
	}
	if flags.Summary != "" {
		if tbl, err = summaryTable(database, flags.Summary); err != nil {
			return errors.Annotate(err, "failed to summarize %s", flags.Summary)
		}
	}
	if tbl == nil {
		return errors.Reason("no data")
	}
	if flags.CSV {
		if err := tbl.WriteCSV(w, table.Params{}); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, table.Params{}); err != nil {
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

	if err := printData(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
