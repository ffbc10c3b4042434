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
	"os"
	"path/filepath"
	"runtime"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/Masrik-Dahir/full-fred/fred"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/iterator"
	"github.com/stockparfait/logging"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	DBDir    string // default: ~/.fullfred
	LogLevel logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("fred-download", flag.ExitOnError)
	fs.StringVar(&flags.DBDir, "cache",
		filepath.Join(os.Getenv("HOME"), ".fullfred"),
		"path to the cache directory")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	err := fs.Parse(args)
	return &flags, err
}

type Config struct {
	Key              string   `toml:"key"`    // user key for the FRED API
	Series           []string `toml:"series"` // which series to download
	ObservationStart string   `toml:"observation_start"`
	ObservationEnd   string   `toml:"observation_end"`
	RealtimeStart    string   `toml:"realtime_start"`
	RealtimeEnd      string   `toml:"realtime_end"`
}

func parseConfig(dbdir string) (*Config, error) {
	filePath := filepath.Join(dbdir, "config.toml")
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sample := `key = "YourSecretFREDKey"
series = ["GNPCA", "UNRATE"]
`
			err = errors.Annotate(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, sample)
			return nil, err
		} else {
			return nil, errors.Annotate(err,
				"cannot check config file for existence: '%s'", filePath)
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	if c.Key == "" {
		return nil, errors.Reason("missing 'key' in config file %s", filePath)
	}
	if len(c.Series) == 0 {
		return nil, errors.Reason("no 'series' to download in config file %s", filePath)
	}
	return &c, nil
}

func parseDate(s, name string) (db.Date, error) {
	if s == "" {
		return db.Date{}, nil
	}
	d, err := db.NewDateFromString(s)
	if err != nil {
		return db.Date{}, errors.Annotate(err, "failed to parse '%s' in config", name)
	}
	return d, nil
}

// observationsQuery assembles the query from the optional config windows.
func observationsQuery(c *Config) (*fred.Query, error) {
	obsStart, err := parseDate(c.ObservationStart, "observation_start")
	if err != nil {
		return nil, err
	}
	obsEnd, err := parseDate(c.ObservationEnd, "observation_end")
	if err != nil {
		return nil, err
	}
	rtStart, err := parseDate(c.RealtimeStart, "realtime_start")
	if err != nil {
		return nil, err
	}
	rtEnd, err := parseDate(c.RealtimeEnd, "realtime_end")
	if err != nil {
		return nil, err
	}
	q := fred.NewQuery().
		ObservationPeriod(obsStart, obsEnd).
		Realtime(rtStart, rtEnd).
		SortOrder(fred.SortAsc)
	return q, nil
}

// seriesData is the download result of a single series.
type seriesData struct {
	id  string
	row db.SeriesRow
	obs []db.ObservationRow
	err error
}

func fetchSeries(ctx context.Context, id string, q *fred.Query) seriesData {
	res := seriesData{id: id}
	page, err := fred.FetchSeries(ctx, id, nil)
	if err != nil {
		res.err = errors.Annotate(err, "failed to fetch metadata of %s", id)
		return res
	}
	if len(page.Series) == 0 {
		res.err = errors.Reason("no such series: %s", id)
		return res
	}
	res.row = page.Series[0].SeriesRow()

	it := fred.Observations(ctx, id, q)
	for {
		obs, ok, err := it.Next()
		if err != nil {
			res.err = errors.Annotate(err, "failed to fetch observations of %s", id)
			return res
		}
		if !ok {
			break
		}
		row, err := obs.ObservationRow()
		if err != nil {
			res.err = errors.Annotate(err, "bad observation of %s", id)
			return res
		}
		res.obs = append(res.obs, row)
	}
	return res
}

func download(ctx context.Context, flags *Flags) error {
	config, err := parseConfig(flags.DBDir)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	q, err := observationsQuery(config)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	ctx = fred.UseClient(ctx, config.Key)

	f := func(id string) seriesData { return fetchSeries(ctx, id, q) }
	pm := iterator.ParallelMap(ctx, 2*runtime.NumCPU(),
		iterator.FromSlice(config.Series), f)
	defer pm.Close()

	results := iterator.Reduce[seriesData, []seriesData](pm, []seriesData{},
		func(r seriesData, rs []seriesData) []seriesData {
			return append(rs, r)
		})

	database := db.NewDatabase(flags.DBDir)
	series := make(map[string]db.SeriesRow)
	numObs := 0
	for _, r := range results {
		if r.err != nil {
			return errors.Annotate(r.err, "failed to download %s", r.id)
		}
		series[r.id] = r.row
		if err := database.WriteObservations(r.id, r.obs); err != nil {
			return errors.Annotate(err, "failed to save observations of %s", r.id)
		}
		numObs += len(r.obs)
	}
	if err := database.WriteSeries(series); err != nil {
		return errors.Annotate(err, "failed to save the series table")
	}
	if err := database.WriteMetadata(); err != nil {
		return errors.Annotate(err, "failed to save metadata")
	}
	logging.Infof(ctx, "downloaded %d series with %d observations to %s",
		len(series), numObs, flags.DBDir)
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

	if err := download(ctx, flags); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
