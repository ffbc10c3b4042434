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

// Package db implements a local disk cache for downloaded FRED series. The
// series metadata table and per-series observations are stored as gob files,
// plus a human-readable metadata.json summarizing the cache contents.
package db

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stockparfait/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func writeGob(fileName string, v interface{}) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Annotate(err, "failed to open file for writing: '%s'", fileName)
	}
	defer f.Close()
	enc := gob.NewEncoder(f)
	if err = enc.Encode(v); err != nil {
		return errors.Annotate(err, "failed to write to '%s'", fileName)
	}
	return nil
}

func readGob(fileName string, v interface{}) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Annotate(err, "failed to open file for reading: '%s'", fileName)
	}
	defer f.Close()
	dec := gob.NewDecoder(f)
	if err = dec.Decode(v); err != nil {
		return errors.Annotate(err, "failed to read from '%s'", fileName)
	}
	return nil
}

// Database accesses the cache in the given directory. Loaded tables are
// memoized in memory. It is not safe for concurrent use.
type Database struct {
	cachePath    string
	series       map[string]SeriesRow
	observations map[string][]ObservationRow
}

// NewDatabase creates a Database accessor for the given directory. The
// directory itself is created lazily by the first write.
func NewDatabase(cachePath string) *Database {
	return &Database{
		cachePath:    cachePath,
		observations: make(map[string][]ObservationRow),
	}
}

func (d *Database) seriesPath() string {
	return filepath.Join(d.cachePath, "series.gob")
}

func (d *Database) observationsDir() string {
	return filepath.Join(d.cachePath, "observations")
}

func (d *Database) observationsPath(id string) string {
	return filepath.Join(d.observationsDir(), id+".gob")
}

func (d *Database) metadataPath() string {
	return filepath.Join(d.cachePath, "metadata.json")
}

// WriteSeries saves the series metadata table, overwriting the existing one.
func (d *Database) WriteSeries(series map[string]SeriesRow) error {
	if err := os.MkdirAll(d.cachePath, os.ModeDir|0755); err != nil {
		return errors.Annotate(err, "failed to create cache dir '%s'", d.cachePath)
	}
	if err := writeGob(d.seriesPath(), series); err != nil {
		return errors.Annotate(err, "failed to write series table")
	}
	d.series = series
	return nil
}

// WriteObservations saves the observations of a single series, overwriting
// the existing ones.
func (d *Database) WriteObservations(id string, rows []ObservationRow) error {
	if err := os.MkdirAll(d.observationsDir(), os.ModeDir|0755); err != nil {
		return errors.Annotate(err, "failed to create observations dir '%s'",
			d.observationsDir())
	}
	if err := writeGob(d.observationsPath(id), rows); err != nil {
		return errors.Annotate(err, "failed to write observations for %s", id)
	}
	d.observations[id] = rows
	return nil
}

// WriteMetadata computes the cache summary from the data written or read
// through this Database instance and saves it as metadata.json. Call it after
// all the series and observations are written.
func (d *Database) WriteMetadata() error {
	var m Metadata
	m.NumSeries = len(d.series)
	for _, rows := range d.observations {
		m.NumObservations += len(rows)
		for _, r := range rows {
			if m.Start.IsZero() || r.Date.Before(m.Start) {
				m.Start = r.Date
			}
			if m.End.IsZero() || r.Date.After(m.End) {
				m.End = r.Date
			}
		}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Annotate(err, "failed to marshal metadata")
	}
	if err := os.WriteFile(d.metadataPath(), data, 0644); err != nil {
		return errors.Annotate(err, "failed to write '%s'", d.metadataPath())
	}
	return nil
}

// Metadata reads and returns the cache summary.
func (d *Database) Metadata() (Metadata, error) {
	var m Metadata
	data, err := os.ReadFile(d.metadataPath())
	if err != nil {
		return m, errors.Annotate(err, "failed to read '%s'", d.metadataPath())
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, errors.Annotate(err, "failed to parse '%s'", d.metadataPath())
	}
	return m, nil
}

func (d *Database) loadSeries() error {
	if d.series != nil {
		return nil
	}
	series := make(map[string]SeriesRow)
	if err := readGob(d.seriesPath(), &series); err != nil {
		return errors.Annotate(err, "failed to read series table")
	}
	d.series = series
	return nil
}

// SeriesIDs lists the IDs of all the cached series, sorted alphabetically.
func (d *Database) SeriesIDs() ([]string, error) {
	if err := d.loadSeries(); err != nil {
		return nil, errors.Annotate(err, "failed to load series table")
	}
	ids := maps.Keys(d.series)
	slices.Sort(ids)
	return ids, nil
}

// Series returns the cached metadata row of a single series.
func (d *Database) Series(id string) (SeriesRow, error) {
	if err := d.loadSeries(); err != nil {
		return SeriesRow{}, errors.Annotate(err, "failed to load series table")
	}
	r, ok := d.series[id]
	if !ok {
		return SeriesRow{}, errors.Reason("no such series in cache: %s", id)
	}
	return r, nil
}

// Observations returns the cached observations of a series within the
// inclusive date range. A zero date means an unbounded end of the range.
func (d *Database) Observations(id string, start, end Date) ([]ObservationRow, error) {
	rows, ok := d.observations[id]
	if !ok {
		rows = []ObservationRow{}
		if err := readGob(d.observationsPath(id), &rows); err != nil {
			return nil, errors.Annotate(err, "failed to read observations for %s", id)
		}
		d.observations[id] = rows
	}
	if start.IsZero() && end.IsZero() {
		return rows, nil
	}
	res := []ObservationRow{}
	for _, r := range rows {
		if r.Date.InRange(start, end) {
			res = append(res, r)
		}
	}
	return res, nil
}
