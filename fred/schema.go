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

package fred

import (
	"strconv"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/stockparfait/errors"
)

// Paging is the header common to the paged list responses: the effective
// realtime window, the ordering, and the count/offset/limit of the results.
type Paging struct {
	RealtimeStart db.Date `json:"realtime_start"`
	RealtimeEnd   db.Date `json:"realtime_end"`
	OrderBy       string  `json:"order_by"`
	SortOrder     string  `json:"sort_order"`
	Count         int     `json:"count"`
	Offset        int     `json:"offset"`
	Limit         int     `json:"limit"`
}

// Category of economic data series. Categories form a tree rooted at ID 0.
type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID int    `json:"parent_id"`
}

// CategoriesPage is the response of the category endpoints. It has no paging
// header.
type CategoriesPage struct {
	Categories []Category `json:"categories"`
}

// Source is a provider of economic data series, such as the Bank of Japan or
// the Chicago Board Options Exchange.
type Source struct {
	ID            int     `json:"id"`
	RealtimeStart db.Date `json:"realtime_start"`
	RealtimeEnd   db.Date `json:"realtime_end"`
	Name          string  `json:"name"`
	Link          string  `json:"link"`
	Notes         string  `json:"notes"`
}

// SourcesPage is the response of the source endpoints.
type SourcesPage struct {
	Paging
	Sources []Source `json:"sources"`
}

// Release of economic data from a source.
type Release struct {
	ID            int     `json:"id"`
	RealtimeStart db.Date `json:"realtime_start"`
	RealtimeEnd   db.Date `json:"realtime_end"`
	Name          string  `json:"name"`
	PressRelease  bool    `json:"press_release"`
	Link          string  `json:"link"`
	Notes         string  `json:"notes"`
}

// ReleasesPage is the response of the release endpoints.
type ReleasesPage struct {
	Paging
	Releases []Release `json:"releases"`
}

// ReleaseDate is a single release date of a release. ReleaseName is populated
// only when requested across all releases.
type ReleaseDate struct {
	ReleaseID   int     `json:"release_id"`
	ReleaseName string  `json:"release_name"`
	Date        db.Date `json:"date"`
}

// ReleaseDatesPage is the response of the release dates endpoints.
type ReleaseDatesPage struct {
	Paging
	ReleaseDates []ReleaseDate `json:"release_dates"`
}

// Series is the metadata of an economic data series.
type Series struct {
	ID                      string  `json:"id"`
	RealtimeStart           db.Date `json:"realtime_start"`
	RealtimeEnd             db.Date `json:"realtime_end"`
	Title                   string  `json:"title"`
	ObservationStart        db.Date `json:"observation_start"`
	ObservationEnd          db.Date `json:"observation_end"`
	Frequency               string  `json:"frequency"`
	FrequencyShort          string  `json:"frequency_short"`
	Units                   string  `json:"units"`
	UnitsShort              string  `json:"units_short"`
	SeasonalAdjustment      string  `json:"seasonal_adjustment"`
	SeasonalAdjustmentShort string  `json:"seasonal_adjustment_short"`
	LastUpdated             db.Time `json:"last_updated"`
	Popularity              int     `json:"popularity"`
	GroupPopularity         int     `json:"group_popularity"`
	Notes                   string  `json:"notes"`
}

// SeriesRow converts the series metadata to its db cache representation.
func (s Series) SeriesRow() db.SeriesRow {
	return db.SeriesRow{
		Title:              s.Title,
		ObservationStart:   s.ObservationStart,
		ObservationEnd:     s.ObservationEnd,
		Frequency:          s.Frequency,
		Units:              s.Units,
		SeasonalAdjustment: s.SeasonalAdjustment,
		LastUpdated:        s.LastUpdated,
		Popularity:         s.Popularity,
		Notes:              s.Notes,
	}
}

// SeriesPage is the response of the series list endpoints. Note, that the
// service spells the JSON key as "seriess".
type SeriesPage struct {
	Paging
	Series []Series `json:"seriess"`
}

// Observation is a single data point of a series. Value is kept as reported
// by the service, which uses "." for a missing observation.
type Observation struct {
	RealtimeStart db.Date `json:"realtime_start"`
	RealtimeEnd   db.Date `json:"realtime_end"`
	Date          db.Date `json:"date"`
	Value         string  `json:"value"`
}

// Missing checks whether the observation has no value.
func (o Observation) Missing() bool {
	return o.Value == "."
}

// Float parses the observation value as a number. It is an error to call it
// on a missing observation.
func (o Observation) Float() (float64, error) {
	if o.Missing() {
		return 0.0, errors.Reason("observation at %s has no value", o.Date)
	}
	v, err := strconv.ParseFloat(o.Value, 64)
	if err != nil {
		return 0.0, errors.Annotate(err, "failed to parse observation value '%s' at %s",
			o.Value, o.Date)
	}
	return v, nil
}

// ObservationRow converts the observation to its db cache representation.
func (o Observation) ObservationRow() (db.ObservationRow, error) {
	if o.Missing() {
		return db.ObservationRow{Date: o.Date, Missing: true}, nil
	}
	v, err := o.Float()
	if err != nil {
		return db.ObservationRow{}, err
	}
	return db.ObservationRow{Date: o.Date, Value: v}, nil
}

// ObservationsPage is the response of the series/observations endpoint.
type ObservationsPage struct {
	Paging
	ObservationStart db.Date       `json:"observation_start"`
	ObservationEnd   db.Date       `json:"observation_end"`
	Units            string        `json:"units"`
	OutputType       int           `json:"output_type"`
	Observations     []Observation `json:"observations"`
}

// Tag is an attribute assigned to series, e.g. "annual" or "nsa".
type Tag struct {
	Name        string  `json:"name"`
	GroupID     string  `json:"group_id"`
	Notes       string  `json:"notes"`
	Created     db.Time `json:"created"`
	Popularity  int     `json:"popularity"`
	SeriesCount int     `json:"series_count"`
}

// TagsPage is the response of the tag endpoints.
type TagsPage struct {
	Paging
	Tags []Tag `json:"tags"`
}

// VintageDatesPage is the response of the series/vintagedates endpoint.
type VintageDatesPage struct {
	Paging
	VintageDates []db.Date `json:"vintage_dates"`
}

// ReleaseTableElement is a node of a release table tree: either a series line
// or a grouping header with children.
type ReleaseTableElement struct {
	ElementID int                   `json:"element_id"`
	ReleaseID int                   `json:"release_id"`
	SeriesID  string                `json:"series_id"`
	ParentID  int                   `json:"parent_id"`
	Line      string                `json:"line"`
	Type      string                `json:"type"`
	Name      string                `json:"name"`
	Level     string                `json:"level"`
	Children  []ReleaseTableElement `json:"children"`
}

// ReleaseTablesPage is the response of the release/tables endpoint. Note,
// that the service reports the top-level release ID as a string.
type ReleaseTablesPage struct {
	Name      string                         `json:"name"`
	ElementID int                            `json:"element_id"`
	ReleaseID string                         `json:"release_id"`
	Elements  map[string]ReleaseTableElement `json:"elements"`
}
