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

package db

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/stockparfait/errors"
)

// parseTime parses the timestamp formats that appear in FRED responses, such
// as "2013-07-31 09:26:16-05" or a plain "2013-07-31".
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04:05-07",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02",
	}
	var err error
	for _, f := range formats {
		var tm time.Time
		tm, err = time.Parse(f, s)
		if err == nil {
			return tm, nil
		}
	}
	return time.Time{}, err
}

// Date records a calendar date as year, month and day, fitting into 4 bytes.
// The fields are exported for gob; use the accessor methods instead.
type Date struct {
	YearVal  uint16
	MonthVal uint8
	DayVal   uint8
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = &Date{}

// NewDate is the constructor for Date.
func NewDate(year uint16, month, day uint8) Date {
	return Date{year, month, day}
}

// NewDateFromTime creates a Date instance from a time.Time value in UTC.
func NewDateFromTime(t time.Time) Date {
	return Date{
		YearVal:  uint16(t.Year()),
		MonthVal: uint8(t.Month()),
		DayVal:   uint8(t.Day()),
	}
}

// NewDateFromString parses a "YYYY-MM-DD" string into a Date.
func NewDateFromString(s string) (Date, error) {
	t, err := parseTime(s)
	if err != nil {
		return Date{}, errors.Annotate(err, "failed to parse a Date string: '%s'", s)
	}
	return NewDateFromTime(t), nil
}

func (d Date) Year() uint16 { return d.YearVal }
func (d Date) Month() uint8 { return d.MonthVal }
func (d Date) Day() uint8   { return d.DayVal }

// String representation of the value, as accepted by the FRED API.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. NOTE: unlike other methods, this
// is a pointer method.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "Date JSON must be a string")
	}
	date, err := NewDateFromString(s)
	if err != nil {
		return errors.Annotate(err, "failed to parse Date string")
	}
	*d = date
	return nil
}

// ToTime converts Date to Time in UTC.
func (d Date) ToTime() time.Time {
	return time.Date(int(d.Year()), time.Month(d.Month()), int(d.Day()),
		0, 0, 0, 0, time.UTC)
}

// IsZero checks whether the date has a zero value.
func (d Date) IsZero() bool {
	return d.Year() == 0 && d.Month() == 0 && d.Day() == 0
}

// Before compares two Date objects for strict inequality (self < d2).
func (d Date) Before(d2 Date) bool {
	if d.Year() != d2.Year() {
		return d.Year() < d2.Year()
	}
	if d.Month() != d2.Month() {
		return d.Month() < d2.Month()
	}
	return d.Day() < d2.Day()
}

// After compares two Date objects for strict inequality, self > d2.
func (d Date) After(d2 Date) bool {
	return d2.Before(d)
}

// InRange checks if d is in the inclusive date range. Any of the bounds may be
// zero value, in which case it's ignored.
func (d Date) InRange(start, end Date) bool {
	if d.IsZero() {
		return false
	}
	if !start.IsZero() && start.After(d) {
		return false
	}
	if !end.IsZero() && end.Before(d) {
		return false
	}
	return true
}

// Time is a wrapper around time.Time with JSON methods for the timestamp
// formats used by FRED.
type Time time.Time

var _ json.Marshaler = &Time{}
var _ json.Unmarshaler = &Time{}
var _ gob.GobEncoder = Time{}
var _ gob.GobDecoder = &Time{}

func NewTime(year, month, day, hour, minute, second int) *Time {
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	return (*Time)(&t)
}

// String representation of Time.
func (t *Time) String() string {
	return time.Time(*t).Format("2006-01-02 15:04:05")
}

// MarshalJSON implements json.Marshaler.
func (t *Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "Time JSON must be a string")
	}
	tm, err := parseTime(s)
	if err != nil {
		return errors.Annotate(err, "failed to parse time string: '%s'", s)
	}
	*t = Time(tm)
	return nil
}

// GobEncode implements gob.GobEncoder. A defined type does not inherit the
// time.Time methods, and gob cannot encode its unexported fields on its own.
func (t Time) GobEncode() ([]byte, error) {
	return time.Time(t).GobEncode()
}

// GobDecode implements gob.GobDecoder.
func (t *Time) GobDecode(data []byte) error {
	return (*time.Time)(t).GobDecode(data)
}

// SeriesRow is a row in the series table: the cached metadata of a single
// FRED series. The series ID is the key in the table, not part of the row.
type SeriesRow struct {
	Title              string
	ObservationStart   Date
	ObservationEnd     Date
	Frequency          string
	Units              string
	SeasonalAdjustment string
	LastUpdated        Time
	Popularity         int
	Notes              string
}

// SeriesRowHeader returns the header of the series table for display.
func SeriesRowHeader() []string {
	return []string{
		"Series",
		"Title",
		"Start",
		"End",
		"Frequency",
		"Units",
		"Seasonal Adj.",
		"Updated",
	}
}

// csvRow is a precomputed list of table cells implementing table.Row.
type csvRow []string

func (r csvRow) CSV() []string { return r }

// Row converts SeriesRow to a table row for display purposes.
func (r SeriesRow) Row(id string) csvRow {
	return csvRow{
		id,
		r.Title,
		r.ObservationStart.String(),
		r.ObservationEnd.String(),
		r.Frequency,
		r.Units,
		r.SeasonalAdjustment,
		(&r.LastUpdated).String(),
	}
}

// TestSeries creates a SeriesRow for use in tests.
func TestSeries(title string, start, end Date, frequency, units string) SeriesRow {
	return SeriesRow{
		Title:            title,
		ObservationStart: start,
		ObservationEnd:   end,
		Frequency:        frequency,
		Units:            units,
	}
}

// ObservationRow is a single cached observation of a series. Missing
// observations (reported as "." by FRED) have Missing=true and Value=0.
type ObservationRow struct {
	Date    Date
	Value   float64
	Missing bool
}

// ObservationRowHeader returns the header of the observations table.
func ObservationRowHeader() []string {
	return []string{"Date", "Value"}
}

// Row converts ObservationRow to a table row for display purposes.
func (r ObservationRow) Row() csvRow {
	value := "."
	if !r.Missing {
		value = strconv.FormatFloat(r.Value, 'f', -1, 64)
	}
	return csvRow{r.Date.String(), value}
}

// TestObservation creates an ObservationRow for use in tests.
func TestObservation(date Date, value float64) ObservationRow {
	return ObservationRow{Date: date, Value: value}
}

// Metadata is the schema for the metadata.json file.
type Metadata struct {
	Start           Date `json:"start"` // the earliest cached observation date
	End             Date `json:"end"`   // the latest cached observation date
	NumSeries       int  `json:"num_series"`
	NumObservations int  `json:"num_observations"`
}
