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

// Package table is a simple container for tabular results with text and CSV
// writers, used by the apps to print series and observations.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Table container. The header is optional; when present, it is expected to
// have the same number of cells as each row.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// cells materializes the rows to be written, header first when requested.
func (t *Table) cells(p Params) [][]string {
	var res [][]string
	if !p.NoHeader && len(t.Header) > 0 {
		res = append(res, t.Header)
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		res = append(res, r.CSV())
	}
	return res
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	for _, row := range t.cells(p) {
		if err := cw.Write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// clip shortens a cell to at most width runes, marking the cut with "..".
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-2]) + ".."
}

// WriteText writes the table as a text formatted for ease of reading: cells
// are right-aligned and padded to the widest cell of their column.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	rows := t.cells(p)
	var widths []int
	for _, row := range rows {
		if len(row) == 0 {
			return errors.Reason("row size = 0")
		}
		if widths == nil {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, s := range row {
			if p.MaxColWidth > 0 && len(s) > p.MaxColWidth {
				s = clip(s, p.MaxColWidth)
			}
			if widths[i] < len(s) {
				widths[i] = len(s)
			}
		}
	}

	write := func(row []string) error {
		padded := make([]string, len(row))
		for i, s := range row {
			if p.MaxColWidth > 0 {
				s = clip(s, p.MaxColWidth)
			}
			padded[i] = fmt.Sprintf("%[2]*[1]s", s, widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(padded, " | "))
		return err
	}

	for i, row := range rows {
		if err := write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
		if i == 0 && !p.NoHeader && len(t.Header) > 0 {
			dashes := make([]string, len(widths))
			for j, width := range widths {
				dashes[j] = strings.Repeat("-", width)
			}
			if err := write(dashes); err != nil {
				return errors.Annotate(err, "failed to write header separator")
			}
		}
	}
	return nil
}
