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

package table

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testRow []string

func (r testRow) CSV() []string { return r }

func TestTable(t *testing.T) {
	t.Parallel()

	Convey("Table writers work", t, func() {
		tbl := NewTable("Date", "Value")
		tbl.AddRow(testRow{"2020-01-01", "1.5"}, testRow{"2020-02-01", "42"})

		Convey("WriteCSV", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Date,Value
2020-01-01,1.5
2020-02-01,42
`)
		})

		Convey("WriteCSV without header, limited rows", func() {
			var buf bytes.Buffer
			So(tbl.WriteCSV(&buf, Params{Rows: 1, NoHeader: true}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "2020-01-01,1.5\n")
		})

		Convey("WriteText", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{}), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
      Date | Value
---------- | -----
2020-01-01 |   1.5
2020-02-01 |    42
`)
		})

		Convey("WriteText clips wide columns", func() {
			tbl := NewTable()
			tbl.AddRow(testRow{"abcdefgh", "x"})
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{MaxColWidth: 6}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "abcd.. | x\n")
		})

		Convey("WriteText rejects invalid MaxColWidth", func() {
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{MaxColWidth: 3}), ShouldNotBeNil)
		})

		Convey("WriteText rejects uneven rows", func() {
			tbl := NewTable("One")
			tbl.AddRow(testRow{"a", "b"})
			var buf bytes.Buffer
			So(tbl.WriteText(&buf, Params{}), ShouldNotBeNil)
		})
	})
}
