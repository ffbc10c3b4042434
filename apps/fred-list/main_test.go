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
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/stockparfait/logging"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	t.Parallel()

	tmpdir, tmpdirErr := os.MkdirTemp("", "test_list_app")
	defer os.RemoveAll(tmpdir)

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
	})

	Convey("parseFlags", t, func() {
		flags, err := parseFlags([]string{
			"-cache", "path/to/cache", "-log-level", "warning", "-series"})
		So(err, ShouldBeNil)
		So(flags.DBDir, ShouldEqual, "path/to/cache")
		So(flags.LogLevel, ShouldEqual, logging.Warning)
		So(flags.Series, ShouldBeTrue)

		_, err = parseFlags([]string{"-series", "-summary", "GNPCA"})
		So(err, ShouldNotBeNil)
	})

	Convey("printData works", t, func() {
		gnpca := db.TestSeries("Real GNP", db.NewDate(2019, 1, 1),
			db.NewDate(2021, 1, 1), "Annual", "Billions")
		gnpca.LastUpdated = *db.NewTime(2021, 3, 25, 7, 51, 36)
		unrate := db.TestSeries("Unemployment Rate", db.NewDate(2019, 1, 1),
			db.NewDate(2021, 6, 1), "Monthly", "Percent")
		unrate.LastUpdated = *db.NewTime(2021, 7, 2, 7, 44, 2)
		series := map[string]db.SeriesRow{"UNRATE": unrate, "GNPCA": gnpca}
		obs := []db.ObservationRow{
			db.TestObservation(db.NewDate(2019, 1, 1), 1.5),
			db.TestObservation(db.NewDate(2020, 1, 1), 2.5),
			{Date: db.NewDate(2021, 1, 1), Missing: true},
		}
		w := db.NewDatabase(tmpdir)
		So(w.WriteSeries(series), ShouldBeNil)
		So(w.WriteObservations("GNPCA", obs), ShouldBeNil)
		So(w.WriteMetadata(), ShouldBeNil)

		ctx := context.Background()

		Convey("series", func() {
			flags, err := parseFlags([]string{"-cache", tmpdir, "-series", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Series,Title,Start,End,Frequency,Units,Seasonal Adj.,Updated
GNPCA,Real GNP,2019-01-01,2021-01-01,Annual,Billions,,2021-03-25 07:51:36
UNRATE,Unemployment Rate,2019-01-01,2021-06-01,Monthly,Percent,,2021-07-02 07:44:02
`)
		})

		Convey("observations", func() {
			flags, err := parseFlags([]string{"-cache", tmpdir,
				"-observations", "GNPCA", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Date,Value
2019-01-01,1.5
2020-01-01,2.5
2021-01-01,.
`)
		})

		Convey("summary", func() {
			flags, err := parseFlags([]string{"-cache", tmpdir,
				"-summary", "GNPCA", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
Series,Samples,Missing,Mean,StdDev,Min,Max
GNPCA,2,1,2,0.707107,1.5,2.5
`)
		})

		Convey("summary of an unknown series is an error", func() {
			flags, err := parseFlags([]string{"-cache", tmpdir, "-summary", "NOPE"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(printData(ctx, flags, &buf), ShouldNotBeNil)
		})
	})
}
