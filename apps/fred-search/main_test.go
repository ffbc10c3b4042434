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
	"testing"

	"github.com/Masrik-Dahir/full-fred/fred"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	t.Parallel()

	Convey("parseFlags", t, func() {
		flags, err := parseFlags([]string{
			"-key", "testkey", "-limit", "5", "-csv", "real", "gnp"})
		So(err, ShouldBeNil)
		So(flags.Key, ShouldEqual, "testkey")
		So(flags.Limit, ShouldEqual, 5)
		So(flags.CSV, ShouldBeTrue)
		So(flags.Text, ShouldEqual, "real gnp")

		_, err = parseFlags([]string{"-key", "testkey"})
		So(err, ShouldNotBeNil)
	})

	Convey("search works", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		fred.URL = server.URL() + "/fred"

		server.ResponseBody = []string{`
{
  "count": 1,
  "seriess": [
    {
      "id": "GNPCA",
      "title": "Real Gross National Product",
      "observation_start": "1929-01-01",
      "observation_end": "2021-01-01",
      "frequency": "Annual",
      "units": "Billions of Chained 2012 Dollars",
      "seasonal_adjustment": "Not Seasonally Adjusted",
      "last_updated": "2021-03-25 07:51:36-05"
    }
  ]
}`}
		flags, err := parseFlags([]string{"-key", "testkey", "-csv", "real", "gnp"})
		So(err, ShouldBeNil)
		var buf bytes.Buffer
		So(search(ctx, flags, &buf), ShouldBeNil)
		So(server.RequestPath, ShouldEqual, "/fred/series/search")
		So(server.RequestQuery["search_text"], ShouldResemble, []string{"real gnp"})
		So(server.RequestQuery["limit"], ShouldResemble, []string{"20"})
		So("\n"+buf.String(), ShouldEqual, `
Series,Title,Start,End,Frequency,Units,Seasonal Adj.,Updated
GNPCA,Real Gross National Product,1929-01-01,2021-01-01,Annual,Billions of Chained 2012 Dollars,Not Seasonally Adjusted,2021-03-25 07:51:36
`)
	})
}
