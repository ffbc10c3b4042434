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
	"context"
	"testing"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/stockparfait/fetch"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTags(t *testing.T) {
	t.Parallel()

	Convey("Tag API calls work correctly", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		testKey := "testkey"
		ctx := fetch.UseClient(context.Background(), server.Client())
		URL = server.URL() + "/fred"
		ctx = UseClient(ctx, testKey)

		Convey("FetchTags", func() {
			server.ResponseBody = []string{`
{
  "realtime_start": "2021-04-05",
  "realtime_end": "2021-04-05",
  "order_by": "series_count",
  "sort_order": "desc",
  "count": 1,
  "offset": 0,
  "limit": 1000,
  "tags": [
    {
      "name": "nsa",
      "group_id": "seas",
      "notes": "Not seasonally adjusted",
      "created": "2012-02-27 10:18:19-06",
      "popularity": 100,
      "series_count": 100000
    }
  ]
}`}
			q := NewQuery().TagGroupID("seas").SearchText("adjusted")
			page, err := FetchTags(ctx, q)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/tags")
			So(server.RequestQuery["tag_group_id"], ShouldResemble, []string{"seas"})
			So(server.RequestQuery["search_text"], ShouldResemble, []string{"adjusted"})
			So(len(page.Tags), ShouldEqual, 1)
			So(page.Tags[0].Name, ShouldEqual, "nsa")
			So(page.Tags[0].GroupID, ShouldEqual, "seas")
			So((&page.Tags[0].Created).String(), ShouldEqual, "2012-02-27 10:18:19")
			So(page.Tags[0].SeriesCount, ShouldEqual, 100000)
		})

		Convey("FetchRelatedTags joins the tag names", func() {
			server.ResponseBody = []string{`{"count": 0, "tags": []}`}
			_, err := FetchRelatedTags(ctx, []string{"monetary aggregates", "weekly"},
				NewQuery().ExcludeTagNames("discontinued"))
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/related_tags")
			So(server.RequestQuery["tag_names"], ShouldResemble,
				[]string{"monetary aggregates;weekly"})
			So(server.RequestQuery["exclude_tag_names"], ShouldResemble,
				[]string{"discontinued"})
		})

		Convey("FetchTagSeries", func() {
			server.ResponseBody = []string{`
{
  "count": 1,
  "seriess": [
    {
      "id": "M2SL",
      "realtime_start": "2021-04-05",
      "realtime_end": "2021-04-05",
      "title": "M2 Money Stock",
      "observation_start": "1959-01-01",
      "observation_end": "2021-02-01",
      "frequency": "Monthly",
      "frequency_short": "M",
      "units": "Billions of Dollars",
      "units_short": "Bil. of $",
      "seasonal_adjustment": "Seasonally Adjusted",
      "seasonal_adjustment_short": "SA",
      "last_updated": "2021-03-23 12:01:03-05",
      "popularity": 80,
      "group_popularity": 81
    }
  ]
}`}
			page, err := FetchTagSeries(ctx, []string{"m2", "usa"}, nil)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/tags/series")
			So(server.RequestQuery["tag_names"], ShouldResemble, []string{"m2;usa"})
			So(len(page.Series), ShouldEqual, 1)
			s := page.Series[0]
			So(s.ID, ShouldEqual, "M2SL")
			So(s.Title, ShouldEqual, "M2 Money Stock")
			So(s.ObservationStart, ShouldResemble, db.NewDate(1959, 1, 1))
			So(s.FrequencyShort, ShouldEqual, "M")
			So(s.GroupPopularity, ShouldEqual, 81)

			Convey("conversion to a cache row", func() {
				row := s.SeriesRow()
				So(row.Title, ShouldEqual, "M2 Money Stock")
				So(row.ObservationEnd, ShouldResemble, db.NewDate(2021, 2, 1))
				So((&row.LastUpdated).String(), ShouldEqual, "2021-03-23 12:01:03")
			})
		})
	})
}
