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

func TestSources(t *testing.T) {
	t.Parallel()

	Convey("Source API calls work correctly", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		testKey := "testkey"
		ctx := fetch.UseClient(context.Background(), server.Client())
		URL = server.URL() + "/fred"
		ctx = UseClient(ctx, testKey)

		Convey("FetchSources", func() {
			server.ResponseBody = []string{`
{
  "realtime_start": "2021-04-05",
  "realtime_end": "2021-04-05",
  "order_by": "source_id",
  "sort_order": "asc",
  "count": 2,
  "offset": 0,
  "limit": 1000,
  "sources": [
    {
      "id": 1,
      "realtime_start": "2021-04-05",
      "realtime_end": "2021-04-05",
      "name": "Board of Governors of the Federal Reserve System (US)",
      "link": "http://www.federalreserve.gov/"
    },
    {
      "id": 3,
      "realtime_start": "2021-04-05",
      "realtime_end": "2021-04-05",
      "name": "Federal Reserve Bank of Philadelphia",
      "link": "https://www.philadelphiafed.org/"
    }
  ]
}`}
			q := NewQuery().Limit(1000).OrderBy("source_id")
			page, err := FetchSources(ctx, q)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/sources")

			expectedQuery := q.Values()
			expectedQuery["api_key"] = []string{testKey}
			expectedQuery["file_type"] = []string{"json"}
			So(server.RequestQuery, ShouldResemble, expectedQuery)

			So(page, ShouldResemble, &SourcesPage{
				Paging: Paging{
					RealtimeStart: db.NewDate(2021, 4, 5),
					RealtimeEnd:   db.NewDate(2021, 4, 5),
					OrderBy:       "source_id",
					SortOrder:     "asc",
					Count:         2,
					Offset:        0,
					Limit:         1000,
				},
				Sources: []Source{
					{
						ID:            1,
						RealtimeStart: db.NewDate(2021, 4, 5),
						RealtimeEnd:   db.NewDate(2021, 4, 5),
						Name:          "Board of Governors of the Federal Reserve System (US)",
						Link:          "http://www.federalreserve.gov/",
					},
					{
						ID:            3,
						RealtimeStart: db.NewDate(2021, 4, 5),
						RealtimeEnd:   db.NewDate(2021, 4, 5),
						Name:          "Federal Reserve Bank of Philadelphia",
						Link:          "https://www.philadelphiafed.org/",
					},
				},
			})
		})

		Convey("FetchSource", func() {
			server.ResponseBody = []string{`{"count": 1, "sources": [{"id": 1}]}`}
			page, err := FetchSource(ctx, 1, nil)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/source")
			So(server.RequestQuery["source_id"], ShouldResemble, []string{"1"})
			So(len(page.Sources), ShouldEqual, 1)
			So(page.Sources[0].ID, ShouldEqual, 1)
		})

		Convey("FetchSourceReleases", func() {
			server.ResponseBody = []string{`
{
  "count": 1,
  "releases": [
    {
      "id": 13,
      "realtime_start": "2021-04-05",
      "realtime_end": "2021-04-05",
      "name": "G.17 Industrial Production and Capacity Utilization",
      "press_release": true,
      "link": "http://www.federalreserve.gov/releases/g17/"
    }
  ]
}`}
			page, err := FetchSourceReleases(ctx, 1, NewQuery().OrderBy("release_id"))
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/fred/source/releases")
			So(server.RequestQuery["source_id"], ShouldResemble, []string{"1"})
			So(server.RequestQuery["order_by"], ShouldResemble, []string{"release_id"})
			So(page.Releases, ShouldResemble, []Release{
				{
					ID:            13,
					RealtimeStart: db.NewDate(2021, 4, 5),
					RealtimeEnd:   db.NewDate(2021, 4, 5),
					Name:          "G.17 Industrial Production and Capacity Utilization",
					PressRelease:  true,
					Link:          "http://www.federalreserve.gov/releases/g17/",
				},
			})
		})
	})
}
