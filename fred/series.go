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

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// FetchSeries obtains the metadata of a single series.
//
// Optional parameters: Realtime.
func FetchSeries(ctx context.Context, seriesID string, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "series",
		strParam("series_id", seriesID), q)
}

// FetchSeriesCategories obtains the categories of a series.
//
// Optional parameters: Realtime.
func FetchSeriesCategories(ctx context.Context, seriesID string, q *Query) (*CategoriesPage, error) {
	return fetchPage[CategoriesPage](ctx, "series/categories",
		strParam("series_id", seriesID), q)
}

// FetchObservations obtains a single page of observations of a series. Use
// Observations() for transparent paging over large series.
//
// Optional parameters: Realtime, Limit, Offset, SortOrder,
// ObservationPeriod, Units, Frequency, AggregationMethod, OutputType,
// VintageDates.
func FetchObservations(ctx context.Context, seriesID string, q *Query) (*ObservationsPage, error) {
	return fetchPage[ObservationsPage](ctx, "series/observations",
		strParam("series_id", seriesID), q)
}

// FetchSeriesRelease obtains the release of a series.
//
// Optional parameters: Realtime.
func FetchSeriesRelease(ctx context.Context, seriesID string, q *Query) (*ReleasesPage, error) {
	return fetchPage[ReleasesPage](ctx, "series/release",
		strParam("series_id", seriesID), q)
}

// FetchSeriesSearch obtains the series matching the search words.
//
// Optional parameters: SearchType, Realtime, Limit, Offset, OrderBy,
// SortOrder, Filter, TagNames, ExcludeTagNames.
func FetchSeriesSearch(ctx context.Context, searchText string, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "series/search",
		strParam("search_text", searchText), q)
}

// FetchSeriesSearchTags obtains the tags of the series matching the search
// words.
//
// Optional parameters: Realtime, TagNames, TagGroupID, TagSearchText via
// SearchText, Limit, Offset, OrderBy, SortOrder.
func FetchSeriesSearchTags(ctx context.Context, searchText string, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "series/search/tags",
		strParam("series_search_text", searchText), q)
}

// FetchSeriesSearchRelatedTags obtains the tags related to tagNames within
// the series matching the search words.
//
// Optional parameters: Realtime, ExcludeTagNames, TagGroupID, Limit, Offset,
// OrderBy, SortOrder.
func FetchSeriesSearchRelatedTags(ctx context.Context, searchText string, tagNames []string, q *Query) (*TagsPage, error) {
	required := strParam("series_search_text", searchText)
	required["tag_names"] = []string{joinList(tagNames)}
	return fetchPage[TagsPage](ctx, "series/search/related_tags", required, q)
}

// FetchSeriesTags obtains the tags of a series.
//
// Optional parameters: Realtime, OrderBy, SortOrder.
func FetchSeriesTags(ctx context.Context, seriesID string, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "series/tags",
		strParam("series_id", seriesID), q)
}

// FetchSeriesUpdates obtains the series sorted by the time of their latest
// update.
//
// Optional parameters: Realtime, Limit, Offset, Filter ("geography" with
// "macro", "regional" or "all").
func FetchSeriesUpdates(ctx context.Context, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "series/updates", nil, q)
}

// FetchSeriesVintageDates obtains the dates when the data of a series were
// revised or released.
//
// Optional parameters: Realtime, Limit, Offset, SortOrder.
func FetchSeriesVintageDates(ctx context.Context, seriesID string, q *Query) (*VintageDatesPage, error) {
	return fetchPage[VintageDatesPage](ctx, "series/vintagedates",
		strParam("series_id", seriesID), q)
}

// ObservationsIterator iterates over the observations of a series row by
// row. Paging is handled transparently.
type ObservationsIterator struct {
	context   context.Context
	seriesID  string
	query     *Query
	page      *ObservationsPage
	index     int // the observation for Next() to return
	fetched   int // total observations returned by the service so far
	pageCount int // which page number we're on, for logging
	started   bool
}

// Observations sets up the iterator over the observations of a series, which
// will execute the query as needed and handle paging transparently.
func Observations(ctx context.Context, seriesID string, q *Query) *ObservationsIterator {
	return &ObservationsIterator{context: ctx, seriesID: seriesID, query: q}
}

// nextPage fetches and populates the iterator with the next page of
// observations. When there are no more pages to load, or loading a page
// results in an error, the first return value becomes false.
func (it *ObservationsIterator) nextPage() (bool, error) {
	if it.started {
		if len(it.page.Observations) == 0 || it.fetched >= it.page.Count {
			return false, nil
		}
		it.query = it.query.Offset(it.page.Offset + len(it.page.Observations))
	}
	it.started = true
	page, err := FetchObservations(it.context, it.seriesID, it.query)
	if err != nil {
		return false, errors.Annotate(err, "failed to query page %d", it.pageCount+1)
	}
	it.page = page
	it.index = 0
	it.pageCount++
	logging.Infof(it.context, "FRED %s: fetched page %d with %d observations of %d",
		it.seriesID, it.pageCount, len(page.Observations), page.Count)
	return true, nil
}

// Next loads the next observation. If there are no more observations, the
// second value is false.
func (it *ObservationsIterator) Next() (Observation, bool, error) {
	if !it.started || it.index >= len(it.page.Observations) {
		if ok, err := it.nextPage(); !ok {
			return Observation{}, false, err
		}
	}
	if it.index >= len(it.page.Observations) {
		return Observation{}, false, nil
	}
	obs := it.page.Observations[it.index]
	it.index++
	it.fetched++
	return obs, true, nil
}
