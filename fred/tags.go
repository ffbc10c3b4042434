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

import "context"

// FetchTags obtains FRED tags, optionally filtered by tag names, a tag group
// or search words.
//
// Optional parameters: Realtime, TagNames, TagGroupID, SearchText, Limit,
// Offset, OrderBy ("series_count", "popularity", "created", "name",
// "group_id"), SortOrder.
func FetchTags(ctx context.Context, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "tags", nil, q)
}

// FetchRelatedTags obtains the tags related to one or more tags: tags
// assigned to series that match all of tagNames.
//
// Optional parameters: Realtime, ExcludeTagNames, TagGroupID, SearchText,
// Limit, Offset, OrderBy ("series_count", "popularity", "created", "name",
// "group_id"), SortOrder.
func FetchRelatedTags(ctx context.Context, tagNames []string, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "related_tags",
		listParam("tag_names", tagNames), q)
}

// FetchTagSeries obtains the series matching all of tagNames.
//
// Optional parameters: Realtime, ExcludeTagNames, Limit, Offset, OrderBy
// ("series_id", "title", "units", "frequency", "seasonal_adjustment",
// "realtime_start", "realtime_end", "last_updated", "observation_start",
// "observation_end", "popularity", "group_popularity"), SortOrder.
func FetchTagSeries(ctx context.Context, tagNames []string, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "tags/series",
		listParam("tag_names", tagNames), q)
}
