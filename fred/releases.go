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

// FetchReleases obtains all releases of economic data.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy ("release_id",
// "name", "press_release", "realtime_start", "realtime_end"), SortOrder.
func FetchReleases(ctx context.Context, q *Query) (*ReleasesPage, error) {
	return fetchPage[ReleasesPage](ctx, "releases", nil, q)
}

// FetchAllReleaseDates obtains release dates across all releases of economic
// data.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy ("release_date",
// "release_id", "release_name"), SortOrder, IncludeEmpty.
func FetchAllReleaseDates(ctx context.Context, q *Query) (*ReleaseDatesPage, error) {
	return fetchPage[ReleaseDatesPage](ctx, "releases/dates", nil, q)
}

// FetchRelease obtains a single release of economic data by its ID.
//
// Optional parameters: Realtime.
func FetchRelease(ctx context.Context, releaseID int, q *Query) (*ReleasesPage, error) {
	return fetchPage[ReleasesPage](ctx, "release",
		intParam("release_id", releaseID), q)
}

// FetchReleaseDates obtains the release dates of a single release.
//
// Optional parameters: Realtime, Limit, Offset, SortOrder, IncludeEmpty.
func FetchReleaseDates(ctx context.Context, releaseID int, q *Query) (*ReleaseDatesPage, error) {
	return fetchPage[ReleaseDatesPage](ctx, "release/dates",
		intParam("release_id", releaseID), q)
}

// FetchReleaseSeries obtains the series of a release.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy, SortOrder, Filter,
// TagNames, ExcludeTagNames.
func FetchReleaseSeries(ctx context.Context, releaseID int, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "release/series",
		intParam("release_id", releaseID), q)
}

// FetchReleaseSources obtains the sources of a release.
//
// Optional parameters: Realtime.
func FetchReleaseSources(ctx context.Context, releaseID int, q *Query) (*SourcesPage, error) {
	return fetchPage[SourcesPage](ctx, "release/sources",
		intParam("release_id", releaseID), q)
}

// FetchReleaseTags obtains the tags of the series in a release.
//
// Optional parameters: Realtime, TagNames, TagGroupID, SearchText, Limit,
// Offset, OrderBy, SortOrder.
func FetchReleaseTags(ctx context.Context, releaseID int, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "release/tags",
		intParam("release_id", releaseID), q)
}

// FetchReleaseRelatedTags obtains the tags related to tagNames within the
// series of a release.
//
// Optional parameters: Realtime, ExcludeTagNames, TagGroupID, SearchText,
// Limit, Offset, OrderBy, SortOrder.
func FetchReleaseRelatedTags(ctx context.Context, releaseID int, tagNames []string, q *Query) (*TagsPage, error) {
	required := intParam("release_id", releaseID)
	required["tag_names"] = []string{joinList(tagNames)}
	return fetchPage[TagsPage](ctx, "release/related_tags", required, q)
}

// FetchReleaseTables obtains the release table trees of a release.
//
// Optional parameters: ElementID, ObservationDate.
func FetchReleaseTables(ctx context.Context, releaseID int, q *Query) (*ReleaseTablesPage, error) {
	return fetchPage[ReleaseTablesPage](ctx, "release/tables",
		intParam("release_id", releaseID), q)
}
