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

// FetchSources obtains all sources of economic data.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy ("source_id", "name",
// "realtime_start", "realtime_end"), SortOrder.
func FetchSources(ctx context.Context, q *Query) (*SourcesPage, error) {
	return fetchPage[SourcesPage](ctx, "sources", nil, q)
}

// FetchSource obtains a single source of economic data by its ID.
//
// Optional parameters: Realtime.
func FetchSource(ctx context.Context, sourceID int, q *Query) (*SourcesPage, error) {
	return fetchPage[SourcesPage](ctx, "source", intParam("source_id", sourceID), q)
}

// FetchSourceReleases obtains the releases of a source.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy ("release_id",
// "name", "press_release", "realtime_start", "realtime_end"), SortOrder.
func FetchSourceReleases(ctx context.Context, sourceID int, q *Query) (*ReleasesPage, error) {
	return fetchPage[ReleasesPage](ctx, "source/releases",
		intParam("source_id", sourceID), q)
}
