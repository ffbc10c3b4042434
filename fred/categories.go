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

// FetchCategory obtains a category by its ID. The root category has ID 0.
func FetchCategory(ctx context.Context, categoryID int, q *Query) (*CategoriesPage, error) {
	return fetchPage[CategoriesPage](ctx, "category",
		intParam("category_id", categoryID), q)
}

// FetchCategoryChildren obtains the child categories of a category.
//
// Optional parameters: Realtime.
func FetchCategoryChildren(ctx context.Context, categoryID int, q *Query) (*CategoriesPage, error) {
	return fetchPage[CategoriesPage](ctx, "category/children",
		intParam("category_id", categoryID), q)
}

// FetchCategoryRelated obtains the related categories of a category: linked
// categories outside the parent-child tree.
//
// Optional parameters: Realtime.
func FetchCategoryRelated(ctx context.Context, categoryID int, q *Query) (*CategoriesPage, error) {
	return fetchPage[CategoriesPage](ctx, "category/related",
		intParam("category_id", categoryID), q)
}

// FetchCategorySeries obtains the series in a category.
//
// Optional parameters: Realtime, Limit, Offset, OrderBy, SortOrder, Filter,
// TagNames, ExcludeTagNames.
func FetchCategorySeries(ctx context.Context, categoryID int, q *Query) (*SeriesPage, error) {
	return fetchPage[SeriesPage](ctx, "category/series",
		intParam("category_id", categoryID), q)
}

// FetchCategoryTags obtains the tags of the series in a category.
//
// Optional parameters: Realtime, TagNames, TagGroupID, SearchText, Limit,
// Offset, OrderBy, SortOrder.
func FetchCategoryTags(ctx context.Context, categoryID int, q *Query) (*TagsPage, error) {
	return fetchPage[TagsPage](ctx, "category/tags",
		intParam("category_id", categoryID), q)
}

// FetchCategoryRelatedTags obtains the tags related to tagNames within the
// series of a category.
//
// Optional parameters: Realtime, ExcludeTagNames, TagGroupID, SearchText,
// Limit, Offset, OrderBy, SortOrder.
func FetchCategoryRelatedTags(ctx context.Context, categoryID int, tagNames []string, q *Query) (*TagsPage, error) {
	required := intParam("category_id", categoryID)
	required["tag_names"] = []string{joinList(tagNames)}
	return fetchPage[TagsPage](ctx, "category/related_tags", required, q)
}
