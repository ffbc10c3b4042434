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
	"fmt"
	"net/url"
	"strings"

	"github.com/Masrik-Dahir/full-fred/db"
)

// Values for the sort_order parameter.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// joinList joins tag names with the fixed ";" separator used by FRED.
func joinList(values []string) string {
	return strings.Join(values, ";")
}

// joinDates joins vintage dates with the fixed "," separator used by FRED.
func joinDates(dates []db.Date) string {
	strs := make([]string, len(dates))
	for i, d := range dates {
		strs[i] = d.String()
	}
	return strings.Join(strs, ",")
}

// Query accumulates the optional parameters of a request. Not every endpoint
// accepts every parameter; each Fetch* function documents the parameters its
// endpoint understands, and the service ignores the rest.
//
// A nil *Query is valid and means no optional parameters.
type Query struct {
	realtimeStart     db.Date
	realtimeEnd       db.Date
	limit             int
	offset            int
	orderBy           string
	sortOrder         string
	filterVariable    string
	filterValue       string
	tagNames          []string
	excludeTagNames   []string
	tagGroupID        string
	searchText        string
	searchType        string
	observationStart  db.Date
	observationEnd    db.Date
	units             string
	frequency         string
	aggregationMethod string
	outputType        int
	vintageDates      []db.Date
	includeEmpty      bool
	observationDate   db.Date
	elementID         int
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Copy creates a deep copy of the query. It is primarily used in its builder
// methods, which never modify the original. Copying a nil query yields an
// empty one.
func (q *Query) Copy() *Query {
	if q == nil {
		return NewQuery()
	}
	q2 := *q
	q2.tagNames = append([]string{}, q.tagNames...)
	q2.excludeTagNames = append([]string{}, q.excludeTagNames...)
	q2.vintageDates = append([]db.Date{}, q.vintageDates...)
	return &q2
}

// Realtime sets the realtime period of the query. A zero date leaves the
// corresponding bound unset.
func (q *Query) Realtime(start, end db.Date) *Query {
	q2 := q.Copy()
	q2.realtimeStart = start
	q2.realtimeEnd = end
	return q2
}

// Limit sets the maximum number of results in a single response, [1..1000]
// for most endpoints.
func (q *Query) Limit(limit int) *Query {
	q2 := q.Copy()
	q2.limit = limit
	return q2
}

// Offset sets the non-negative result offset for paging.
func (q *Query) Offset(offset int) *Query {
	q2 := q.Copy()
	q2.offset = offset
	return q2
}

// OrderBy orders the results by the values of the given attribute. The set of
// valid attributes depends on the endpoint, e.g. "source_id" or "name" for
// sources.
func (q *Query) OrderBy(attribute string) *Query {
	q2 := q.Copy()
	q2.orderBy = attribute
	return q2
}

// SortOrder sorts the results in SortAsc or SortDesc order of the order_by
// attribute.
func (q *Query) SortOrder(order string) *Query {
	q2 := q.Copy()
	q2.sortOrder = order
	return q2
}

// Filter restricts the results to those whose attribute variable has the
// given value, e.g. Filter("frequency", "Quarterly") for series lists.
func (q *Query) Filter(variable, value string) *Query {
	q2 := q.Copy()
	q2.filterVariable = variable
	q2.filterValue = value
	return q2
}

// TagNames restricts the results to those matching all of the given tags.
func (q *Query) TagNames(names ...string) *Query {
	q2 := q.Copy()
	q2.tagNames = names
	return q2
}

// ExcludeTagNames restricts the results to those matching none of the given
// tags.
func (q *Query) ExcludeTagNames(names ...string) *Query {
	q2 := q.Copy()
	q2.excludeTagNames = names
	return q2
}

// TagGroupID restricts tag results to a tag group, one of "freq", "gen",
// "geo", "geot", "rls", "seas", "src" or "cc".
func (q *Query) TagGroupID(id string) *Query {
	q2 := q.Copy()
	q2.tagGroupID = id
	return q2
}

// SearchText sets the words to match results against.
func (q *Query) SearchText(text string) *Query {
	q2 := q.Copy()
	q2.searchText = text
	return q2
}

// SearchType determines what series search matches against, "full_text"
// (default) or "series_id".
func (q *Query) SearchType(kind string) *Query {
	q2 := q.Copy()
	q2.searchType = kind
	return q2
}

// ObservationPeriod restricts observations to the inclusive date range. A
// zero date leaves the corresponding bound unset.
func (q *Query) ObservationPeriod(start, end db.Date) *Query {
	q2 := q.Copy()
	q2.observationStart = start
	q2.observationEnd = end
	return q2
}

// Units sets the data value transformation for observations, e.g. "lin"
// (levels, default), "chg", "pch" or "log".
func (q *Query) Units(units string) *Query {
	q2 := q.Copy()
	q2.units = units
	return q2
}

// Frequency resamples observations to a lower frequency, e.g. "m", "q" or
// "a".
func (q *Query) Frequency(frequency string) *Query {
	q2 := q.Copy()
	q2.frequency = frequency
	return q2
}

// AggregationMethod sets the frequency aggregation: "avg" (default), "sum" or
// "eop".
func (q *Query) AggregationMethod(method string) *Query {
	q2 := q.Copy()
	q2.aggregationMethod = method
	return q2
}

// OutputType selects the observation output type, [1..4]; 1 (realtime
// period) is the service default.
func (q *Query) OutputType(kind int) *Query {
	q2 := q.Copy()
	q2.outputType = kind
	return q2
}

// VintageDates requests observations as they existed on the given dates,
// instead of a realtime period.
func (q *Query) VintageDates(dates ...db.Date) *Query {
	q2 := q.Copy()
	q2.vintageDates = dates
	return q2
}

// IncludeEmpty requests release dates with no data, which are excluded by
// default.
func (q *Query) IncludeEmpty() *Query {
	q2 := q.Copy()
	q2.includeEmpty = true
	return q2
}

// ObservationDate sets the observation date for release tables.
func (q *Query) ObservationDate(date db.Date) *Query {
	q2 := q.Copy()
	q2.observationDate = date
	return q2
}

// ElementID selects a particular release table element.
func (q *Query) ElementID(id int) *Query {
	q2 := q.Copy()
	q2.elementID = id
	return q2
}

// Values returns the query values containing exactly the parameters that were
// set. Each call creates a new object, so the caller is free to modify it
// without affecting the query. Calling Values on a nil query yields an empty
// result.
func (q *Query) Values() url.Values {
	v := make(url.Values)
	if q == nil {
		return v
	}
	set := func(name, value string) {
		if value != "" {
			v[name] = []string{value}
		}
	}
	setDate := func(name string, d db.Date) {
		if !d.IsZero() {
			v[name] = []string{d.String()}
		}
	}
	setDate("realtime_start", q.realtimeStart)
	setDate("realtime_end", q.realtimeEnd)
	if q.limit > 0 {
		set("limit", fmt.Sprintf("%d", q.limit))
	}
	if q.offset > 0 {
		set("offset", fmt.Sprintf("%d", q.offset))
	}
	set("order_by", q.orderBy)
	set("sort_order", q.sortOrder)
	set("filter_variable", q.filterVariable)
	set("filter_value", q.filterValue)
	if len(q.tagNames) > 0 {
		set("tag_names", joinList(q.tagNames))
	}
	if len(q.excludeTagNames) > 0 {
		set("exclude_tag_names", joinList(q.excludeTagNames))
	}
	set("tag_group_id", q.tagGroupID)
	set("search_text", q.searchText)
	set("search_type", q.searchType)
	setDate("observation_start", q.observationStart)
	setDate("observation_end", q.observationEnd)
	set("units", q.units)
	set("frequency", q.frequency)
	set("aggregation_method", q.aggregationMethod)
	if q.outputType > 0 {
		set("output_type", fmt.Sprintf("%d", q.outputType))
	}
	if len(q.vintageDates) > 0 {
		set("vintage_dates", joinDates(q.vintageDates))
	}
	if q.includeEmpty {
		set("include_release_dates_with_no_data", "true")
	}
	setDate("observation_date", q.observationDate)
	if q.elementID > 0 {
		set("element_id", fmt.Sprintf("%d", q.elementID))
	}
	return v
}
