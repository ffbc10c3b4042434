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

// Package fred implements a client for the FRED web service of the Federal
// Reserve Bank of St. Louis.
//
// Official documentation is at https://fred.stlouisfed.org/docs/api/fred/ .
//
// The client is injected into a context with UseClient() and carries the API
// key and an optional default realtime window, applied to every query that
// does not set its own. Optional request parameters are accumulated in a
// Query, a copy-on-write builder; only the parameters that were actually set
// appear in the request URL.
//
// Each endpoint of the service is exposed as a Fetch* function returning the
// parsed JSON page. The series/observations endpoint additionally has a
// transparently paging iterator, see Observations().
package fred
