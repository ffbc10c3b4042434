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
	"net/url"
	"strconv"
	"sync"

	"github.com/Masrik-Dahir/full-fred/db"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://api.stlouisfed.org/fred"

// The extremes of the realtime period accepted by the service: the earliest
// and the latest available realtime dates.
var (
	EarliestRealtime = db.NewDate(1776, 7, 4)
	LatestRealtime   = db.NewDate(9999, 12, 31)
)

// Client for querying the FRED web service.
type Client struct {
	baseURL string // the base URL of the server
	apiKey  string // your very own secret key
	// Default realtime window for queries that don't set their own. Zero
	// values are not sent, letting the service apply its own defaults.
	realtimeStart db.Date
	realtimeEnd   db.Date

	mu   sync.Mutex
	last map[string]interface{} // most recent result per endpoint path
}

// newClient creates a new client.
func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		last:    make(map[string]interface{}),
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context.
func UseClient(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL, apiKey))
}

// SetRealtime sets the client's default realtime window. A zero date leaves
// the corresponding bound unset.
func (c *Client) SetRealtime(start, end db.Date) {
	c.realtimeStart = start
	c.realtimeEnd = end
}

// LastResult returns the most recent result fetched for the endpoint path,
// e.g. "source/releases", or nil if the endpoint was never fetched through
// this client. Each fetch overwrites the previous result for its endpoint.
func (c *Client) LastResult(path string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last[path]
}

func (c *Client) record(path string, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last[path] = v
}

// applyDefaults adds the API key, the JSON file type and the default realtime
// window to the query, without overriding explicitly set parameters.
func (c *Client) applyDefaults(query url.Values) {
	if _, ok := query["realtime_start"]; !ok && !c.realtimeStart.IsZero() {
		query["realtime_start"] = []string{c.realtimeStart.String()}
	}
	if _, ok := query["realtime_end"]; !ok && !c.realtimeEnd.IsZero() {
		query["realtime_end"] = []string{c.realtimeEnd.String()}
	}
	query["api_key"] = []string{c.apiKey}
	query["file_type"] = []string{"json"}
}

// fetchPage executes a single request to the endpoint path using the Client
// from the context and decodes the JSON response into a page of type T.
func fetchPage[T any](ctx context.Context, path string, required url.Values, q *Query) (*T, error) {
	client := GetClient(ctx)
	if client == nil {
		return nil, errors.Reason("no client in context")
	}
	uri := client.baseURL + "/" + path
	query := q.Values()
	for k, v := range required {
		query[k] = v
	}
	client.applyDefaults(query)

	var page T
	if err := fetch.FetchJSON(ctx, uri, &page, query, nil); err != nil {
		return nil, errors.Annotate(err, "failed to fetch %s", path)
	}
	client.record(path, &page)
	return &page, nil
}

// intParam creates the required query values for a single integer parameter.
func intParam(name string, value int) url.Values {
	return url.Values{name: []string{strconv.Itoa(value)}}
}

// strParam creates the required query values for a single string parameter.
func strParam(name, value string) url.Values {
	return url.Values{name: []string{value}}
}

// listParam creates the required query values for a list parameter, joined
// with the fixed ";" separator used by FRED for tag names.
func listParam(name string, values []string) url.Values {
	return url.Values{name: []string{joinList(values)}}
}
