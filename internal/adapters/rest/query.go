// internal/adapters/rest/query.go
package rest

import (
	"net/url"
	"strconv"

	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// listQuery builds the query string for a list call. Only set fields are
// appended; skip rides along whenever take is present so the server always
// sees an explicit offset for paged requests.
func listQuery(params ports.ListParams) url.Values {
	q := url.Values{}
	if params.Take > 0 {
		q.Set("take", strconv.Itoa(params.Take))
		q.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Search != "" {
		field := params.SearchField
		if field == "" {
			field = "q"
		}
		q.Set(field, params.Search)
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		q.Set("sortOrder", params.SortOrder)
	}
	for key, value := range params.Filters {
		if key != "" && value != "" {
			q.Set(key, value)
		}
	}
	return q
}
