// internal/core/services/types.go
package services

import "github.com/haroldmz/stockdesk/internal/core/ports"

// applyString copies a patch field over the stored value when set.
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// listParamsFrom converts search-call paging into repository list params.
func listParamsFrom(p ports.SearchParams) ports.ListParams {
	return ports.ListParams{
		Take:      p.Take,
		Skip:      p.Skip,
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
	}
}
