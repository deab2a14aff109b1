// internal/core/ports/types.go
package ports

// ListParams holds parameters for listing and searching records. Only fields
// with non-zero values are forwarded to the API as query parameters.
type ListParams struct {
	Search      string
	SearchField string
	Filters     map[string]string
	SortBy      string
	SortOrder   string
	Take        int
	Skip        int
}

// Page is the canonical paginated result every repository normalizes API
// responses into.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPage derives the pagination metadata from the raw counts. page is
// 1-based; totalPages is ceil(total/pageSize).
func NewPage[T any](items []T, total int64, page, pageSize int) *Page[T] {
	if page < 1 {
		page = 1
	}
	var totalPages int
	if pageSize > 0 {
		totalPages = int(total) / pageSize
		if int(total)%pageSize > 0 {
			totalPages++
		}
	}
	return &Page[T]{
		Items:       items,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
