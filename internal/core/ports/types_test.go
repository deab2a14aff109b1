package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haroldmz/stockdesk/internal/core/ports"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page        int
		pageSize    int
		wantPages   int
		wantHasNext bool
		wantHasPrev bool
	}{
		{name: "first_of_three_pages", total: 25, page: 1, pageSize: 10, wantPages: 3, wantHasNext: true, wantHasPrev: false},
		{name: "middle_page", total: 25, page: 2, pageSize: 10, wantPages: 3, wantHasNext: true, wantHasPrev: true},
		{name: "last_partial_page", total: 25, page: 3, pageSize: 10, wantPages: 3, wantHasNext: false, wantHasPrev: true},
		{name: "exact_multiple", total: 20, page: 2, pageSize: 10, wantPages: 2, wantHasNext: false, wantHasPrev: true},
		{name: "empty_result", total: 0, page: 1, pageSize: 10, wantPages: 0, wantHasNext: false, wantHasPrev: false},
		{name: "single_row", total: 1, page: 1, pageSize: 10, wantPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "zero_page_clamped_to_one", total: 5, page: 0, pageSize: 10, wantPages: 1, wantHasNext: false, wantHasPrev: false},
		{name: "zero_page_size", total: 5, page: 1, pageSize: 0, wantPages: 0, wantHasNext: false, wantHasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ports.NewPage([]string{}, tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantHasNext, p.HasNextPage)
			assert.Equal(t, tt.wantHasPrev, p.HasPrevPage)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
