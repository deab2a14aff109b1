// internal/listview/listview.go

// Package listview owns the single source of truth for "what is currently
// being viewed" on a dashboard screen: the current query (search, sort,
// filter, page), the last fetched rows, and the display-only ledger of active
// filter indicators. Every query-state mutation triggers exactly one fetch
// cycle through the application service.
package listview

import (
	"context"
	"log/slog"
	"sync"

	"github.com/haroldmz/stockdesk/internal/core/ports"
)

// SortOrder is a list sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchAllFields selects the cascading multi-field search instead of a
// single field-scoped one.
const SearchAllFields = "all"

// Query is the ephemeral client-side query state. It is never persisted.
type Query struct {
	Search      string
	SearchField string
	SortBy      string
	SortOrder   SortOrder
	FilterKey   string
	FilterValue string
	Page        int
	PageSize    int
}

// Meta mirrors the pagination metadata of the last successful fetch.
type Meta struct {
	Total       int64
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// Fetcher executes the current query against the application service and
// returns one canonical page.
type Fetcher[T any] func(ctx context.Context, q Query) (*ports.Page[T], error)

// Options configures a view's defaults at mount. The page size is fixed for
// the lifetime of the view.
type Options struct {
	PageSize    int
	SortBy      string
	SortOrder   SortOrder
	SearchField string
	OnChange    func()
}

// State is an immutable snapshot handed to the presentation layer.
type State[T any] struct {
	Rows         []T
	Query        Query
	Meta         Meta
	Loading      bool
	ErrorMessage string
	Indicators   []Indicator
}

// View reconciles query state with the server. On a failed fetch the
// previously displayed rows are retained rather than flashing empty; the
// error message sticks until dismissed or a later fetch succeeds.
type View[T any] struct {
	fetch    Fetcher[T]
	logger   *slog.Logger
	onChange func()
	defaults Query

	mu         sync.Mutex
	query      Query
	rows       []T
	meta       Meta
	loading    bool
	errMsg     string
	gen        uint64
	indicators []Indicator
}

// New creates a view around a fetcher. Defaults: page 1, page size 10,
// sorted by created_at descending, searching all fields.
func New[T any](fetch Fetcher[T], opts Options, logger *slog.Logger) *View[T] {
	defaults := Query{
		SearchField: opts.SearchField,
		SortBy:      opts.SortBy,
		SortOrder:   opts.SortOrder,
		Page:        1,
		PageSize:    opts.PageSize,
	}
	if defaults.PageSize <= 0 {
		defaults.PageSize = 10
	}
	if defaults.SortBy == "" {
		defaults.SortBy = "created_at"
	}
	if defaults.SortOrder == "" {
		defaults.SortOrder = SortDesc
	}
	if defaults.SearchField == "" {
		defaults.SearchField = SearchAllFields
	}
	return &View[T]{
		fetch:    fetch,
		logger:   logger.With(slog.String("component", "listview")),
		onChange: opts.OnChange,
		defaults: defaults,
		query:    defaults,
	}
}

// State returns a snapshot of the view for rendering.
func (v *View[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := make([]T, len(v.rows))
	copy(rows, v.rows)
	indicators := make([]Indicator, len(v.indicators))
	copy(indicators, v.indicators)
	return State[T]{
		Rows:         rows,
		Query:        v.query,
		Meta:         v.meta,
		Loading:      v.loading,
		ErrorMessage: v.errMsg,
		Indicators:   indicators,
	}
}

// Load performs the initial fetch for the mounted defaults.
func (v *View[T]) Load(ctx context.Context) error {
	return v.reload(ctx)
}

// Refresh re-runs the current query unchanged. This is the authoritative
// recovery path after optimistic local mutations.
func (v *View[T]) Refresh(ctx context.Context) error {
	return v.reload(ctx)
}

// Search sets the free-text search and fetches. An empty text clears the
// search and its indicator.
func (v *View[T]) Search(ctx context.Context, text string) error {
	v.mu.Lock()
	v.query.Search = text
	v.query.Page = 1
	v.syncSearchIndicator()
	v.mu.Unlock()
	return v.reload(ctx)
}

// SetSearchField changes which field the search text is scoped to.
func (v *View[T]) SetSearchField(ctx context.Context, field string) error {
	v.mu.Lock()
	if field == "" {
		field = v.defaults.SearchField
	}
	v.query.SearchField = field
	v.query.Page = 1
	v.syncSearchIndicator()
	v.mu.Unlock()
	return v.reload(ctx)
}

// ToggleSort applies the column-header click semantics: a column that is not
// the current sort key becomes the key ascending; clicking the current key
// flips the direction.
func (v *View[T]) ToggleSort(ctx context.Context, field string) error {
	v.mu.Lock()
	if v.query.SortBy == field {
		if v.query.SortOrder == SortAsc {
			v.query.SortOrder = SortDesc
		} else {
			v.query.SortOrder = SortAsc
		}
	} else {
		v.query.SortBy = field
		v.query.SortOrder = SortAsc
	}
	v.query.Page = 1
	v.syncSortIndicator()
	v.mu.Unlock()
	return v.reload(ctx)
}

// SetFilter applies the single categorical filter. Setting a new key
// replaces the previous filter and its indicator.
func (v *View[T]) SetFilter(ctx context.Context, key, label, value string) error {
	v.mu.Lock()
	if v.query.FilterKey != "" && v.query.FilterKey != key {
		v.removeIndicator(v.query.FilterKey)
	}
	v.query.FilterKey = key
	v.query.FilterValue = value
	v.query.Page = 1
	if value == "" {
		v.query.FilterKey = ""
		v.removeIndicator(key)
	} else {
		filterKey := key
		v.upsertIndicator(Indicator{
			Key:   key,
			Label: label,
			Value: value,
			Remove: func(ctx context.Context) error {
				return v.ClearFilter(ctx, filterKey)
			},
		})
	}
	v.mu.Unlock()
	return v.reload(ctx)
}

// ClearFilter removes the categorical filter if it matches key.
func (v *View[T]) ClearFilter(ctx context.Context, key string) error {
	v.mu.Lock()
	if v.query.FilterKey == key {
		v.query.FilterKey = ""
		v.query.FilterValue = ""
		v.query.Page = 1
	}
	v.removeIndicator(key)
	v.mu.Unlock()
	return v.reload(ctx)
}

// ChangePage moves to a 1-based page. Out-of-range pages are not defended
// against here; callers clamp via HasNextPage/HasPrevPage before acting.
func (v *View[T]) ChangePage(ctx context.Context, page int) error {
	v.mu.Lock()
	if page < 1 {
		page = 1
	}
	v.query.Page = page
	v.mu.Unlock()
	return v.reload(ctx)
}

// ClearFilters resets every piece of query state to its mount default and
// empties the indicator ledger in one atomic step, then fetches once.
func (v *View[T]) ClearFilters(ctx context.Context) error {
	v.mu.Lock()
	v.query = v.defaults
	v.indicators = nil
	v.mu.Unlock()
	return v.reload(ctx)
}

// DismissError clears the retained error message without fetching.
func (v *View[T]) DismissError() {
	v.mu.Lock()
	v.errMsg = ""
	v.mu.Unlock()
	v.notify()
}

// reload runs one fetch cycle: loading -> (idle | error). A monotonic
// generation counter discards responses that lost the race against a newer
// request, so the last *issued* request wins the screen.
func (v *View[T]) reload(ctx context.Context) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	q := v.query
	v.mu.Unlock()
	v.notify()

	page, err := v.fetch(ctx, q)

	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		v.logger.DebugContext(ctx, "stale response discarded", slog.Uint64("generation", gen))
		return nil
	}
	v.loading = false
	if err != nil {
		// keep the previous rows on screen
		v.errMsg = err.Error()
		v.mu.Unlock()
		v.logger.WarnContext(ctx, "fetch failed", slog.String("error", err.Error()))
		v.notify()
		return err
	}
	v.errMsg = ""
	v.rows = page.Items
	v.meta = Meta{
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		HasNextPage: page.HasNextPage,
		HasPrevPage: page.HasPrevPage,
	}
	v.mu.Unlock()
	v.notify()
	return nil
}

func (v *View[T]) notify() {
	if v.onChange != nil {
		v.onChange()
	}
}
