// internal/listview/indicators.go
package listview

import "context"

// Indicator is one removable filter chip. The ledger holds at most one
// indicator per category key; upserting an existing key replaces it in place
// so chip order stays stable across edits.
type Indicator struct {
	Key    string
	Label  string
	Value  string
	Remove func(ctx context.Context) error
}

const (
	indicatorSearch = "search"
	indicatorSort   = "sort"
)

// upsertIndicator replaces the indicator with the same key or appends a new
// one. Callers hold the view lock.
func (v *View[T]) upsertIndicator(in Indicator) {
	for i := range v.indicators {
		if v.indicators[i].Key == in.Key {
			v.indicators[i] = in
			return
		}
	}
	v.indicators = append(v.indicators, in)
}

// removeIndicator drops the indicator with the given key, if present.
// Callers hold the view lock.
func (v *View[T]) removeIndicator(key string) {
	for i := range v.indicators {
		if v.indicators[i].Key == key {
			v.indicators = append(v.indicators[:i], v.indicators[i+1:]...)
			return
		}
	}
}

// syncSearchIndicator mirrors the search state into the ledger: a non-empty
// search upserts the chip, clearing back to empty removes it. Callers hold
// the view lock.
func (v *View[T]) syncSearchIndicator() {
	if v.query.Search == "" {
		v.removeIndicator(indicatorSearch)
		return
	}
	value := v.query.Search
	if v.query.SearchField != v.defaults.SearchField {
		value = v.query.SearchField + ": " + value
	}
	v.upsertIndicator(Indicator{
		Key:   indicatorSearch,
		Label: "Search",
		Value: value,
		Remove: func(ctx context.Context) error {
			return v.Search(ctx, "")
		},
	})
}

// syncSortIndicator shows a chip only when the sort differs from the mount
// default; its removal resets exactly the sort state. Callers hold the view
// lock.
func (v *View[T]) syncSortIndicator() {
	if v.query.SortBy == v.defaults.SortBy && v.query.SortOrder == v.defaults.SortOrder {
		v.removeIndicator(indicatorSort)
		return
	}
	v.upsertIndicator(Indicator{
		Key:   indicatorSort,
		Label: "Sort",
		Value: v.query.SortBy + " " + string(v.query.SortOrder),
		Remove: func(ctx context.Context) error {
			return v.resetSort(ctx)
		},
	})
}

// resetSort restores the default sort and fetches.
func (v *View[T]) resetSort(ctx context.Context) error {
	v.mu.Lock()
	v.query.SortBy = v.defaults.SortBy
	v.query.SortOrder = v.defaults.SortOrder
	v.query.Page = 1
	v.removeIndicator(indicatorSort)
	v.mu.Unlock()
	return v.reload(ctx)
}
