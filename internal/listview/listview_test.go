// internal/listview/listview_test.go
package listview_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmz/stockdesk/internal/core/ports"
	"github.com/haroldmz/stockdesk/internal/listview"
	"github.com/haroldmz/stockdesk/test/helpers"
)

type row struct {
	ID   int64
	Name string
}

// stubFetcher records every query the view issues and plays back canned pages.
type stubFetcher struct {
	mu      sync.Mutex
	queries []listview.Query
	page    *ports.Page[row]
	err     error
}

func (f *stubFetcher) fetch(ctx context.Context, q listview.Query) (*ports.Page[row], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func (f *stubFetcher) lastQuery(t *testing.T) listview.Query {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.queries)
	return f.queries[len(f.queries)-1]
}

func pageOf(rows ...row) *ports.Page[row] {
	return ports.NewPage(rows, int64(len(rows)), 1, 10)
}

func newTestView(t *testing.T, fetcher *stubFetcher, opts listview.Options) *listview.View[row] {
	t.Helper()
	return listview.New(fetcher.fetch, opts, helpers.TestLogger())
}

func TestView_DefaultsOnMount(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{})

	require.NoError(t, view.Load(context.Background()))

	q := fetcher.lastQuery(t)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, listview.SortDesc, q.SortOrder)
	assert.Equal(t, listview.SearchAllFields, q.SearchField)
	assert.Empty(t, q.Search)
}

func TestView_ToggleSort(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	// a new column starts ascending
	require.NoError(t, view.ToggleSort(ctx, "name"))
	q := fetcher.lastQuery(t)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, listview.SortAsc, q.SortOrder)

	// the same column flips direction
	require.NoError(t, view.ToggleSort(ctx, "name"))
	q = fetcher.lastQuery(t)
	assert.Equal(t, listview.SortDesc, q.SortOrder)

	require.NoError(t, view.ToggleSort(ctx, "name"))
	q = fetcher.lastQuery(t)
	assert.Equal(t, listview.SortAsc, q.SortOrder)

	// switching to another column resets to ascending
	require.NoError(t, view.ToggleSort(ctx, "email"))
	q = fetcher.lastQuery(t)
	assert.Equal(t, "email", q.SortBy)
	assert.Equal(t, listview.SortAsc, q.SortOrder)
}

func TestView_QueryChangesResetToFirstPage(t *testing.T) {
	fetcher := &stubFetcher{page: ports.NewPage([]row{{ID: 1}}, 55, 1, 10)}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	require.NoError(t, view.ChangePage(ctx, 4))
	assert.Equal(t, 4, fetcher.lastQuery(t).Page)

	tests := []struct {
		name   string
		mutate func() error
	}{
		{name: "search", mutate: func() error { return view.Search(ctx, "maria") }},
		{name: "search_field", mutate: func() error { return view.SetSearchField(ctx, "email") }},
		{name: "sort", mutate: func() error { return view.ToggleSort(ctx, "name") }},
		{name: "filter", mutate: func() error { return view.SetFilter(ctx, "status", "Status", "active") }},
		{name: "clear_filter", mutate: func() error { return view.ClearFilter(ctx, "status") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, view.ChangePage(ctx, 4))
			require.NoError(t, tt.mutate())
			assert.Equal(t, 1, fetcher.lastQuery(t).Page)
		})
	}
}

func TestView_SearchIndicatorLifecycle(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	require.NoError(t, view.Search(ctx, "maria"))
	st := view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "Search", st.Indicators[0].Label)
	assert.Equal(t, "maria", st.Indicators[0].Value)

	// scoping the search annotates the chip with the field
	require.NoError(t, view.SetSearchField(ctx, "email"))
	st = view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "email: maria", st.Indicators[0].Value)

	// the chip's removal callback clears exactly the search
	require.NoError(t, st.Indicators[0].Remove(ctx))
	st = view.State()
	assert.Empty(t, st.Indicators)
	assert.Empty(t, st.Query.Search)
	assert.Equal(t, "email", st.Query.SearchField, "clearing the search keeps the field scope")
}

func TestView_FilterIndicatorLedger(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	require.NoError(t, view.SetFilter(ctx, "status", "Status", "active"))
	st := view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "status", st.Indicators[0].Key)

	// same key upserts in place instead of appending
	require.NoError(t, view.SetFilter(ctx, "status", "Status", "inactive"))
	st = view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "inactive", st.Indicators[0].Value)

	// a different key replaces the single categorical filter and its chip
	require.NoError(t, view.SetFilter(ctx, "role", "Role", "admin"))
	st = view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "role", st.Indicators[0].Key)
	assert.Equal(t, "role", st.Query.FilterKey)

	// an empty value clears the filter and its chip
	require.NoError(t, view.SetFilter(ctx, "role", "Role", ""))
	st = view.State()
	assert.Empty(t, st.Indicators)
	assert.Empty(t, st.Query.FilterKey)
}

func TestView_SortIndicatorOnlyWhenNonDefault(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	require.NoError(t, view.ToggleSort(ctx, "name"))
	st := view.State()
	require.Len(t, st.Indicators, 1)
	assert.Equal(t, "name asc", st.Indicators[0].Value)

	// removing the chip restores the default sort
	require.NoError(t, st.Indicators[0].Remove(ctx))
	st = view.State()
	assert.Empty(t, st.Indicators)
	assert.Equal(t, "created_at", st.Query.SortBy)
	assert.Equal(t, listview.SortDesc, st.Query.SortOrder)

	// toggling back onto the default removes the chip again
	require.NoError(t, view.ToggleSort(ctx, "created_at"))
	require.NoError(t, view.ToggleSort(ctx, "created_at"))
	st = view.State()
	assert.Empty(t, st.Indicators, "the default sort shows no chip")
}

func TestView_ClearFiltersRestoresDefaultsAtomically(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf()}
	view := newTestView(t, fetcher, listview.Options{PageSize: 25, SortBy: "name", SortOrder: listview.SortAsc})
	ctx := context.Background()

	require.NoError(t, view.Search(ctx, "maria"))
	require.NoError(t, view.ToggleSort(ctx, "email"))
	require.NoError(t, view.SetFilter(ctx, "status", "Status", "active"))
	require.NoError(t, view.ChangePage(ctx, 2))
	require.NotEmpty(t, view.State().Indicators)

	callsBefore := len(fetcher.queries)
	require.NoError(t, view.ClearFilters(ctx))

	st := view.State()
	assert.Empty(t, st.Indicators)
	assert.Empty(t, st.Query.Search)
	assert.Empty(t, st.Query.FilterKey)
	assert.Equal(t, "name", st.Query.SortBy)
	assert.Equal(t, listview.SortAsc, st.Query.SortOrder)
	assert.Equal(t, 1, st.Query.Page)
	assert.Equal(t, 25, st.Query.PageSize)
	assert.Len(t, fetcher.queries, callsBefore+1, "the reset fetches exactly once")
}

func TestView_ErrorRetainsPreviousRows(t *testing.T) {
	fetcher := &stubFetcher{page: pageOf(row{ID: 1, Name: "Maria"})}
	view := newTestView(t, fetcher, listview.Options{})
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))
	require.Len(t, view.State().Rows, 1)

	fetcher.err = errors.New("list customers failed: the operation could not be completed")
	require.Error(t, view.Refresh(ctx))

	st := view.State()
	assert.Len(t, st.Rows, 1, "stale rows stay on screen through a failed fetch")
	assert.Equal(t, "Maria", st.Rows[0].Name)
	assert.NotEmpty(t, st.ErrorMessage)
	assert.False(t, st.Loading)

	// dismissing hides the message without fetching
	callsBefore := len(fetcher.queries)
	view.DismissError()
	assert.Empty(t, view.State().ErrorMessage)
	assert.Len(t, fetcher.queries, callsBefore)

	// the next successful fetch clears the error on its own
	fetcher.err = nil
	require.NoError(t, view.Refresh(ctx))
	assert.Empty(t, view.State().ErrorMessage)
}

func TestView_StaleResponseIsDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	fetch := func(ctx context.Context, q listview.Query) (*ports.Page[row], error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(slowStarted)
			<-release
			return pageOf(row{ID: 1, Name: "stale"}), nil
		}
		return pageOf(row{ID: 2, Name: "fresh"}), nil
	}

	view := listview.New(fetch, listview.Options{}, helpers.TestLogger())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- view.Load(ctx) }()
	<-slowStarted

	// a newer request supersedes the in-flight one
	require.NoError(t, view.Refresh(ctx))
	close(release)
	require.NoError(t, <-done)

	st := view.State()
	require.Len(t, st.Rows, 1)
	assert.Equal(t, "fresh", st.Rows[0].Name, "the last issued request wins the screen")
}

func TestView_OptimisticMutations(t *testing.T) {
	fetcher := &stubFetcher{page: ports.NewPage([]row{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, 12, 1, 10)}
	view := newTestView(t, fetcher, listview.Options{})
	require.NoError(t, view.Load(context.Background()))

	view.ApplyCreated(row{ID: 3, Name: "C"})
	st := view.State()
	require.Len(t, st.Rows, 3)
	assert.Equal(t, int64(3), st.Rows[0].ID, "created rows are prepended")
	assert.Equal(t, int64(13), st.Meta.Total)

	view.ApplyUpdated(func(r row) bool { return r.ID == 2 }, row{ID: 2, Name: "B2"})
	st = view.State()
	assert.Equal(t, "B2", st.Rows[2].Name)

	// no match leaves the page untouched
	view.ApplyUpdated(func(r row) bool { return r.ID == 99 }, row{ID: 99})
	assert.Len(t, view.State().Rows, 3)

	view.ApplyRemoved(func(r row) bool { return r.ID == 1 })
	st = view.State()
	assert.Len(t, st.Rows, 2)
	assert.Equal(t, int64(12), st.Meta.Total)
}

func TestView_OnChangeNotifies(t *testing.T) {
	var mu sync.Mutex
	notified := 0
	fetcher := &stubFetcher{page: pageOf()}
	view := listview.New(fetcher.fetch, listview.Options{OnChange: func() {
		mu.Lock()
		notified++
		mu.Unlock()
	}}, helpers.TestLogger())

	require.NoError(t, view.Load(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, notified, "one loading transition plus one settle per fetch cycle")
}
