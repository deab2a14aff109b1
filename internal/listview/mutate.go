// internal/listview/mutate.go
package listview

// Optimistic local mutations: after a create/update/delete round trip the
// affected row is spliced into or out of the in-memory page instead of
// re-fetching. This is best-effort latency cover — it can drift from server
// truth under concurrent edits, and Refresh remains the authoritative
// recovery path.

// ApplyCreated prepends the newly created row to the current page and bumps
// the total count.
func (v *View[T]) ApplyCreated(item T) {
	v.mu.Lock()
	v.rows = append([]T{item}, v.rows...)
	v.meta.Total++
	v.mu.Unlock()
	v.notify()
}

// ApplyUpdated replaces the first row matched by match with item. A row not
// on the current page is left alone.
func (v *View[T]) ApplyUpdated(match func(T) bool, item T) {
	v.mu.Lock()
	for i := range v.rows {
		if match(v.rows[i]) {
			v.rows[i] = item
			break
		}
	}
	v.mu.Unlock()
	v.notify()
}

// ApplyRemoved splices the first row matched by match out of the current page
// and decrements the total count.
func (v *View[T]) ApplyRemoved(match func(T) bool) {
	v.mu.Lock()
	for i := range v.rows {
		if match(v.rows[i]) {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			if v.meta.Total > 0 {
				v.meta.Total--
			}
			break
		}
	}
	v.mu.Unlock()
	v.notify()
}
