package service

import "sort"

// SortItem is a bookmark as currently displayed: its ID and the sort order
// stored for it right now. Items arrive in display order, top first.
type SortItem struct {
	ID        int64 `json:"id"`
	SortOrder int64 `json:"sort_order"`
}

// OrderUpdate is a single (bookmark, sort order) write
type OrderUpdate struct {
	ID        int64 `json:"id"`
	SortOrder int64 `json:"sort_order"`
}

// ReconcileSortRequest carries a drag-and-drop result. Filtered marks that
// the displayed list was a filtered subset, so positions between the shown
// items may be occupied by hidden bookmarks.
type ReconcileSortRequest struct {
	Items    []SortItem `json:"items" validate:"required"`
	Filtered bool       `json:"filtered"`
}

// ComputeSortOrders turns a displayed arrangement into the minimal set of
// sort-order writes that persist it. Bookmarks are listed by sort order
// descending, so the first displayed item must end up with the largest
// value.
//
// For a full (unfiltered) list fresh orders are assigned from the top:
// max+n, max+n-1, ... where max is the highest order among the items, or
// storeMax when that is larger (the displayed list may be a partial page, so
// rows outside it must stay below the new orders). For a filtered list the
// existing orders are reused as a pool, handed back out in descending order,
// so hidden bookmarks keep their relative positions; storeMax is ignored. A
// degenerate pool where every value is equal cannot express an order, so
// distinct values are synthesized above it.
//
// Only items whose stored order differs from the target are returned.
func ComputeSortOrders(items []SortItem, filtered bool, storeMax int64) []OrderUpdate {
	n := len(items)
	if n == 0 {
		return []OrderUpdate{}
	}

	targets := make([]int64, n)
	if filtered {
		pool := make([]int64, n)
		for i, item := range items {
			pool[i] = item.SortOrder
		}
		sort.Slice(pool, func(i, j int) bool { return pool[i] > pool[j] })

		if pool[0] == pool[n-1] {
			base := pool[0]
			for i := range pool {
				pool[i] = base + int64(n-1-i)
			}
		}
		copy(targets, pool)
	} else {
		max := storeMax
		for _, item := range items {
			if item.SortOrder > max {
				max = item.SortOrder
			}
		}
		for i := range items {
			targets[i] = max + int64(n-i)
		}
	}

	updates := []OrderUpdate{}
	for i, item := range items {
		if item.SortOrder != targets[i] {
			updates = append(updates, OrderUpdate{ID: item.ID, SortOrder: targets[i]})
		}
	}
	return updates
}
