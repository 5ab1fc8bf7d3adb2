// Package catalog holds the pure catalog logic shared by the admin, catalog
// and price-list surfaces: keeping the persisted category order in sync with
// the live products, and projecting products into grouped display lists.
// Nothing in here touches the database or the HTTP layer.
package catalog

// Reconcile aligns a persisted category order with the set of categories
// observed in the current products. New categories are appended at the end in
// first-observed order; categories that no longer exist are removed; the
// relative order of everything retained is preserved. The returned slice is
// always a fresh copy, inputs are never mutated.
//
// Running Reconcile again on its own output with the same observed set yields
// changed == false.
func Reconcile(order []string, observed []string) ([]string, bool) {
	known := make(map[string]bool, len(order))
	for _, cat := range order {
		known[cat] = true
	}

	merged := make([]string, 0, len(order)+len(observed))
	merged = append(merged, order...)

	changed := false
	for _, cat := range observed {
		if !known[cat] {
			merged = append(merged, cat)
			known[cat] = true
			changed = true
		}
	}

	// Drop categories that no longer have any product.
	live := make(map[string]bool, len(observed))
	for _, cat := range observed {
		live[cat] = true
	}

	result := merged[:0:0]
	for _, cat := range merged {
		if live[cat] {
			result = append(result, cat)
		} else {
			changed = true
		}
	}
	if result == nil {
		result = []string{}
	}
	return result, changed
}

// MoveAdjacent swaps category with its immediate neighbor: direction -1 moves
// it up, +1 moves it down. Moving past either end, or moving a category that
// is not in the order, is a no-op (changed == false). The input is never
// mutated.
func MoveAdjacent(order []string, category string, direction int) ([]string, bool) {
	if direction != -1 && direction != 1 {
		return order, false
	}

	index := -1
	for i, cat := range order {
		if cat == category {
			index = i
			break
		}
	}
	if index == -1 {
		return order, false
	}

	newIndex := index + direction
	if newIndex < 0 || newIndex >= len(order) {
		return order, false
	}

	result := make([]string, len(order))
	copy(result, order)
	result[index], result[newIndex] = result[newIndex], result[index]
	return result, true
}

// AppendIfAbsent adds category at the end of the order if it is not already
// present. Used when saving a product introduces a brand-new category.
func AppendIfAbsent(order []string, category string) ([]string, bool) {
	for _, cat := range order {
		if cat == category {
			return order, false
		}
	}
	result := make([]string, 0, len(order)+1)
	result = append(result, order...)
	result = append(result, category)
	return result, true
}
