package catalog

import (
	"strings"

	"go-catalog-api/internal/model"
)

// Group is one category section of a projected catalog view.
type Group struct {
	Category string          `json:"categoria"`
	Products []model.Product `json:"productos"`
}

// Categories returns the distinct category names in first-observed order
// while scanning products top to bottom. This is the observed set fed into
// Reconcile.
func Categories(products []model.Product) []string {
	seen := make(map[string]bool, len(products))
	cats := make([]string, 0, len(products))
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Project maps products into the grouped, ordered, filtered list the views
// render. Unavailable products are dropped unless includeUnavailable is set;
// filterText matches name, billing code or category as a case-insensitive
// substring. Groups come out in the given order; categories missing from the
// order (data drift before reconciliation has run) are appended at the end in
// first-encountered order.
//
// Project is pure: same inputs, same output, and neither products nor order
// is mutated.
func Project(products []model.Product, order []string, filterText string, includeUnavailable bool) []Group {
	filter := strings.ToLower(strings.TrimSpace(filterText))

	grouped := make(map[string][]model.Product)
	firstSeen := make([]string, 0, len(order))
	for _, p := range products {
		if !includeUnavailable && !p.IsAvailable() {
			continue
		}
		if filter != "" && !matches(p, filter) {
			continue
		}
		if _, ok := grouped[p.Category]; !ok {
			firstSeen = append(firstSeen, p.Category)
		}
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	sorted := make([]string, 0, len(grouped))
	emitted := make(map[string]bool, len(grouped))
	for _, cat := range order {
		if _, ok := grouped[cat]; ok && !emitted[cat] {
			sorted = append(sorted, cat)
			emitted[cat] = true
		}
	}
	// Fallback: categories with products but not in the persisted order.
	for _, cat := range firstSeen {
		if !emitted[cat] {
			sorted = append(sorted, cat)
			emitted[cat] = true
		}
	}

	groups := make([]Group, 0, len(sorted))
	for _, cat := range sorted {
		groups = append(groups, Group{Category: cat, Products: grouped[cat]})
	}
	return groups
}

func matches(p model.Product, lowerFilter string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerFilter) ||
		strings.Contains(strings.ToLower(p.BillingCode), lowerFilter) ||
		strings.Contains(strings.ToLower(p.Category), lowerFilter)
}
