package order

import (
	"slices"
	"strings"
)

// Filter narrows the order history. Query matches the order id or any item
// name, case-insensitively. Statuses are a union; empty means all.
type Filter struct {
	Query    string
	Statuses []Status
}

func (f Filter) Matches(o Order) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, o.Status) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(o.ID), q) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}
	return false
}

func Apply(orders []Order, f Filter) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}
