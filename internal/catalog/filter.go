package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PriceUnbounded is the max-price slider value that disables the upper bound.
const PriceUnbounded int64 = 200000

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.TrimSpace(s)); k {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
}

// Criteria is the full filter panel state. The zero value matches every
// product in catalog order.
type Criteria struct {
	Query       string
	Category    string
	MinPrice    int64
	MaxPrice    int64 // <= 0 or >= PriceUnbounded disables the bound
	Brands      []string
	MinRating   float64
	MinDiscount int
	AssuredOnly bool
	Sort        SortKey
}

func (c Criteria) priceBounded() bool {
	return c.MaxPrice > 0 && c.MaxPrice < PriceUnbounded
}

// Matches reports whether p passes every predicate of c.
func (c Criteria) Matches(p Product) bool {
	if !matchesQuery(p, c.Query) {
		return false
	}
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if p.Price < c.MinPrice {
		return false
	}
	if c.priceBounded() && p.Price > c.MaxPrice {
		return false
	}
	if len(c.Brands) > 0 && !contains(c.Brands, p.Brand) {
		return false
	}
	if p.Rating < c.MinRating {
		return false
	}
	if DiscountPercent(p) < c.MinDiscount {
		return false
	}
	if c.AssuredOnly && !p.Assured {
		return false
	}
	return true
}

// Filter returns the products matching c, reordered by c.Sort. The input
// slice is not modified. Sorting is stable so equal keys keep catalog order.
func Filter(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out
}

// AvailableBrands lists the distinct brands, alphabetically, among products
// matching the query and category. It drives the brand facet of the filter
// panel, which is why the other predicates are ignored.
func AvailableBrands(products []Product, query, category string) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		seen[p.Brand] = struct{}{}
	}

	brands := make([]string, 0, len(seen))
	for b := range seen {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

// DiscountPercent reads the leading integer of the discount label
// ("35% OFF" -> 35). Products without a parsable label count as 0.
func DiscountPercent(p Product) int {
	label := strings.TrimSpace(p.Discount)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}

func matchesQuery(p Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
