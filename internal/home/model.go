package home

import (
	"cmp"
	"slices"

	"shopswift-be/internal/catalog"
)

const (
	dealsLimit   = 12
	fashionLimit = 12
	gadgetsLimit = 6
)

// Feed is the landing page. FirstVisit tells the client to show its loading
// skeleton; it is true once per session until the feed is refreshed.
type Feed struct {
	FirstVisit bool               `json:"firstVisit"`
	Categories []catalog.Category `json:"categories"`
	Deals      []catalog.Product  `json:"deals"`
	Fashion    []catalog.Product  `json:"fashion"`
	Gadgets    []catalog.Product  `json:"gadgets"`
}

// BuildFeed picks the landing page rails from products:
// deals are the best rated assured products, fashion and gadgets follow
// catalog order.
func BuildFeed(products []catalog.Product, categories []catalog.Category) Feed {
	var deals, fashion, gadgets []catalog.Product

	for _, p := range products {
		if p.Assured {
			deals = append(deals, p)
		}
		if p.Category == "fashion" && len(fashion) < fashionLimit {
			fashion = append(fashion, p)
		}
		if (p.Category == "mobiles" || p.Category == "electronics") && len(gadgets) < gadgetsLimit {
			gadgets = append(gadgets, p)
		}
	}

	slices.SortStableFunc(deals, func(a, b catalog.Product) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	if len(deals) > dealsLimit {
		deals = deals[:dealsLimit]
	}

	return Feed{
		Categories: categories,
		Deals:      nonNil(deals),
		Fashion:    nonNil(fashion),
		Gadgets:    nonNil(gadgets),
	}
}

func nonNil(p []catalog.Product) []catalog.Product {
	if p == nil {
		return []catalog.Product{}
	}
	return p
}
