package catalog

import (
	"fmt"
	"strings"
)

const maxProductSuggestions = 8

type SuggestionType string

const (
	SuggestionCategory SuggestionType = "category-scope"
	SuggestionProduct  SuggestionType = "product"
)

type Suggestion struct {
	Type     SuggestionType `json:"type"`
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Image    string         `json:"image"`
	Brand    string         `json:"brand"`
	Price    int64          `json:"price,omitempty"`
	Rating   float64        `json:"rating,omitempty"`
}

// Suggest returns "search in category" entries for every category whose name
// contains the query, followed by at most eight matching products.
func (s *Store) Suggest(query string) []Suggestion {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []Suggestion{}
	}
	q := strings.ToLower(trimmed)

	var out []Suggestion
	for _, c := range s.categories {
		if !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, Suggestion{
			Type:     SuggestionCategory,
			ID:       c.ID,
			Name:     fmt.Sprintf("Search for %q in %s", trimmed, c.Name),
			Category: c.ID,
			Image:    c.Image,
		})
	}

	n := 0
	for _, p := range s.products {
		if n == maxProductSuggestions {
			break
		}
		if !matchesQuery(p, q) {
			continue
		}
		out = append(out, Suggestion{
			Type:     SuggestionProduct,
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Image:    p.Image,
			Brand:    p.Brand,
			Price:    p.Price,
			Rating:   p.Rating,
		})
		n++
	}

	if out == nil {
		out = []Suggestion{}
	}
	return out
}
