package compare

import "shopswift-be/internal/catalog"

const MaxItems = 4

// Row is one spec key across the compared products. Values line up with
// Comparison.Products; a product without the key has an empty value.
type Row struct {
	Key       string   `json:"key"`
	Values    []string `json:"values"`
	Different bool     `json:"different"`
}

type Comparison struct {
	Products []catalog.Product `json:"products"`
	Rows     []Row             `json:"rows"`
}

// Build flattens every product's spec groups into one table. Keys keep the
// order in which they are first seen.
func Build(products []catalog.Product) Comparison {
	var keys []string
	seen := make(map[string]bool)
	flat := make([]map[string]string, len(products))

	for i, p := range products {
		flat[i] = make(map[string]string)
		for _, g := range p.SpecGroups {
			for _, s := range g.Specs {
				flat[i][s.Key] = s.Value
				if !seen[s.Key] {
					seen[s.Key] = true
					keys = append(keys, s.Key)
				}
			}
		}
	}

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		row := Row{Key: k, Values: make([]string, len(products))}
		for i := range products {
			row.Values[i] = flat[i][k]
			if i > 0 && row.Values[i] != row.Values[0] {
				row.Different = true
			}
		}
		rows = append(rows, row)
	}

	if products == nil {
		products = []catalog.Product{}
	}
	return Comparison{Products: products, Rows: rows}
}
