package catalog

// Spec is one key/value row of a specification group. Groups keep their rows
// as a slice so the display order survives serialisation.
type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SpecGroup struct {
	Title string `json:"title"`
	Specs []Spec `json:"specs"`
}

type Product struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	SubCategory  string      `json:"subCategory"`
	Price        int64       `json:"price"`
	OldPrice     *int64      `json:"oldPrice,omitempty"`
	Discount     string      `json:"discount,omitempty"`
	Rating       float64     `json:"rating"`
	ReviewsCount int         `json:"reviewsCount"`
	Image        string      `json:"image"`
	Images       []string    `json:"images"`
	Description  string      `json:"description"`
	Brand        string      `json:"brand"`
	SpecGroups   []SpecGroup `json:"specGroups"`
	Highlights   []string    `json:"highlights"`
	Assured      bool        `json:"isAssured"`
	Stock        int         `json:"stock"`
	SellerName   string      `json:"sellerName"`
	SellerRating float64     `json:"sellerRating"`
	ReturnPolicy string      `json:"returnPolicy"`
}

// ListPrice is the pre-discount price, falling back to Price when the
// product carries no old price.
func (p Product) ListPrice() int64 {
	if p.OldPrice != nil {
		return *p.OldPrice
	}
	return p.Price
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// Clone returns a deep copy so snapshots held by carts and orders never alias
// catalog slices.
func (p Product) Clone() Product {
	c := p
	if p.OldPrice != nil {
		op := *p.OldPrice
		c.OldPrice = &op
	}
	c.Images = append([]string(nil), p.Images...)
	c.Highlights = append([]string(nil), p.Highlights...)
	if p.SpecGroups != nil {
		c.SpecGroups = make([]SpecGroup, len(p.SpecGroups))
		for i, g := range p.SpecGroups {
			c.SpecGroups[i] = SpecGroup{Title: g.Title, Specs: append([]Spec(nil), g.Specs...)}
		}
	}
	return c
}

type CategoryGroup struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

type Category struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Icon          string          `json:"icon" yaml:"icon"`
	Image         string          `json:"image" yaml:"image"`
	BudgetFilters []int64         `json:"budgetFilters" yaml:"budget_filters"`
	Brands        []string        `json:"brands" yaml:"brands"`
	Groups        []CategoryGroup `json:"groups" yaml:"groups"`
}
