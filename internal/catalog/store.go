package catalog

// Store is the immutable, in-memory catalog. It is built once at start-up and
// is safe for concurrent readers.
type Store struct {
	products   []Product
	byID       map[string]int
	categories []Category
	catByID    map[string]int
}

func NewStore(products []Product, categories []Category) *Store {
	s := &Store{
		products:   make([]Product, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: append([]Category(nil), categories...),
		catByID:    make(map[string]int, len(categories)),
	}
	for i, p := range products {
		s.products[i] = p.Clone()
		s.byID[p.ID] = i
	}
	for i, c := range s.categories {
		s.catByID[c.ID] = i
	}
	return s
}

// NewGeneratedStore generates the catalog from the embedded seed tables.
func NewGeneratedStore(rng Rand) *Store {
	return NewStore(Generate(rng), defaultSeed.categories())
}

// All returns the products in catalog order. The slice is fresh; the products
// must be treated as read-only.
func (s *Store) All() []Product {
	return append([]Product(nil), s.products...)
}

func (s *Store) Len() int {
	return len(s.products)
}

// Get returns a deep copy of the product.
func (s *Store) Get(id string) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i].Clone(), true
}

// Lookup resolves ids in the given order, skipping unknown ones.
func (s *Store) Lookup(ids []string) []Product {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Categories() []Category {
	return append([]Category(nil), s.categories...)
}

func (s *Store) Category(id string) (Category, bool) {
	i, ok := s.catByID[id]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}
