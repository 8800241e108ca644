package wishlist

import "slices"

// Wishlist is an insertion-ordered set of product ids.
type Wishlist []string

func (w Wishlist) Contains(id string) bool {
	return slices.Contains(w, id)
}

// Toggle adds id when absent and removes it when present. It returns the new
// list and whether id is now in it.
func (w Wishlist) Toggle(id string) (Wishlist, bool) {
	if i := slices.Index(w, id); i >= 0 {
		return slices.Delete(slices.Clone(w), i, i+1), false
	}
	return append(slices.Clone(w), id), true
}

func (w Wishlist) Without(id string) Wishlist {
	return slices.DeleteFunc(slices.Clone(w), func(v string) bool { return v == id })
}
