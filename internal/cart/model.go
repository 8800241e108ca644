package cart

import "shopswift-be/internal/catalog"

// CartItem is a product snapshot taken when it was added, plus the line
// state. Quantity is always at least 1.
type CartItem struct {
	catalog.Product
	Quantity int  `json:"quantity"`
	Selected bool `json:"selected"`
}

// LineTotal is price × quantity.
func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Clone deep-copies the item so callers can keep it past the next mutation.
func (i CartItem) Clone() CartItem {
	c := i
	c.Product = i.Product.Clone()
	return c
}

type ActionType string

const (
	ActionAdd             ActionType = "add"
	ActionUpdateQuantity  ActionType = "update_quantity"
	ActionRemove          ActionType = "remove"
	ActionToggleSelection ActionType = "toggle_selection"
	ActionSelectAll       ActionType = "select_all"
	ActionClearSelected   ActionType = "clear_selected"
)

// Action is one cart transition. Only the fields relevant to Type are read:
// Product and Quantity for add, ProductID for the per-line actions, Delta for
// update_quantity and Selected for select_all.
type Action struct {
	Type      ActionType
	Product   catalog.Product
	Quantity  int
	ProductID string
	Delta     int
	Selected  bool
}

// Totals are derived from the items on every read and never stored.
type Totals struct {
	Subtotal      int64 `json:"subtotal"`
	CurrentTotal  int64 `json:"currentTotal"`
	Savings       int64 `json:"savings"`
	Shipping      int64 `json:"shipping"`
	Total         int64 `json:"total"`
	ItemCount     int   `json:"itemCount"`
	SelectedCount int   `json:"selectedCount"`
}

// Cart is what the storefront renders: the lines and their totals.
type Cart struct {
	Items  []CartItem `json:"items"`
	Totals Totals     `json:"totals"`
}
