package cart

// ToCart builds the rendered cart from the stored lines.
func ToCart(items []CartItem) *Cart {
	if items == nil {
		items = []CartItem{}
	}
	return &Cart{
		Items:  items,
		Totals: ComputeTotals(items),
	}
}
