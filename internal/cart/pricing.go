package cart

const (
	FreeShippingAbove int64 = 500
	ShippingFee       int64 = 40
)

// ComputeTotals prices the selected lines. Subtotal uses the list price
// (old price when present), CurrentTotal the selling price. Shipping is free
// above FreeShippingAbove and when nothing is selected.
func ComputeTotals(items []CartItem) Totals {
	var t Totals

	for _, it := range items {
		t.ItemCount += it.Quantity
		if !it.Selected {
			continue
		}
		t.SelectedCount++
		t.Subtotal += it.ListPrice() * int64(it.Quantity)
		t.CurrentTotal += it.LineTotal()
	}

	t.Savings = t.Subtotal - t.CurrentTotal
	t.Shipping = ShippingFor(t.CurrentTotal)
	t.Total = t.CurrentTotal + t.Shipping
	return t
}

func ShippingFor(currentTotal int64) int64 {
	if currentTotal == 0 || currentTotal > FreeShippingAbove {
		return 0
	}
	return ShippingFee
}

// SelectedItems returns deep copies of the selected lines.
func SelectedItems(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		if it.Selected {
			out = append(out, it.Clone())
		}
	}
	return out
}
