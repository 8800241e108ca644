package cart

import "fmt"

// Reduce applies a to items and returns the new item list. It never mutates
// the input. Actions naming a product that is not in the cart leave the list
// unchanged.
func Reduce(items []CartItem, a Action) ([]CartItem, error) {
	next := cloneItems(items)

	switch a.Type {
	case ActionAdd:
		// Quantity only seeds a new line. An existing line grows by one.
		if i := indexOf(next, a.Product.ID); i >= 0 {
			next[i].Quantity++
			next[i].Selected = true
			return next, nil
		}
		return append(next, CartItem{Product: a.Product.Clone(), Quantity: max(1, a.Quantity), Selected: true}), nil

	case ActionUpdateQuantity:
		if i := indexOf(next, a.ProductID); i >= 0 {
			next[i].Quantity = max(1, next[i].Quantity+a.Delta)
		}
		return next, nil

	case ActionRemove:
		if i := indexOf(next, a.ProductID); i >= 0 {
			next = append(next[:i], next[i+1:]...)
		}
		return next, nil

	case ActionToggleSelection:
		if i := indexOf(next, a.ProductID); i >= 0 {
			next[i].Selected = !next[i].Selected
		}
		return next, nil

	case ActionSelectAll:
		for i := range next {
			next[i].Selected = a.Selected
		}
		return next, nil

	case ActionClearSelected:
		kept := next[:0]
		for _, it := range next {
			if !it.Selected {
				kept = append(kept, it)
			}
		}
		return kept, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

func indexOf(items []CartItem, productID string) int {
	for i, it := range items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

func cloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
