package order

import (
	"time"

	"shopswift-be/internal/address"
	"shopswift-be/internal/cart"
	"shopswift-be/internal/utils"
)

type Order struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Items         []cart.CartItem `json:"items"`
	Subtotal      int64           `json:"subtotal"`
	Savings       int64           `json:"savings"`
	Shipping      int64           `json:"shipping"`
	Total         int64           `json:"total"`
	Status        Status          `json:"status"`
	Address       address.Address `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentRef    string          `json:"paymentRef,omitempty"`
	CancelReason  string          `json:"cancelReason,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type CreateOrderParams struct {
	Items         []cart.CartItem
	Totals        cart.Totals
	Address       address.Address
	PaymentMethod string
	PaymentRef    string
}

// New builds a Processing order. Items are deep-copied so later cart changes
// never reach the order.
func New(params CreateOrderParams, now time.Time) Order {
	items := make([]cart.CartItem, len(params.Items))
	for i, it := range params.Items {
		items[i] = it.Clone()
	}

	return Order{
		ID:            utils.GenerateOrderID(),
		Date:          now,
		Items:         items,
		Subtotal:      params.Totals.Subtotal,
		Savings:       params.Totals.Savings,
		Shipping:      params.Totals.Shipping,
		Total:         params.Totals.Total,
		Status:        StatusProcessing,
		Address:       params.Address,
		PaymentMethod: params.PaymentMethod,
		PaymentRef:    params.PaymentRef,
		UpdatedAt:     now,
	}
}

// Clone deep-copies the order.
func (o Order) Clone() Order {
	c := o
	c.Items = make([]cart.CartItem, len(o.Items))
	for i, it := range o.Items {
		c.Items[i] = it.Clone()
	}
	return c
}

// CancelReasons is the fixed list a customer picks from.
var CancelReasons = []string{
	"Price decreased for this item",
	"Purchased by mistake",
	"Expected delivery time is too long",
	"Item not required anymore",
	"Found a better alternative",
	"Other",
}

func IsCancelReason(reason string) bool {
	for _, r := range CancelReasons {
		if r == reason {
			return true
		}
	}
	return false
}
