package order

import (
	"testing"

	"shopswift-be/internal/cart"

	"github.com/stretchr/testify/assert"
)

func history() []Order {
	return []Order{
		{ID: "OD000000003", Status: StatusProcessing, Items: []cart.CartItem{item("1", "Apple Pro Smartphone", 100, 1)}},
		{ID: "OD000000002", Status: StatusDelivered, Items: []cart.CartItem{item("2", "Nike Classic Apparel", 100, 1)}},
		{ID: "OD000000001", Status: StatusCancelled, Items: []cart.CartItem{item("3", "Sony Max Electronic", 100, 1)}},
	}
}

func orderIDs(orders []Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"OD000000003", "OD000000002", "OD000000001"}},
		{"by item name", Filter{Query: "apparel"}, []string{"OD000000002"}},
		{"by order id", Filter{Query: "od000000001"}, []string{"OD000000001"}},
		{"status union", Filter{Statuses: []Status{StatusProcessing, StatusCancelled}}, []string{"OD000000003", "OD000000001"}},
		{"query and status", Filter{Query: "sony", Statuses: []Status{StatusDelivered}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderIDs(Apply(history(), tt.filter)))
		})
	}
}
