package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func line(id string, price int64, oldPrice *int64, qty int, selected bool) CartItem {
	p := product(id, price)
	p.OldPrice = oldPrice
	return CartItem{Product: p, Quantity: qty, Selected: selected}
}

func i64(v int64) *int64 { return &v }

func TestComputeTotals(t *testing.T) {
	t.Run("OnlySelectedLinesCount", func(t *testing.T) {
		items := []CartItem{
			line("a", 100, nil, 2, true),
			line("b", 50, nil, 1, false),
		}

		got := ComputeTotals(items)

		assert.Equal(t, int64(200), got.CurrentTotal)
		assert.Equal(t, int64(40), got.Shipping)
		assert.Equal(t, int64(240), got.Total)
		assert.Equal(t, 3, got.ItemCount)
		assert.Equal(t, 1, got.SelectedCount)
	})

	t.Run("SubtotalUsesOldPrice", func(t *testing.T) {
		items := []CartItem{
			line("a", 800, i64(1000), 2, true),
			line("b", 300, nil, 1, true),
		}

		got := ComputeTotals(items)

		assert.Equal(t, int64(2300), got.Subtotal)
		assert.Equal(t, int64(1900), got.CurrentTotal)
		assert.Equal(t, int64(400), got.Savings)
		assert.Equal(t, int64(0), got.Shipping)
		assert.Equal(t, int64(1900), got.Total)
	})

	t.Run("NothingSelected", func(t *testing.T) {
		got := ComputeTotals([]CartItem{line("a", 100, nil, 1, false)})

		assert.Equal(t, int64(0), got.CurrentTotal)
		assert.Equal(t, int64(0), got.Shipping)
		assert.Equal(t, int64(0), got.Total)
	})
}

func TestShippingFor(t *testing.T) {
	tests := []struct {
		total int64
		want  int64
	}{
		{0, 0},
		{1, 40},
		{500, 40},
		{501, 0},
		{10000, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShippingFor(tt.total), "total %d", tt.total)
	}
}

func TestSelectedItems(t *testing.T) {
	items := []CartItem{
		line("a", 100, i64(150), 1, true),
		line("b", 100, nil, 1, false),
	}

	got := SelectedItems(items)
	assert.Len(t, got, 1)

	*got[0].OldPrice = 1
	assert.Equal(t, int64(150), *items[0].OldPrice)
}

func TestToCart(t *testing.T) {
	c := ToCart(nil)
	assert.NotNil(t, c.Items)
	assert.Equal(t, Totals{}, c.Totals)
}
