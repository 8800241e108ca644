package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWishlist_Toggle(t *testing.T) {
	var w Wishlist

	w, added := w.Toggle("1")
	assert.True(t, added)
	w, _ = w.Toggle("2")
	assert.Equal(t, Wishlist{"1", "2"}, w)

	back, added := w.Toggle("1")
	assert.False(t, added)
	assert.Equal(t, Wishlist{"2"}, back)

	// toggling twice is the identity
	again, _ := back.Toggle("1")
	again, _ = again.Toggle("1")
	assert.Equal(t, back, again)

	// the receiver is never modified
	assert.Equal(t, Wishlist{"1", "2"}, w)
}

func TestWishlist_Without(t *testing.T) {
	w := Wishlist{"1", "2", "3"}

	assert.Equal(t, Wishlist{"1", "3"}, w.Without("2"))
	assert.Equal(t, Wishlist{"1", "2", "3"}, w.Without("9"))
	assert.True(t, w.Contains("3"))
}
