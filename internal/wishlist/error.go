package wishlist

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrFailedLoadWishlist = errors.New("failed to load wishlist")
	ErrFailedSaveWishlist = errors.New("failed to save wishlist")
)
