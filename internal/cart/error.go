package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidProductID = errors.New("product id is required")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrUnknownAction    = errors.New("unknown cart action")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product is out of stock")

	// -- Storage Failures --
	ErrFailedLoadCart = errors.New("failed to load cart")
	ErrFailedSaveCart = errors.New("failed to save cart")
)
