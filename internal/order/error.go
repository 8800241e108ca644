package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
	ErrNoUser        = errors.New("no user is logged in")

	// -- Lifecycle --
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrNotCancellable      = errors.New("only processing orders can be cancelled")
	ErrInvalidCancelReason = errors.New("a cancellation reason from the list is required")
	ErrUnknownStatus       = errors.New("unknown order status")

	// -- Storage Failures --
	ErrFailedSaveOrders = errors.New("failed to save orders")
)
