// Package storage is the persistence adapter of the storefront: a namespaced
// key-value store where every session owns one namespace.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("storage: key not found")
	ErrCorrupted      = errors.New("storage: malformed value")
	ErrEmptyNamespace = errors.New("storage: namespace is required")
)

// Persisted keys. A namespace holds at most one value per key.
const (
	KeyCart           = "cart"
	KeyWishlist       = "wishlist"
	KeyUser           = "user"
	KeyRecentSearches = "recent_searches"
	KeyCompare        = "compare"
	KeyCheckout       = "checkout"
	KeyOnboarded      = "onboarded"
	KeyLastPincode    = "last_pin"
	KeyHomeVisited    = "home_visited"
)

type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
}
