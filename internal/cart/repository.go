package cart

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Load(ctx context.Context, namespace string) ([]CartItem, error)
	Save(ctx context.Context, namespace string, items []CartItem) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// Load returns the persisted lines. A missing or unreadable cart is an empty
// cart.
func (r *repository) Load(ctx context.Context, namespace string) ([]CartItem, error) {
	var items []CartItem

	_, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyCart, &items)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted cart",
			zap.String("layer", "repository"),
			zap.String("method", "Load"),
			zap.Error(err),
		)
		return []CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCart, err)
	}

	if items == nil {
		items = []CartItem{}
	}
	return items, nil
}

func (r *repository) Save(ctx context.Context, namespace string, items []CartItem) error {
	if items == nil {
		items = []CartItem{}
	}
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyCart, items); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCart, err)
	}
	return nil
}
