package wishlist

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Load(ctx context.Context, namespace string) (Wishlist, error)
	Save(ctx context.Context, namespace string, w Wishlist) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context, namespace string) (Wishlist, error) {
	var w Wishlist

	_, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyWishlist, &w)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted wishlist",
			zap.String("layer", "repository"),
			zap.String("method", "Wishlist.Load"),
			zap.Error(err),
		)
		return Wishlist{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadWishlist, err)
	}

	if w == nil {
		w = Wishlist{}
	}
	return w, nil
}

func (r *repository) Save(ctx context.Context, namespace string, w Wishlist) error {
	if w == nil {
		w = Wishlist{}
	}
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyWishlist, w); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveWishlist, err)
	}
	return nil
}
