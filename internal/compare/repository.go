package compare

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Load(ctx context.Context, namespace string) ([]string, error)
	Save(ctx context.Context, namespace string, ids []string) error
	Clear(ctx context.Context, namespace string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context, namespace string) ([]string, error) {
	var ids []string

	_, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyCompare, &ids)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted comparison list", zap.Error(err))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadCompare, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *repository) Save(ctx context.Context, namespace string, ids []string) error {
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyCompare, ids); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCompare, err)
	}
	return nil
}

func (r *repository) Clear(ctx context.Context, namespace string) error {
	if err := r.store.Delete(ctx, namespace, storage.KeyCompare); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveCompare, err)
	}
	return nil
}
