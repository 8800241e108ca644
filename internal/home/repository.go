package home

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Visited(ctx context.Context, namespace string) (bool, error)
	MarkVisited(ctx context.Context, namespace string) error
	ResetVisited(ctx context.Context, namespace string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Visited(ctx context.Context, namespace string) (bool, error) {
	var visited bool
	_, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyHomeVisited, &visited)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted home visit flag", zap.Error(err))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFailedLoadVisit, err)
	}
	return visited, nil
}

func (r *repository) MarkVisited(ctx context.Context, namespace string) error {
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyHomeVisited, true); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveVisit, err)
	}
	return nil
}

func (r *repository) ResetVisited(ctx context.Context, namespace string) error {
	if err := r.store.Delete(ctx, namespace, storage.KeyHomeVisited); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveVisit, err)
	}
	return nil
}
