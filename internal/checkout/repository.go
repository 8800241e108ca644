package checkout

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Load(ctx context.Context, namespace string) (*Session, error)
	Save(ctx context.Context, namespace string, s *Session) error
	Delete(ctx context.Context, namespace string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// Load returns ErrNoSession when checkout was never started or the stored
// session is unreadable.
func (r *repository) Load(ctx context.Context, namespace string) (*Session, error) {
	var s Session

	ok, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyCheckout, &s)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted checkout session",
			zap.String("layer", "repository"),
			zap.Error(err),
		)
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadSession, err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, namespace string, s *Session) error {
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyCheckout, s); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveSession, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, namespace string) error {
	if err := r.store.Delete(ctx, namespace, storage.KeyCheckout); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveSession, err)
	}
	return nil
}
