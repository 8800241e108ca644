package user

import (
	"context"
	"errors"
	"fmt"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/order"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Repository interface {
	Find(ctx context.Context, namespace string) (*User, error)
	Save(ctx context.Context, namespace string, u *User) error
	Delete(ctx context.Context, namespace string) error

	Onboarded(ctx context.Context, namespace string) (bool, error)
	SetOnboarded(ctx context.Context, namespace string) error

	order.History
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// Find returns the session's user, or nil when nobody is logged in. A
// corrupted record counts as logged out.
func (r *repository) Find(ctx context.Context, namespace string) (*User, error) {
	var u User

	ok, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyUser, &u)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted user",
			zap.String("layer", "repository"),
			zap.String("method", "User.Find"),
			zap.Error(err),
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadUser, err)
	}
	if !ok {
		return nil, nil
	}

	if u.Orders == nil {
		u.Orders = []order.Order{}
	}
	return &u, nil
}

func (r *repository) Save(ctx context.Context, namespace string, u *User) error {
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyUser, u); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveUser, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, namespace string) error {
	if err := r.store.Delete(ctx, namespace, storage.KeyUser); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveUser, err)
	}
	return nil
}

func (r *repository) LoadOrders(ctx context.Context, namespace string) ([]order.Order, error) {
	u, err := r.Find(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, order.ErrNoUser
	}
	return u.Orders, nil
}

func (r *repository) SaveOrders(ctx context.Context, namespace string, orders []order.Order) error {
	u, err := r.Find(ctx, namespace)
	if err != nil {
		return err
	}
	if u == nil {
		return order.ErrNoUser
	}

	u.Orders = orders
	if err := r.Save(ctx, namespace, u); err != nil {
		return fmt.Errorf("%w: %v", order.ErrFailedSaveOrders, err)
	}
	return nil
}

func (r *repository) Onboarded(ctx context.Context, namespace string) (bool, error) {
	var done bool
	_, err := storage.LoadJSON(ctx, r.store, namespace, storage.KeyOnboarded, &done)
	if errors.Is(err, storage.ErrCorrupted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrFailedLoadUser, err)
	}
	return done, nil
}

func (r *repository) SetOnboarded(ctx context.Context, namespace string) error {
	if err := storage.SaveJSON(ctx, r.store, namespace, storage.KeyOnboarded, true); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveUser, err)
	}
	return nil
}
