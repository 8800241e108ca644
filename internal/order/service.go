package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

// History is where a session's orders live. Orders belong to the logged-in
// user, so both methods return ErrNoUser for guests.
type History interface {
	LoadOrders(ctx context.Context, namespace string) ([]Order, error)
	SaveOrders(ctx context.Context, namespace string, orders []Order) error
}

type Service interface {
	List(ctx context.Context, namespace string, f Filter) ([]Order, error)
	Get(ctx context.Context, namespace, orderID string) (*Order, error)
	Record(ctx context.Context, namespace string, o Order) (bool, error)
	Cancel(ctx context.Context, namespace, orderID, reason string) (*Order, error)
	Advance(ctx context.Context, namespace, orderID string, to Status) (*Order, error)
}

type service struct {
	history History
	now     func() time.Time
}

func NewService(history History) Service {
	return &service{history: history, now: time.Now}
}

// List returns the matching orders, newest first.
func (s *service) List(ctx context.Context, namespace string, f Filter) ([]Order, error) {
	orders, err := s.history.LoadOrders(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return Apply(orders, f), nil
}

func (s *service) Get(ctx context.Context, namespace, orderID string) (*Order, error) {
	orders, err := s.history.LoadOrders(ctx, namespace)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			found := o.Clone()
			return &found, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Record puts o at the head of the user's history. Guests have no history;
// Record reports false for them and keeps nothing.
func (s *service) Record(ctx context.Context, namespace string, o Order) (bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Order.Record"),
		zap.String("order_id", o.ID),
	)

	orders, err := s.history.LoadOrders(ctx, namespace)
	if errors.Is(err, ErrNoUser) {
		log.Info("guest order not recorded")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	next := make([]Order, 0, len(orders)+1)
	next = append(next, o.Clone())
	next = append(next, orders...)

	if err := s.history.SaveOrders(ctx, namespace, next); err != nil {
		log.Error("failed to save orders", zap.Error(err))
		return false, err
	}

	log.Info("order recorded", zap.Int64("total", o.Total))
	return true, nil
}

// Cancel is only allowed while the order is Processing and needs one of
// CancelReasons.
func (s *service) Cancel(ctx context.Context, namespace, orderID, reason string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Order.Cancel"),
		zap.String("order_id", orderID),
	)

	if !IsCancelReason(reason) {
		log.Warn("invalid cancel reason", zap.String("reason", reason))
		return nil, ErrInvalidCancelReason
	}

	o, err := s.update(ctx, namespace, orderID, func(o *Order) error {
		if o.Status != StatusProcessing {
			return fmt.Errorf("%w: order is %s", ErrNotCancellable, o.Status)
		}
		o.Status = StatusCancelled
		o.CancelReason = reason
		return nil
	})
	if err != nil {
		log.Warn("cancel rejected", zap.Error(err))
		return nil, err
	}

	log.Info("order cancelled", zap.String("reason", reason))
	return o, nil
}

// Advance moves an order forward through fulfilment. Cancellation goes
// through Cancel so it always carries a reason.
func (s *service) Advance(ctx context.Context, namespace, orderID string, to Status) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Order.Advance"),
		zap.String("order_id", orderID),
		zap.String("to", string(to)),
	)

	if to == StatusCancelled {
		return nil, fmt.Errorf("%w: use cancel", ErrInvalidTransition)
	}

	o, err := s.update(ctx, namespace, orderID, func(o *Order) error {
		if !CanTransition(o.Status, to) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, to)
		}
		o.Status = to
		return nil
	})
	if err != nil {
		log.Warn("advance rejected", zap.Error(err))
		return nil, err
	}

	log.Info("order advanced")
	return o, nil
}

func (s *service) update(ctx context.Context, namespace, orderID string, fn func(*Order) error) (*Order, error) {
	orders, err := s.history.LoadOrders(ctx, namespace)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if err := fn(&orders[i]); err != nil {
			return nil, err
		}
		orders[i].UpdatedAt = s.now()

		if err := s.history.SaveOrders(ctx, namespace, orders); err != nil {
			return nil, err
		}
		updated := orders[i].Clone()
		return &updated, nil
	}

	return nil, ErrOrderNotFound
}
