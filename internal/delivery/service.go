package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

type Service interface {
	Check(ctx context.Context, namespace, pincode string) (*Estimate, error)
	LastPincode(ctx context.Context, namespace string) (string, error)
}

type service struct {
	store   storage.Store
	latency time.Duration
	now     func() time.Time
}

// NewService builds the estimator. latency simulates the lookup round trip
// and is cut short when the request context ends.
func NewService(store storage.Store, latency time.Duration) Service {
	return &service{store: store, latency: latency, now: time.Now}
}

// Check validates the pincode, waits out the simulated lookup and remembers
// the pincode for the session. Nothing is saved if ctx ends first.
func (s *service) Check(ctx context.Context, namespace, pincode string) (*Estimate, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Delivery.Check"),
		zap.String("pincode", pincode),
	)

	pincode = strings.TrimSpace(pincode)
	est, err := Quote(pincode, s.now())
	if err != nil {
		log.Warn("invalid pincode")
		return nil, err
	}

	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if err := storage.SaveJSON(ctx, s.store, namespace, storage.KeyLastPincode, pincode); err != nil {
		log.Error("failed to save pincode", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedSavePincode, err)
	}

	log.Info("delivery estimated", zap.String("type", string(est.Type)), zap.Int("days", est.Days))
	return &est, nil
}

func (s *service) LastPincode(ctx context.Context, namespace string) (string, error) {
	var pin string
	_, err := storage.LoadJSON(ctx, s.store, namespace, storage.KeyLastPincode, &pin)
	if errors.Is(err, storage.ErrCorrupted) {
		return "", nil
	}
	return pin, err
}
