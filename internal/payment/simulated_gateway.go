package payment

import (
	"context"
	"time"

	"shopswift-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedGateway stands in for a real processor: it waits for latency and
// then answers with a fixed outcome. Cash on delivery never goes to the
// processor and always succeeds.
type SimulatedGateway struct {
	latency time.Duration
	outcome Outcome
	now     func() time.Time
}

func NewSimulatedGateway(latency time.Duration, outcome Outcome) *SimulatedGateway {
	if outcome == "" {
		outcome = OutcomeSuccess
	}
	return &SimulatedGateway{latency: latency, outcome: outcome, now: time.Now}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("method", "Authorize"),
		zap.String("payment_method", string(req.Method)),
		zap.Int64("amount", req.Amount),
	)

	if _, err := ParseMethod(string(req.Method)); err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := wait(ctx, g.latency); err != nil {
		log.Warn("payment abandoned", zap.Error(err))
		return nil, err
	}

	outcome := g.outcome
	if req.Method == MethodCOD {
		outcome = OutcomeSuccess
	}

	switch outcome {
	case OutcomeDecline:
		log.Warn("payment declined")
		return nil, ErrDeclined
	case OutcomeTimeout:
		log.Warn("payment timed out")
		return nil, ErrTimeout
	}

	res := &Result{
		Reference:    "PAY-" + uuid.NewString(),
		Method:       req.Method,
		Amount:       req.Amount,
		Status:       "AUTHORIZED",
		AuthorizedAt: g.now(),
	}
	log.Info("payment authorized", zap.String("reference", res.Reference))
	return res, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
