package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopswift-be/internal/address"
	"shopswift-be/internal/cart"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/order"
	"shopswift-be/internal/payment"
	"shopswift-be/internal/user"

	"go.uber.org/zap"
)

// Cart is the part of the cart service checkout reads and clears.
type Cart interface {
	Selected(ctx context.Context, namespace string) ([]cart.CartItem, cart.Totals, error)
	ClearSelected(ctx context.Context, namespace string) (*cart.Cart, error)
}

type Users interface {
	Current(ctx context.Context, namespace string) (*user.User, error)
}

type Orders interface {
	Record(ctx context.Context, namespace string, o order.Order) (bool, error)
}

type Service interface {
	Begin(ctx context.Context, namespace string) (*View, error)
	State(ctx context.Context, namespace string) (*View, error)
	ContinueAsGuest(ctx context.Context, namespace string) (*View, error)
	SelectAddress(ctx context.Context, namespace, addressID string) (*View, error)
	AddAddress(ctx context.Context, namespace string, in address.CreateAddressInput) (*View, error)
	ConfirmSummary(ctx context.Context, namespace string) (*View, error)
	PlaceOrder(ctx context.Context, namespace, method string) (*Receipt, error)
}

type service struct {
	repo    Repository
	cart    Cart
	users   Users
	orders  Orders
	gateway payment.Gateway
	now     func() time.Time
}

func NewService(repo Repository, c Cart, users Users, orders Orders, gateway payment.Gateway) Service {
	return &service{
		repo:    repo,
		cart:    c,
		users:   users,
		orders:  orders,
		gateway: gateway,
		now:     time.Now,
	}
}

// Begin starts (or restarts) checkout for the selected cart lines. Signed-in
// customers skip the auth step.
func (s *service) Begin(ctx context.Context, namespace string) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout.Begin"),
	)

	items, _, err := s.cart.Selected(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		log.Warn("nothing selected")
		return nil, ErrNothingSelected
	}

	u, err := s.currentUser(ctx, namespace)
	if err != nil {
		return nil, err
	}

	sess := &Session{Step: StepAuth, StartedAt: s.now()}
	var owner *address.Owner
	if u != nil {
		sess.Step = StepAddress
		owner = &address.Owner{Name: u.Name, Address: u.Address}
	}
	sess.Addresses = address.Defaults(owner)
	sess.SelectedAddressID = sess.Addresses[0].ID

	if err := s.repo.Save(ctx, namespace, sess); err != nil {
		log.Error("failed to save checkout session", zap.Error(err))
		return nil, err
	}

	log.Info("checkout started", zap.Stringer("step", sess.Step), zap.Int("items", len(items)))
	return s.view(ctx, namespace, sess)
}

// State returns the current checkout. A customer who signed in since the
// session started is moved past the auth step.
func (s *service) State(ctx context.Context, namespace string) (*View, error) {
	sess, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	changed, err := s.syncUser(ctx, namespace, sess)
	if err != nil {
		return nil, err
	}
	if changed {
		if err := s.repo.Save(ctx, namespace, sess); err != nil {
			logger.FromCtx(ctx).Error("failed to save checkout session",
				zap.String("layer", "service"),
				zap.String("method", "Checkout.State"),
				zap.Error(err),
			)
			return nil, err
		}
	}
	return s.view(ctx, namespace, sess)
}

func (s *service) ContinueAsGuest(ctx context.Context, namespace string) (*View, error) {
	return s.advance(ctx, namespace, "ContinueAsGuest", func(sess *Session) error {
		if sess.Step != StepAuth {
			return fmt.Errorf("%w: at %s", ErrWrongStep, sess.Step)
		}
		sess.Guest = true
		sess.Step = StepAddress
		return nil
	})
}

// SelectAddress picks a delivery address and moves on to the summary. From
// the summary or payment steps it acts as "change address".
func (s *service) SelectAddress(ctx context.Context, namespace, addressID string) (*View, error) {
	return s.advance(ctx, namespace, "SelectAddress", func(sess *Session) error {
		if sess.Step < StepAddress {
			return fmt.Errorf("%w: at %s", ErrWrongStep, sess.Step)
		}
		prev := sess.SelectedAddressID
		sess.SelectedAddressID = addressID
		if _, ok := sess.selectedAddress(); !ok {
			sess.SelectedAddressID = prev
			return ErrAddressNotFound
		}
		sess.Step = StepSummary
		return nil
	})
}

// AddAddress validates a new address, adds it to the session's address book
// and delivers the order there.
func (s *service) AddAddress(ctx context.Context, namespace string, in address.CreateAddressInput) (*View, error) {
	return s.advance(ctx, namespace, "AddAddress", func(sess *Session) error {
		if sess.Step < StepAddress {
			return fmt.Errorf("%w: at %s", ErrWrongStep, sess.Step)
		}
		a, err := address.New(in)
		if err != nil {
			return err
		}
		sess.Addresses = append(sess.Addresses, a)
		sess.SelectedAddressID = a.ID
		sess.Step = StepSummary
		return nil
	})
}

func (s *service) ConfirmSummary(ctx context.Context, namespace string) (*View, error) {
	return s.advance(ctx, namespace, "ConfirmSummary", func(sess *Session) error {
		if sess.Step != StepSummary {
			return fmt.Errorf("%w: at %s", ErrWrongStep, sess.Step)
		}
		if _, ok := sess.selectedAddress(); !ok {
			return ErrNoAddress
		}
		items, _, err := s.cart.Selected(ctx, namespace)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrNothingSelected
		}
		sess.Step = StepPayment
		return nil
	})
}

// PlaceOrder charges the selected lines and turns them into a Processing
// order. A declined or timed out payment, or a cancelled ctx, leaves cart,
// history and checkout exactly as they were.
func (s *service) PlaceOrder(ctx context.Context, namespace, method string) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout.PlaceOrder"),
		zap.String("payment_method", method),
	)

	sess, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPayment {
		return nil, fmt.Errorf("%w: at %s", ErrWrongStep, sess.Step)
	}

	m, err := payment.ParseMethod(method)
	if err != nil {
		return nil, err
	}

	addr, ok := sess.selectedAddress()
	if !ok {
		return nil, ErrNoAddress
	}

	items, totals, err := s.cart.Selected(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNothingSelected
	}

	var email string
	if u, _ := s.currentUser(ctx, namespace); u != nil {
		email = u.Email
	}

	res, err := s.gateway.Authorize(ctx, payment.Request{Amount: totals.Total, Method: m, Email: email})
	if err != nil {
		log.Warn("payment failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := order.New(order.CreateOrderParams{
		Items:         items,
		Totals:        totals,
		Address:       addr,
		PaymentMethod: string(m),
		PaymentRef:    res.Reference,
	}, s.now())

	recorded, err := s.orders.Record(ctx, namespace, o)
	if err != nil {
		log.Error("failed to record order", zap.String("order_id", o.ID), zap.Error(err))
		return nil, err
	}

	if _, err := s.cart.ClearSelected(ctx, namespace); err != nil {
		log.Error("failed to clear cart", zap.String("order_id", o.ID), zap.Error(err))
		return nil, err
	}
	if err := s.repo.Delete(ctx, namespace); err != nil {
		log.Error("failed to delete checkout session", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
		zap.Bool("recorded", recorded),
	)
	return &Receipt{Order: o, Recorded: recorded, Payment: res}, nil
}

func (s *service) advance(ctx context.Context, namespace, method string, fn func(*Session) error) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout."+method),
	)

	sess, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	changed, err := s.syncUser(ctx, namespace, sess)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		log.Warn("checkout step rejected", zap.Error(err))
		if changed {
			if serr := s.repo.Save(ctx, namespace, sess); serr != nil {
				log.Error("failed to save checkout session", zap.Error(serr))
			}
		}
		return nil, err
	}

	if err := s.repo.Save(ctx, namespace, sess); err != nil {
		log.Error("failed to save checkout session", zap.Error(err))
		return nil, err
	}

	log.Info("checkout step completed", zap.Stringer("step", sess.Step))
	return s.view(ctx, namespace, sess)
}

func (s *service) view(ctx context.Context, namespace string, sess *Session) (*View, error) {
	items, totals, err := s.cart.Selected(ctx, namespace)
	if err != nil {
		return nil, err
	}

	v := &View{
		Step:           sess.Step,
		StepName:       sess.Step.String(),
		Guest:          sess.Guest,
		Addresses:      sess.Addresses,
		Items:          items,
		Totals:         totals,
		PaymentMethods: paymentMethods,
	}
	if a, ok := sess.selectedAddress(); ok {
		v.SelectedAddress = &a
	}
	return v, nil
}

// syncUser applies a sign-in that happened after checkout began.
func (s *service) syncUser(ctx context.Context, namespace string, sess *Session) (bool, error) {
	u, err := s.currentUser(ctx, namespace)
	if err != nil || u == nil {
		return false, err
	}
	return sess.signIn(address.Owner{Name: u.Name, Address: u.Address}), nil
}

func (s *service) currentUser(ctx context.Context, namespace string) (*user.User, error) {
	u, err := s.users.Current(ctx, namespace)
	if errors.Is(err, user.ErrNotLoggedIn) {
		return nil, nil
	}
	return u, err
}
