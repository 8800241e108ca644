package user

import (
	"context"
	"strings"

	"shopswift-be/internal/logger"
	"shopswift-be/internal/order"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, namespace string, in LoginInput) (*User, error)
	Signup(ctx context.Context, namespace string, in SignupInput) (*User, error)
	Logout(ctx context.Context, namespace string) error
	Current(ctx context.Context, namespace string) (*User, error)

	Onboarded(ctx context.Context, namespace string) (bool, error)
	CompleteOnboarding(ctx context.Context, namespace string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Login accepts any well-formed email and password and signs the session in
// as the demo customer.
func (s *service) Login(ctx context.Context, namespace string, in LoginInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "User.Login"),
	)

	if err := ValidateLogin(in); err != nil {
		log.Warn("login rejected", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:    demoName,
		Email:   strings.TrimSpace(in.Email),
		Address: demoAddress,
		Orders:  []order.Order{},
	}
	if err := s.repo.Save(ctx, namespace, u); err != nil {
		log.Error("failed to save user", zap.Error(err))
		return nil, err
	}

	log.Info("login service completed", zap.String("email", u.Email))
	return u, nil
}

func (s *service) Signup(ctx context.Context, namespace string, in SignupInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "User.Signup"),
	)

	if err := ValidateSignup(in); err != nil {
		log.Warn("signup rejected", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Address: newAddress,
		Orders:  []order.Order{},
	}
	if err := s.repo.Save(ctx, namespace, u); err != nil {
		log.Error("failed to save user", zap.Error(err))
		return nil, err
	}

	log.Info("signup service completed", zap.String("email", u.Email))
	return u, nil
}

// Logout clears the user together with its order history.
func (s *service) Logout(ctx context.Context, namespace string) error {
	return s.repo.Delete(ctx, namespace)
}

func (s *service) Current(ctx context.Context, namespace string) (*User, error) {
	u, err := s.repo.Find(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}

func (s *service) Onboarded(ctx context.Context, namespace string) (bool, error) {
	return s.repo.Onboarded(ctx, namespace)
}

func (s *service) CompleteOnboarding(ctx context.Context, namespace string) error {
	return s.repo.SetOnboarded(ctx, namespace)
}
