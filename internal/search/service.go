package search

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/logger"
	"shopswift-be/internal/storage"

	"go.uber.org/zap"
)

// Suggester is satisfied by *catalog.Store.
type Suggester interface {
	Suggest(query string) []catalog.Suggestion
}

type Service interface {
	Recent(ctx context.Context, namespace string) ([]string, error)
	Record(ctx context.Context, namespace, term string) ([]string, error)
	Remove(ctx context.Context, namespace, term string) ([]string, error)
	Clear(ctx context.Context, namespace string) error
	Suggest(query string) []catalog.Suggestion
}

type service struct {
	store     storage.Store
	suggester Suggester
}

func NewService(store storage.Store, suggester Suggester) Service {
	return &service{store: store, suggester: suggester}
}

func (s *service) Recent(ctx context.Context, namespace string) ([]string, error) {
	var recent []string

	_, err := storage.LoadJSON(ctx, s.store, namespace, storage.KeyRecentSearches, &recent)
	if errors.Is(err, storage.ErrCorrupted) {
		logger.FromCtx(ctx).Warn("discarding corrupted recent searches", zap.Error(err))
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoadRecent, err)
	}
	if recent == nil {
		recent = []string{}
	}
	return recent, nil
}

// Record moves term to the front of the recent searches.
func (s *service) Record(ctx context.Context, namespace, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, ErrEmptyTerm
	}

	recent, err := s.Recent(ctx, namespace)
	if err != nil {
		return nil, err
	}

	next := Push(recent, term)
	if err := s.save(ctx, namespace, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) Remove(ctx context.Context, namespace, term string) ([]string, error) {
	recent, err := s.Recent(ctx, namespace)
	if err != nil {
		return nil, err
	}

	next := slices.DeleteFunc(recent, func(r string) bool { return r == term })
	if err := s.save(ctx, namespace, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *service) Clear(ctx context.Context, namespace string) error {
	if err := s.store.Delete(ctx, namespace, storage.KeyRecentSearches); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedSaveRecent, err)
	}
	return nil
}

func (s *service) Suggest(query string) []catalog.Suggestion {
	return s.suggester.Suggest(query)
}

func (s *service) save(ctx context.Context, namespace string, recent []string) error {
	if err := storage.SaveJSON(ctx, s.store, namespace, storage.KeyRecentSearches, recent); err != nil {
		logger.FromCtx(ctx).Error("failed to save recent searches",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedSaveRecent, err)
	}
	return nil
}
