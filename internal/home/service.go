package home

import (
	"context"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

// Catalog is satisfied by *catalog.Store.
type Catalog interface {
	All() []catalog.Product
	Categories() []catalog.Category
}

type Service interface {
	Feed(ctx context.Context, namespace string) (*Feed, error)
	Refresh(ctx context.Context, namespace string) error
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, c Catalog) Service {
	return &service{repo: repo, catalog: c}
}

// Feed returns the landing page and records the visit.
func (s *service) Feed(ctx context.Context, namespace string) (*Feed, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Home.Feed"),
	)

	visited, err := s.repo.Visited(ctx, namespace)
	if err != nil {
		log.Error("failed to load visit flag", zap.Error(err))
		return nil, err
	}

	feed := BuildFeed(s.catalog.All(), s.catalog.Categories())
	feed.FirstVisit = !visited

	if !visited {
		if err := s.repo.MarkVisited(ctx, namespace); err != nil {
			log.Error("failed to mark visit", zap.Error(err))
			return nil, err
		}
	}

	return &feed, nil
}

// Refresh makes the next Feed behave like a first visit again.
func (s *service) Refresh(ctx context.Context, namespace string) error {
	return s.repo.ResetVisited(ctx, namespace)
}
