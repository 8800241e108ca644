package compare

import (
	"context"
	"slices"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

type Catalog interface {
	Get(id string) (catalog.Product, bool)
	Lookup(ids []string) []catalog.Product
}

type Service interface {
	Get(ctx context.Context, namespace string) (Comparison, error)
	Toggle(ctx context.Context, namespace, productID string) (Comparison, error)
	Clear(ctx context.Context, namespace string) error
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, c Catalog) Service {
	return &service{repo: repo, catalog: c}
}

func (s *service) Get(ctx context.Context, namespace string) (Comparison, error) {
	ids, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return Comparison{}, err
	}
	return Build(s.catalog.Lookup(ids)), nil
}

// Toggle adds the product to the comparison, or removes it when already
// there. A fifth product is rejected with ErrCompareFull.
func (s *service) Toggle(ctx context.Context, namespace, productID string) (Comparison, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Compare.Toggle"),
		zap.String("product_id", productID),
	)

	ids, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return Comparison{}, err
	}

	if i := slices.Index(ids, productID); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		if _, ok := s.catalog.Get(productID); !ok {
			return Comparison{}, ErrProductNotFound
		}
		if len(ids) >= MaxItems {
			log.Warn("comparison list full")
			return Comparison{}, ErrCompareFull
		}
		ids = append(ids, productID)
	}

	if err := s.repo.Save(ctx, namespace, ids); err != nil {
		log.Error("failed to save comparison list", zap.Error(err))
		return Comparison{}, err
	}
	return Build(s.catalog.Lookup(ids)), nil
}

func (s *service) Clear(ctx context.Context, namespace string) error {
	return s.repo.Clear(ctx, namespace)
}
