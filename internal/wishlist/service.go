package wishlist

import (
	"context"

	"shopswift-be/internal/cart"
	"shopswift-be/internal/catalog"
	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

// Catalog resolves wishlist ids. *catalog.Store satisfies it.
type Catalog interface {
	Get(id string) (catalog.Product, bool)
	Lookup(ids []string) []catalog.Product
}

// CartAdder is the part of the cart service MoveToCart needs.
type CartAdder interface {
	Add(ctx context.Context, namespace, productID string) (*cart.Cart, error)
}

type Service interface {
	List(ctx context.Context, namespace string) (Wishlist, error)
	Products(ctx context.Context, namespace string) ([]catalog.Product, error)
	Toggle(ctx context.Context, namespace, productID string) (Wishlist, bool, error)
	MoveToCart(ctx context.Context, namespace, productID string) (Wishlist, error)
}

type service struct {
	repo    Repository
	catalog Catalog
	cart    CartAdder
}

func NewService(repo Repository, c Catalog, cartSvc CartAdder) Service {
	return &service{repo: repo, catalog: c, cart: cartSvc}
}

func (s *service) List(ctx context.Context, namespace string) (Wishlist, error) {
	return s.repo.Load(ctx, namespace)
}

// Products resolves the saved ids against the current catalog. Ids that no
// longer exist are skipped.
func (s *service) Products(ctx context.Context, namespace string) ([]catalog.Product, error) {
	w, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return s.catalog.Lookup(w), nil
}

func (s *service) Toggle(ctx context.Context, namespace, productID string) (Wishlist, bool, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Wishlist.Toggle"),
		zap.String("product_id", productID),
	)

	w, err := s.repo.Load(ctx, namespace)
	if err != nil {
		log.Error("failed to load wishlist", zap.Error(err))
		return nil, false, err
	}

	// Removing an id that left the catalog must still work.
	if !w.Contains(productID) {
		if _, ok := s.catalog.Get(productID); !ok {
			log.Warn("product not found")
			return nil, false, ErrProductNotFound
		}
	}

	next, added := w.Toggle(productID)
	if err := s.repo.Save(ctx, namespace, next); err != nil {
		log.Error("failed to save wishlist", zap.Error(err))
		return nil, false, err
	}

	log.Info("wishlist toggled", zap.Bool("added", added))
	return next, added, nil
}

// MoveToCart adds the product to the cart, then drops it from the wishlist.
// If the cart rejects it the wishlist is left alone.
func (s *service) MoveToCart(ctx context.Context, namespace, productID string) (Wishlist, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Wishlist.MoveToCart"),
		zap.String("product_id", productID),
	)

	if _, err := s.cart.Add(ctx, namespace, productID); err != nil {
		log.Warn("cart rejected product", zap.Error(err))
		return nil, err
	}

	w, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	next := w.Without(productID)
	if err := s.repo.Save(ctx, namespace, next); err != nil {
		log.Error("failed to save wishlist", zap.Error(err))
		return nil, err
	}
	return next, nil
}
