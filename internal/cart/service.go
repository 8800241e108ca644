package cart

import (
	"context"
	"strings"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/logger"

	"go.uber.org/zap"
)

// ProductSource resolves catalog products. *catalog.Store satisfies it.
type ProductSource interface {
	Get(id string) (catalog.Product, bool)
}

// Service defines the business logic for carts.
type Service interface {
	Get(ctx context.Context, namespace string) (*Cart, error)
	Add(ctx context.Context, namespace, productID string) (*Cart, error)
	AddQuantity(ctx context.Context, namespace, productID string, quantity int) (*Cart, error)
	UpdateQuantity(ctx context.Context, namespace, productID string, delta int) (*Cart, error)
	Remove(ctx context.Context, namespace, productID string) (*Cart, error)
	ToggleSelection(ctx context.Context, namespace, productID string) (*Cart, error)
	SelectAll(ctx context.Context, namespace string, selected bool) (*Cart, error)
	ClearSelected(ctx context.Context, namespace string) (*Cart, error)
	Selected(ctx context.Context, namespace string) ([]CartItem, Totals, error)
}

type service struct {
	repo     Repository
	products ProductSource
}

func NewService(repo Repository, products ProductSource) Service {
	return &service{repo: repo, products: products}
}

func (s *service) Get(ctx context.Context, namespace string) (*Cart, error) {
	items, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return ToCart(items), nil
}

// Add puts one unit of the product in the cart and selects the line.
func (s *service) Add(ctx context.Context, namespace, productID string) (*Cart, error) {
	return s.AddQuantity(ctx, namespace, productID, 1)
}

// AddQuantity is "buy now" from the product page: a new line starts at
// quantity, capped at the product's stock. A line already in the cart grows
// by one like Add.
func (s *service) AddQuantity(ctx context.Context, namespace, productID string, quantity int) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Cart.Add"),
		zap.String("product_id", productID),
	)

	if strings.TrimSpace(productID) == "" {
		return nil, ErrInvalidProductID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, ok := s.products.Get(productID)
	if !ok {
		log.Warn("product not found")
		return nil, ErrProductNotFound
	}
	if !p.InStock() {
		log.Warn("product out of stock")
		return nil, ErrOutOfStock
	}

	return s.dispatch(ctx, namespace, Action{Type: ActionAdd, Product: p, Quantity: min(quantity, p.Stock)})
}

// UpdateQuantity changes the line quantity by delta, never going below 1.
func (s *service) UpdateQuantity(ctx context.Context, namespace, productID string, delta int) (*Cart, error) {
	return s.dispatch(ctx, namespace, Action{Type: ActionUpdateQuantity, ProductID: productID, Delta: delta})
}

func (s *service) Remove(ctx context.Context, namespace, productID string) (*Cart, error) {
	return s.dispatch(ctx, namespace, Action{Type: ActionRemove, ProductID: productID})
}

func (s *service) ToggleSelection(ctx context.Context, namespace, productID string) (*Cart, error) {
	return s.dispatch(ctx, namespace, Action{Type: ActionToggleSelection, ProductID: productID})
}

func (s *service) SelectAll(ctx context.Context, namespace string, selected bool) (*Cart, error) {
	return s.dispatch(ctx, namespace, Action{Type: ActionSelectAll, Selected: selected})
}

// ClearSelected drops every selected line. Called after a successful order.
func (s *service) ClearSelected(ctx context.Context, namespace string) (*Cart, error) {
	return s.dispatch(ctx, namespace, Action{Type: ActionClearSelected})
}

func (s *service) Selected(ctx context.Context, namespace string) ([]CartItem, Totals, error) {
	items, err := s.repo.Load(ctx, namespace)
	if err != nil {
		return nil, Totals{}, err
	}
	return SelectedItems(items), ComputeTotals(items), nil
}

// dispatch is the single load, reduce, save path every mutation goes through.
func (s *service) dispatch(ctx context.Context, namespace string, a Action) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Cart.dispatch"),
		zap.String("action", string(a.Type)),
	)

	items, err := s.repo.Load(ctx, namespace)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		return nil, err
	}

	next, err := Reduce(items, a)
	if err != nil {
		log.Warn("rejected cart action", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Save(ctx, namespace, next); err != nil {
		log.Error("failed to save cart", zap.Error(err))
		return nil, err
	}

	log.Debug("cart updated", zap.Int("lines", len(next)))
	return ToCart(next), nil
}
