package cart

import (
	"context"
	"errors"
	"testing"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context, namespace string) ([]CartItem, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CartItem), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, namespace string, items []CartItem) error {
	args := m.Called(ctx, namespace, items)
	return args.Error(0)
}

type fakeProducts map[string]catalog.Product

func (f fakeProducts) Get(id string) (catalog.Product, bool) {
	p, ok := f[id]
	return p, ok
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	products := fakeProducts{
		"1": product("1", 250),
		"2": {ID: "2", Price: 99, Stock: 0},
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		repo.On("Load", ctx, "s1").Return([]CartItem{}, nil)
		repo.On("Save", ctx, "s1", mock.MatchedBy(func(items []CartItem) bool {
			return len(items) == 1 && items[0].ID == "1" && items[0].Quantity == 1
		})).Return(nil)

		c, err := svc.Add(ctx, "s1", "1")

		require.NoError(t, err)
		assert.Equal(t, int64(250), c.Totals.CurrentTotal)
		assert.Equal(t, int64(ShippingFee), c.Totals.Shipping)
		repo.AssertExpectations(t)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		_, err := svc.Add(ctx, "s1", "404")

		assert.ErrorIs(t, err, ErrProductNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OutOfStock", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		_, err := svc.Add(ctx, "s1", "2")

		assert.ErrorIs(t, err, ErrOutOfStock)
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("EmptyID", func(t *testing.T) {
		svc := NewService(new(MockRepository), products)

		_, err := svc.Add(ctx, "s1", " ")

		assert.ErrorIs(t, err, ErrInvalidProductID)
	})

	t.Run("LoadFailure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		repo.On("Load", ctx, "s1").Return(nil, ErrFailedLoadCart)

		_, err := svc.Add(ctx, "s1", "1")

		assert.ErrorIs(t, err, ErrFailedLoadCart)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SaveFailure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		repo.On("Load", ctx, "s1").Return([]CartItem{}, nil)
		repo.On("Save", ctx, "s1", mock.Anything).Return(errors.New("disk full"))

		_, err := svc.Add(ctx, "s1", "1")

		assert.Error(t, err)
	})
}

func TestService_AddQuantity(t *testing.T) {
	ctx := context.Background()
	products := fakeProducts{"1": product("1", 100)}

	t.Run("CappedAtStock", func(t *testing.T) {
		svc := NewService(NewRepository(storage.NewMemoryStore()), products)

		c, err := svc.AddQuantity(ctx, "s1", "1", 9)

		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, int64(500), c.Totals.CurrentTotal)
	})

	t.Run("ExistingLineGrowsByOne", func(t *testing.T) {
		svc := NewService(NewRepository(storage.NewMemoryStore()), products)
		_, err := svc.AddQuantity(ctx, "s1", "1", 2)
		require.NoError(t, err)

		c, err := svc.AddQuantity(ctx, "s1", "1", 2)

		require.NoError(t, err)
		assert.Equal(t, 3, c.Items[0].Quantity)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, products)

		_, err := svc.AddQuantity(ctx, "s1", "1", 0)

		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})
}

// The remaining operations run against the real repository so the whole
// load, reduce, save path is exercised.
func TestService_Flow(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRepository(storage.NewMemoryStore()), fakeProducts{
		"1": product("1", 100),
		"2": product("2", 50),
	})

	_, err := svc.Add(ctx, "s1", "1")
	require.NoError(t, err)
	c, err := svc.Add(ctx, "s1", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Items[0].Quantity)

	_, err = svc.Add(ctx, "s1", "2")
	require.NoError(t, err)
	c, err = svc.ToggleSelection(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(200), c.Totals.CurrentTotal)
	assert.Equal(t, int64(240), c.Totals.Total)

	c, err = svc.UpdateQuantity(ctx, "s1", "1", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Items[0].Quantity)

	selected, totals, err := svc.Selected(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, int64(100), totals.CurrentTotal)

	c, err = svc.ClearSelected(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "2", c.Items[0].ID)

	c, err = svc.SelectAll(ctx, "s1", true)
	require.NoError(t, err)
	assert.True(t, c.Items[0].Selected)

	c, err = svc.Remove(ctx, "s1", "2")
	require.NoError(t, err)
	assert.Empty(t, c.Items)

	c, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
