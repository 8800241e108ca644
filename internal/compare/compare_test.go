package compare

import (
	"context"
	"testing"

	"shopswift-be/internal/catalog"
	"shopswift-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specProduct(id string, specs ...catalog.Spec) catalog.Product {
	return catalog.Product{
		ID:         id,
		SpecGroups: []catalog.SpecGroup{{Title: "Key Features", Specs: specs}},
	}
}

func TestBuild(t *testing.T) {
	got := Build([]catalog.Product{
		specProduct("1", catalog.Spec{Key: "Brand", Value: "Apple"}, catalog.Spec{Key: "Color", Value: "Black"}),
		specProduct("2", catalog.Spec{Key: "Brand", Value: "Sony"}, catalog.Spec{Key: "Color", Value: "Black"}, catalog.Spec{Key: "Model", Value: "Pro"}),
	})

	require.Len(t, got.Rows, 3)
	assert.Equal(t, Row{Key: "Brand", Values: []string{"Apple", "Sony"}, Different: true}, got.Rows[0])
	assert.Equal(t, Row{Key: "Color", Values: []string{"Black", "Black"}}, got.Rows[1])
	assert.Equal(t, Row{Key: "Model", Values: []string{"", "Pro"}, Different: true}, got.Rows[2])
}

func TestBuild_Empty(t *testing.T) {
	got := Build(nil)
	assert.NotNil(t, got.Products)
	assert.Empty(t, got.Rows)
}

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()
	var products []catalog.Product
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		products = append(products, specProduct(id))
	}
	svc := NewService(NewRepository(storage.NewMemoryStore()), catalog.NewStore(products, nil))

	for _, id := range []string{"1", "2", "3", "4"} {
		_, err := svc.Toggle(ctx, "s1", id)
		require.NoError(t, err)
	}

	_, err := svc.Toggle(ctx, "s1", "5")
	assert.ErrorIs(t, err, ErrCompareFull)

	_, err = svc.Toggle(ctx, "s1", "404")
	assert.ErrorIs(t, err, ErrProductNotFound)

	c, err := svc.Toggle(ctx, "s1", "2")
	require.NoError(t, err)
	require.Len(t, c.Products, 3)

	c, err = svc.Toggle(ctx, "s1", "5")
	require.NoError(t, err)
	assert.Equal(t, "5", c.Products[3].ID)

	require.NoError(t, svc.Clear(ctx, "s1"))
	c, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Products)
}
