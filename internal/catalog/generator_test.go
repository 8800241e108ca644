package catalog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Reproducible(t *testing.T) {
	a := Generate(NewRand(7))
	b := Generate(NewRand(7))

	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestGenerate_Invariants(t *testing.T) {
	products := Generate(NewRand(42))

	perBrand := make(map[string]int)
	for i, p := range products {
		assert.Equal(t, strconv.Itoa(i+1), p.ID, "ids are sequential")

		assert.GreaterOrEqual(t, p.Price, int64(499))
		assert.Less(t, p.Price, int64(499+80000))

		require.NotNil(t, p.OldPrice)
		assert.GreaterOrEqual(t, *p.OldPrice, p.Price)

		d := DiscountPercent(p)
		assert.GreaterOrEqual(t, d, 15)
		assert.Less(t, d, 70)

		assert.GreaterOrEqual(t, p.Rating, 3.8)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.Less(t, p.Stock, 50)
		assert.GreaterOrEqual(t, p.ReviewsCount, 50)

		assert.Equal(t, p.Brand+" Retail India", p.SellerName)
		assert.Equal(t, p.Image, p.Images[0])
		assert.Len(t, p.SpecGroups, 2)
		assert.Equal(t, "10 Days Replacement Policy", p.ReturnPolicy)

		perBrand[p.Category+"/"+p.Brand]++
	}

	for key, n := range perBrand {
		assert.True(t, n == 2 || n == 3, "%s has %d products", key, n)
	}
}

func TestGenerate_FirstOfBrandIsBestSeller(t *testing.T) {
	products := Generate(NewRand(3))

	prev := ""
	for _, p := range products {
		key := p.Category + "/" + p.Brand
		if key != prev {
			assert.Equal(t, "Best Seller", p.SubCategory, p.ID)
		} else {
			assert.Equal(t, "New Arrival", p.SubCategory, p.ID)
		}
		prev = key
	}
}

func TestParseSeed(t *testing.T) {
	t.Run("Embedded", func(t *testing.T) {
		s, err := parseSeed(seedYAML)
		require.NoError(t, err)
		assert.Len(t, s.Categories, 7)
		assert.Equal(t, "mobiles", s.Categories[0].ID)
		assert.Equal(t, "Smartphone", s.Categories[0].Noun)
		assert.Contains(t, s.Categories[1].Brands, "H&M")
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := parseSeed([]byte("suffixes: [a"))
		assert.Error(t, err)
	})

	t.Run("Incomplete", func(t *testing.T) {
		_, err := parseSeed([]byte("suffixes: [Pro]\ncategories:\n  - id: x\n"))
		assert.Error(t, err)
	})
}
