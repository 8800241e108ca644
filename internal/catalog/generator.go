package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it;
// tests pass a seeded one to get a reproducible catalog.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a math/rand source. A zero seed means "seed from the clock".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate builds the synthetic catalog from the embedded seed tables.
// Products are ordered by category, then brand, as listed in the tables.
func Generate(rng Rand) []Product {
	return generate(defaultSeed, rng)
}

func generate(seed *seedTables, rng Rand) []Product {
	var (
		products []Product
		nextID   = 1
	)

	for _, cat := range seed.Categories {
		for _, brand := range cat.Brands {
			count := 2 + rng.Intn(2)

			for i := 0; i < count; i++ {
				suffix := seed.Suffixes[rng.Intn(len(seed.Suffixes))]
				price := int64(499 + rng.Intn(80000))
				discount := 15 + rng.Intn(55)
				oldPrice := int64(math.Floor(float64(price) / (1 - float64(discount)/100)))

				mainImage := cat.Images[i%len(cat.Images)]
				images := []string{mainImage}
				for _, img := range cat.Images {
					if img != mainImage && len(images) < 4 {
						images = append(images, img)
					}
				}

				subCategory := "New Arrival"
				if i == 0 {
					subCategory = "Best Seller"
				}

				products = append(products, Product{
					ID:           strconv.Itoa(nextID),
					Name:         fmt.Sprintf("%s %s %s", brand, suffix, cat.Noun),
					Category:     cat.ID,
					SubCategory:  subCategory,
					Price:        price,
					OldPrice:     &oldPrice,
					Discount:     fmt.Sprintf("%d%% OFF", discount),
					Rating:       round1(3.8 + rng.Float64()*1.2),
					ReviewsCount: 50 + rng.Intn(12000),
					Image:        mainImage,
					Images:       images,
					Description: fmt.Sprintf(
						"The %s %s is a premium offering in the %s category, providing exceptional quality and value. "+
							"Designed for the modern Indian consumer, it features reliable performance and aesthetic appeal with high-grade build quality.",
						brand, suffix, cat.ID,
					),
					Brand:      brand,
					Highlights: append([]string(nil), seed.Highlights...),
					SpecGroups: []SpecGroup{
						{Title: "Key Features", Specs: []Spec{
							{Key: "Brand", Value: brand},
							{Key: "Color", Value: "Variant Specific"},
							{Key: "Model", Value: suffix},
							{Key: "Category", Value: cat.ID},
						}},
						{Title: "Warranty", Specs: []Spec{
							{Key: "Domestic Warranty", Value: "1 Year"},
							{Key: "Service Type", Value: "Carry-in"},
							{Key: "Covered in Warranty", Value: "Manufacturing Defects"},
						}},
					},
					Assured:      rng.Float64() > 0.4,
					Stock:        rng.Intn(50),
					SellerName:   brand + " Retail India",
					SellerRating: round1(4.2 + rng.Float64()*0.7),
					ReturnPolicy: seed.ReturnPolicy,
				})
				nextID++
			}
		}
	}

	return products
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
