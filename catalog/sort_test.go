package catalog

import (
	"testing"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeyNormalize(t *testing.T) {
	assert.Equal(t, SortPriceLow, SortPriceLow.Normalize())
	assert.Equal(t, SortFeatured, SortKey("").Normalize())
	assert.Equal(t, SortFeatured, SortKey("price-ascending").Normalize())
	assert.Equal(t, SortFeatured, SortKey("PRICE_LOW").Normalize())
}

func sortedNames(t *testing.T, products []models.Product, key SortKey) []string {
	t.Helper()
	rendered := Storefront.Render(products, FilterConfig{SortBy: key})
	require.Len(t, rendered, len(products))
	names := make([]string, len(rendered))
	for i, a := range rendered {
		names[i] = a.Name
	}
	return names
}

func TestSortOrderings(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "a", Price: 30, Views: 10, AverageRating: 3.0, DiscountPercentage: 25, CreatedAt: base.AddDate(0, 0, 2)},
		{Name: "b", Price: 10, Views: 50, AverageRating: 4.5, DiscountPercentage: 0, CreatedAt: base.AddDate(0, 0, 9), Featured: true},
		{Name: "c", Price: 20, Views: 30, AverageRating: 4.0, DiscountPercentage: 40, CreatedAt: base.AddDate(0, 0, 5)},
	}

	assert.Equal(t, []string{"b", "c", "a"}, sortedNames(t, products, SortPriceLow))
	assert.Equal(t, []string{"a", "c", "b"}, sortedNames(t, products, SortPriceHigh))
	assert.Equal(t, []string{"b", "c", "a"}, sortedNames(t, products, SortPopularity))
	assert.Equal(t, []string{"b", "c", "a"}, sortedNames(t, products, SortRating))
	assert.Equal(t, []string{"b", "c", "a"}, sortedNames(t, products, SortNewest))
	assert.Equal(t, []string{"c", "a", "b"}, sortedNames(t, products, SortDiscountHigh))
	assert.Equal(t, []string{"b", "a", "c"}, sortedNames(t, products, SortDiscountLow))
	assert.Equal(t, []string{"b", "a", "c"}, sortedNames(t, products, SortFeatured))
}

func TestSortStabilityOnTies(t *testing.T) {
	// Identical sort keys everywhere: output must keep input order for every
	// sort, including an unrecognized one.
	same := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "first", Price: 25, Views: 7, AverageRating: 4.2, DiscountPercentage: 10, CreatedAt: same},
		{Name: "second", Price: 25, Views: 7, AverageRating: 4.2, DiscountPercentage: 10, CreatedAt: same},
		{Name: "third", Price: 25, Views: 7, AverageRating: 4.2, DiscountPercentage: 10, CreatedAt: same},
	}

	keys := []SortKey{
		SortFeatured, SortPriceLow, SortPriceHigh, SortPopularity,
		SortRating, SortNewest, SortDiscountHigh, SortDiscountLow,
		SortKey("garbage"),
	}
	for _, key := range keys {
		assert.Equal(t, []string{"first", "second", "third"}, sortedNames(t, products, key),
			"sort %q must be stable", key)
	}
}
