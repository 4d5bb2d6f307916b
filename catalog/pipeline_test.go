package catalog

import (
	"testing"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedPipeline(badges BadgeSet, now time.Time) Pipeline {
	return Pipeline{Badges: badges, Now: func() time.Time { return now }}
}

func TestRenderNoOpConfigKeepsEverything(t *testing.T) {
	products := []models.Product{
		{Name: "a", Price: 10},
		{Name: "b", Price: 20},
	}
	rendered := Storefront.Render(products, FilterConfig{})
	require.Len(t, rendered, 2)
	assert.Equal(t, "a", rendered[0].Name)
	assert.Equal(t, "b", rendered[1].Name)
}

func TestRenderNeverMutatesInput(t *testing.T) {
	products := []models.Product{
		{Name: "expensive", Price: 99},
		{Name: "cheap", Price: 1},
	}
	_ = Storefront.Render(products, FilterConfig{SortBy: SortPriceLow})
	assert.Equal(t, "expensive", products[0].Name)
	assert.Equal(t, "cheap", products[1].Name)
}

func TestRenderFilterNarrowing(t *testing.T) {
	min := 15.0
	max := 30.0
	disc := 20

	products := []models.Product{
		{Name: "keep", Category: models.CategoryMensShirts, BrandName: "Velora Atelier", Price: 20, DiscountPercentage: 25, Sizes: []string{"M", "L"}},
		{Name: "wrong category", Category: models.CategoryWomensTops, BrandName: "Velora Atelier", Price: 20, DiscountPercentage: 25, Sizes: []string{"M"}},
		{Name: "wrong brand", Category: models.CategoryMensShirts, BrandName: "Northloop", Price: 20, DiscountPercentage: 25, Sizes: []string{"M"}},
		{Name: "too cheap", Category: models.CategoryMensShirts, BrandName: "Velora Atelier", Price: 10, DiscountPercentage: 25, Sizes: []string{"M"}},
		{Name: "too expensive", Category: models.CategoryMensShirts, BrandName: "Velora Atelier", Price: 40, DiscountPercentage: 25, Sizes: []string{"M"}},
		{Name: "discount too low", Category: models.CategoryMensShirts, BrandName: "Velora Atelier", Price: 20, DiscountPercentage: 10, Sizes: []string{"M"}},
		{Name: "no matching size", Category: models.CategoryMensShirts, BrandName: "Velora Atelier", Price: 20, DiscountPercentage: 25, Sizes: []string{"XS"}},
	}

	cfg := FilterConfig{
		Category:    models.CategoryMensShirts,
		BrandName:   "Velora Atelier",
		MinPrice:    &min,
		MaxPrice:    &max,
		MinDiscount: &disc,
		Sizes:       []string{"M", "XL"},
	}
	rendered := Storefront.Render(products, cfg)
	require.Len(t, rendered, 1)
	assert.Equal(t, "keep", rendered[0].Name)
}

func TestRenderBoundsAreInclusive(t *testing.T) {
	min := 10.0
	max := 10.0
	products := []models.Product{{Name: "edge", Price: 10}}
	rendered := Storefront.Render(products, FilterConfig{MinPrice: &min, MaxPrice: &max})
	assert.Len(t, rendered, 1)
}

func TestRenderExplicitZeroMinPriceIsARealBound(t *testing.T) {
	zero := 0.0
	products := []models.Product{
		{Name: "free", Price: 0},
		{Name: "refund glitch", Price: -5},
		{Name: "normal", Price: 25},
	}

	withBound := Storefront.Render(products, FilterConfig{MinPrice: &zero})
	require.Len(t, withBound, 2)
	assert.Equal(t, "free", withBound[0].Name)
	assert.Equal(t, "normal", withBound[1].Name)

	// Without the bound the negative-price record still renders.
	noBound := Storefront.Render(products, FilterConfig{})
	assert.Len(t, noBound, 3)
}

func TestRenderProductWithoutSizesMatchesNoSizeFilter(t *testing.T) {
	products := []models.Product{
		{Name: "sized", Sizes: []string{"M"}},
		{Name: "unsized"},
	}

	rendered := Storefront.Render(products, FilterConfig{Sizes: []string{"M"}})
	require.Len(t, rendered, 1)
	assert.Equal(t, "sized", rendered[0].Name)

	// With no size filter the unsized product renders normally.
	assert.Len(t, Storefront.Render(products, FilterConfig{}), 2)
}

func TestRenderAnnotatesBadgesAndSalePrice(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	pl := fixedPipeline(StorefrontBadges, now)

	products := []models.Product{
		{Name: "discounted", Price: 19.99, DiscountPercentage: 33, CreatedAt: now.AddDate(-1, 0, 0)},
		{Name: "plain", Price: 50, CreatedAt: now.AddDate(-1, 0, 0)},
	}

	rendered := pl.Render(products, FilterConfig{})
	require.Len(t, rendered, 2)

	assert.Equal(t, "HOT SALE", rendered[0].Badge)
	assert.True(t, rendered[0].OnSale)
	assert.Equal(t, 13.39, rendered[0].SalePrice)

	assert.Equal(t, "", rendered[1].Badge)
	assert.False(t, rendered[1].OnSale)
	assert.Equal(t, 50.0, rendered[1].SalePrice)
}

func TestRenderSaleViewScenario(t *testing.T) {
	// The sale landing: only discounted products, deepest discount first,
	// 60% off earns MEGA DEAL.
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	section, ok := SectionBySlug("sale")
	require.True(t, ok)

	products := []models.Product{
		{Name: "full price", Price: 80, CreatedAt: now},
		{Name: "small cut", Price: 60, DiscountPercentage: 15, CreatedAt: now.AddDate(-1, 0, 0)},
		{Name: "big cut", Price: 100, DiscountPercentage: 60, CreatedAt: now.AddDate(-1, 0, 0)},
	}

	pl := fixedPipeline(section.Badges, now)
	rendered := pl.Render(products, section.Apply(FilterConfig{}))
	require.Len(t, rendered, 2)

	assert.Equal(t, "big cut", rendered[0].Name)
	assert.Equal(t, "MEGA DEAL", rendered[0].Badge)
	assert.Equal(t, 40.0, rendered[0].SalePrice)

	assert.Equal(t, "small cut", rendered[1].Name)
	assert.Equal(t, "", rendered[1].Badge) // 15% is below every badge threshold
}

func TestAnnotateSingleProduct(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	pl := fixedPipeline(StorefrontBadges, now)

	a := pl.Annotate(models.Product{Name: "solo", Price: 100, DiscountPercentage: 20, CreatedAt: now})
	assert.Equal(t, "SALE", a.Badge)
	assert.True(t, a.OnSale)
	assert.Equal(t, 80.0, a.SalePrice)
}

func TestRenderIdempotentForSameInput(t *testing.T) {
	products := []models.Product{
		{Name: "x", Price: 5, Views: 3},
		{Name: "y", Price: 5, Views: 9},
	}
	cfg := FilterConfig{SortBy: SortPopularity}
	first := Storefront.Render(products, cfg)
	second := Storefront.Render(products, cfg)
	assert.Equal(t, first, second)
}
