package catalog

import (
	"testing"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionBySlug(t *testing.T) {
	for _, slug := range []string{"mens", "womens", "sale"} {
		_, ok := SectionBySlug(slug)
		assert.True(t, ok, slug)
	}
	_, ok := SectionBySlug("kids")
	assert.False(t, ok)
}

func TestSectionCategoryScopes(t *testing.T) {
	mens, _ := SectionBySlug("mens")
	womens, _ := SectionBySlug("womens")
	sale, _ := SectionBySlug("sale")

	assert.Contains(t, mens.Categories, models.CategoryMensShirts)
	assert.NotContains(t, mens.Categories, models.CategoryWomensDresses)

	assert.Contains(t, womens.Categories, models.CategoryWomensTops)
	assert.NotContains(t, womens.Categories, models.CategoryMensPants)

	// Unisex categories appear in both gendered sections.
	for _, shared := range []string{models.CategoryCasualWear, models.CategoryFormalWear, models.CategorySportswear} {
		assert.Contains(t, mens.Categories, shared)
		assert.Contains(t, womens.Categories, shared)
	}

	assert.ElementsMatch(t, models.ValidCategories, sale.Categories)
}

func TestSectionApplyDefaults(t *testing.T) {
	sale, _ := SectionBySlug("sale")

	cfg := sale.Apply(FilterConfig{})
	assert.Equal(t, SortDiscountHigh, cfg.SortBy)
	require.NotNil(t, cfg.MinDiscount)
	assert.Equal(t, 1, *cfg.MinDiscount)
}

func TestSectionApplyKeepsUserChoices(t *testing.T) {
	sale, _ := SectionBySlug("sale")

	thirty := 30
	cfg := sale.Apply(FilterConfig{SortBy: SortPriceLow, MinDiscount: &thirty})
	assert.Equal(t, SortPriceLow, cfg.SortBy)
	assert.Equal(t, 30, *cfg.MinDiscount)

	// A user floor below the section floor is raised to it.
	zero := 0
	cfg = sale.Apply(FilterConfig{MinDiscount: &zero})
	assert.Equal(t, 1, *cfg.MinDiscount)
}

func TestSectionBadgeWording(t *testing.T) {
	mens, _ := SectionBySlug("mens")
	sale, _ := SectionBySlug("sale")

	assert.Empty(t, mens.Badges.MegaDeal)
	assert.Equal(t, "MEGA DEAL", sale.Badges.MegaDeal)
	assert.Equal(t, "HOT SALE", mens.Badges.HotSale)
	assert.Equal(t, "HOT DEAL", sale.Badges.HotSale)
}
