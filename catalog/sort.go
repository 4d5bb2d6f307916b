package catalog

import "github.com/Velora-Fashion/velora-storefront-backend/models"

// SortKey selects the total order applied to a filtered list. The sort is
// always stable, so equal-key products keep their catalog order.
type SortKey string

const (
	SortFeatured     SortKey = "featured"
	SortPriceLow     SortKey = "price_low"
	SortPriceHigh    SortKey = "price_high"
	SortPopularity   SortKey = "popularity"
	SortRating       SortKey = "rating"
	SortNewest       SortKey = "newest"
	SortDiscountHigh SortKey = "discount_high"
	SortDiscountLow  SortKey = "discount_low"
)

// Normalize maps anything unrecognized to SortFeatured. A malformed sort
// parameter must never fail a render.
func (k SortKey) Normalize() SortKey {
	switch k {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortPopularity,
		SortRating, SortNewest, SortDiscountHigh, SortDiscountLow:
		return k
	}
	return SortFeatured
}

// less is the strict ordering for one sort key. Returning false for equal
// keys lets the stable sort preserve catalog order on ties.
func (k SortKey) less(a, b *models.Product) bool {
	switch k {
	case SortPriceLow:
		return a.Price < b.Price
	case SortPriceHigh:
		return a.Price > b.Price
	case SortPopularity:
		return a.Views > b.Views
	case SortRating:
		return a.AverageRating > b.AverageRating
	case SortNewest:
		return a.CreatedAt.After(b.CreatedAt)
	case SortDiscountHigh:
		return a.DiscountPercentage > b.DiscountPercentage
	case SortDiscountLow:
		return a.DiscountPercentage < b.DiscountPercentage
	default: // SortFeatured
		return a.Featured && !b.Featured
	}
}
