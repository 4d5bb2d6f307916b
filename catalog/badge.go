package catalog

import (
	"math"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

// NewArrivalWindow is how long a product keeps its "new" badge.
const NewArrivalWindow = 30 * 24 * time.Hour

// Badge discount thresholds, highest priority first.
const (
	megaDealMinDiscount = 50
	hotSaleMinDiscount  = 30
	saleMinDiscount     = 20
)

// BadgeSet carries the label text a view uses for each badge rule. The rules
// and their priority are fixed; only the wording varies per view. An empty
// label disables its rule, which is how MEGA DEAL stays exclusive to sale
// views.
type BadgeSet struct {
	MegaDeal   string
	HotSale    string
	Sale       string
	Bestseller string
	New        string
}

// StorefrontBadges is the default label set for the men's and women's views.
// No MEGA DEAL here: a 60%-off product falls through to HOT SALE.
var StorefrontBadges = BadgeSet{
	HotSale:    "HOT SALE",
	Sale:       "SALE",
	Bestseller: "BESTSELLER",
	New:        "NEW",
}

// SaleBadges is the label set for sale-oriented views.
var SaleBadges = BadgeSet{
	MegaDeal:   "MEGA DEAL",
	HotSale:    "HOT DEAL",
	Sale:       "SALE",
	Bestseller: "BESTSELLER",
	New:        "NEW",
}

// For picks at most one badge for p. First match wins:
// discount >= 50, discount >= 30, discount >= 20, featured, created within
// the arrival window, otherwise none.
func (s BadgeSet) For(p *models.Product, now time.Time) string {
	switch {
	case s.MegaDeal != "" && p.DiscountPercentage >= megaDealMinDiscount:
		return s.MegaDeal
	case p.DiscountPercentage >= hotSaleMinDiscount:
		return s.HotSale
	case p.DiscountPercentage >= saleMinDiscount:
		return s.Sale
	case p.Featured:
		return s.Bestseller
	case now.Sub(p.CreatedAt) <= NewArrivalWindow:
		return s.New
	}
	return ""
}

// SalePrice returns the effective price after discount, rounded half-up to
// two decimals. Money stays float64 at numeric(12,2) scale; the single
// rounding point here keeps line totals from drifting by a cent.
func SalePrice(price float64, discountPercentage int) float64 {
	if discountPercentage <= 0 {
		return price
	}
	discounted := price * float64(100-discountPercentage) / 100
	return RoundCents(discounted)
}

// RoundCents rounds half-up to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
