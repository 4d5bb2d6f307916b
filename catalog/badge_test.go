package catalog

import (
	"testing"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestBadgePriorityFirstMatchWins(t *testing.T) {
	now := time.Now()

	// A 60%-off featured new arrival triggers every rule at once. Only the
	// highest-priority one applies.
	p := models.Product{
		DiscountPercentage: 60,
		Featured:           true,
		CreatedAt:          now.Add(-24 * time.Hour),
	}

	assert.Equal(t, "MEGA DEAL", SaleBadges.For(&p, now))
	// Storefront views have no mega-deal rule, so it falls through.
	assert.Equal(t, "HOT SALE", StorefrontBadges.For(&p, now))
}

func TestBadgeThresholds(t *testing.T) {
	now := time.Now()
	old := now.Add(-90 * 24 * time.Hour)

	cases := []struct {
		name     string
		discount int
		want     string
	}{
		{"exactly 50 is mega deal", 50, "MEGA DEAL"},
		{"49 drops to hot deal", 49, "HOT DEAL"},
		{"exactly 30 is hot deal", 30, "HOT DEAL"},
		{"29 drops to sale", 29, "SALE"},
		{"exactly 20 is sale", 20, "SALE"},
		{"19 gets nothing", 19, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := models.Product{DiscountPercentage: tc.discount, CreatedAt: old}
			assert.Equal(t, tc.want, SaleBadges.For(&p, now))
		})
	}
}

func TestBadgeFeaturedBeatsNew(t *testing.T) {
	now := time.Now()
	p := models.Product{Featured: true, CreatedAt: now.Add(-time.Hour)}
	assert.Equal(t, "BESTSELLER", StorefrontBadges.For(&p, now))

	p.Featured = false
	assert.Equal(t, "NEW", StorefrontBadges.For(&p, now))
}

func TestBadgeNewArrivalWindow(t *testing.T) {
	now := time.Now()

	inside := models.Product{CreatedAt: now.Add(-29 * 24 * time.Hour)}
	assert.Equal(t, "NEW", StorefrontBadges.For(&inside, now))

	outside := models.Product{CreatedAt: now.Add(-31 * 24 * time.Hour)}
	assert.Equal(t, "", StorefrontBadges.For(&outside, now))
}

func TestSalePrice(t *testing.T) {
	// 19.99 at 33% off is 13.3933, which rounds half-up to 13.39.
	assert.Equal(t, 13.39, SalePrice(19.99, 33))

	// No discount leaves the price untouched.
	assert.Equal(t, 19.99, SalePrice(19.99, 0))
	assert.Equal(t, 19.99, SalePrice(19.99, -5))

	// Half-cent boundaries round up.
	assert.Equal(t, 50.0, SalePrice(100.0, 50))
	assert.Equal(t, 0.05, RoundCents(0.045))
}
