package order_controller

import (
	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
)

// Shipping: flat rate, waived above the free-shipping threshold. Payment is
// simulated, so there is no tax or gateway fee to add.
const (
	flatShippingCost      = 9.99
	freeShippingThreshold = 150.00
)

// buildOrderLines prices each cart item at the product's current effective
// sale price and snapshots everything the order needs. Items whose product
// vanished from the catalog are skipped, matching cart display behavior.
func buildOrderLines(items []models.CartItem, productsByID map[string]models.Product) []models.OrderLine {
	lines := make([]models.OrderLine, 0, len(items))
	for _, item := range items {
		product, ok := productsByID[item.ProductID.String()]
		if !ok {
			continue
		}
		unit := catalog.SalePrice(product.Price, product.DiscountPercentage)
		lines = append(lines, models.OrderLine{
			ProductID:          product.ID,
			ProductName:        product.Name,
			Size:               item.Size,
			Color:              item.Color,
			UnitPrice:          unit,
			DiscountPercentage: product.DiscountPercentage,
			Quantity:           item.Quantity,
			LineTotal:          catalog.RoundCents(unit * float64(item.Quantity)),
		})
	}
	return lines
}

// orderTotals sums already-rounded line totals, so the only rounding left is
// presentational.
func orderTotals(lines []models.OrderLine) (subtotal, shipping, total float64) {
	for _, line := range lines {
		subtotal += line.LineTotal
	}
	subtotal = catalog.RoundCents(subtotal)

	if subtotal > 0 && subtotal < freeShippingThreshold {
		shipping = flatShippingCost
	}

	total = catalog.RoundCents(subtotal + shipping)
	return subtotal, shipping, total
}
