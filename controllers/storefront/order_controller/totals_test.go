package order_controller

import (
	"testing"

	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderLinesPricesAtSalePrice(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	product := models.Product{
		ID:                 id,
		Name:               "Stylish Summer Top",
		Price:              19.99,
		DiscountPercentage: 33,
	}

	items := []models.CartItem{
		{ProductID: id, Size: "M", Color: "Pink", Quantity: 2},
	}
	lines := buildOrderLines(items, map[string]models.Product{id.String(): product})
	require.Len(t, lines, 1)

	assert.Equal(t, "Stylish Summer Top", lines[0].ProductName)
	assert.Equal(t, 13.39, lines[0].UnitPrice)
	assert.Equal(t, 33, lines[0].DiscountPercentage)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 26.78, lines[0].LineTotal)
}

func TestBuildOrderLinesSkipsVanishedProducts(t *testing.T) {
	kept := uuid.Must(uuid.NewV7())
	gone := uuid.Must(uuid.NewV7())

	items := []models.CartItem{
		{ProductID: gone, Quantity: 1},
		{ProductID: kept, Quantity: 1},
	}
	catalog := map[string]models.Product{
		kept.String(): {ID: kept, Name: "Classic White Shirt", Price: 79.99},
	}

	lines := buildOrderLines(items, catalog)
	require.Len(t, lines, 1)
	assert.Equal(t, "Classic White Shirt", lines[0].ProductName)
}

func TestOrderTotalsShipping(t *testing.T) {
	cases := []struct {
		name         string
		lineTotals   []float64
		wantSubtotal float64
		wantShipping float64
		wantTotal    float64
	}{
		{"below threshold pays flat rate", []float64{100.00}, 100.00, 9.99, 109.99},
		{"at threshold ships free", []float64{150.00}, 150.00, 0, 150.00},
		{"above threshold ships free", []float64{89.99, 79.99}, 169.98, 0, 169.98},
		{"just under threshold", []float64{149.99}, 149.99, 9.99, 159.98},
		{"empty order owes nothing", nil, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := make([]models.OrderLine, len(tc.lineTotals))
			for i, lt := range tc.lineTotals {
				lines[i] = models.OrderLine{LineTotal: lt}
			}
			subtotal, shipping, total := orderTotals(lines)
			assert.Equal(t, tc.wantSubtotal, subtotal)
			assert.Equal(t, tc.wantShipping, shipping)
			assert.Equal(t, tc.wantTotal, total)
		})
	}
}
