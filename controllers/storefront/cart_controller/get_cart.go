package cart_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get cart for a session
// @Description List the session's cart lines joined with current product data. Lines whose product has been removed from the catalog are skipped.
// @Tags Storefront - Cart
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/cart/{session_id} [get]
func GetCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var items []models.CartItem
	if err := config.StoreGorm.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("ERROR fetching cart for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	lines, err := buildCartLines(items)
	if err != nil {
		log.Printf("ERROR joining cart products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", lines))
}

// buildCartLines joins cart items with their products and prices each line at
// the product's current effective sale price.
func buildCartLines(items []models.CartItem) ([]models.CartLineResponse, error) {
	lines := make([]models.CartLineResponse, 0, len(items))
	if len(items) == 0 {
		return lines, nil
	}

	productIDs := make([]any, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var products []models.Product
	if err := config.StoreGorm.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.String()] = p
	}

	for _, item := range items {
		product, ok := byID[item.ProductID.String()]
		if !ok {
			// Product vanished from the catalog since it was added.
			continue
		}
		unit := catalog.SalePrice(product.Price, product.DiscountPercentage)
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lines = append(lines, models.CartLineResponse{
			CartItem:           item,
			ProductName:        product.Name,
			ProductImage:       image,
			UnitPrice:          unit,
			DiscountPercentage: product.DiscountPercentage,
			LineTotal:          catalog.RoundCents(unit * float64(item.Quantity)),
		})
	}

	return lines, nil
}
