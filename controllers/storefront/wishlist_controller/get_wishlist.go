package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get wishlist for a session
// @Description List the session's saved products, badge-annotated like any listing view.
// @Tags Storefront - Wishlist
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.ApiResponse "Wishlist fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/wishlist/{session_id} [get]
func GetWishlist(c *gin.Context) {
	sessionID := c.Param("session_id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var entries []models.WishlistItem
	if err := config.StoreGorm.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		log.Printf("ERROR fetching wishlist for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	annotated := make([]catalog.Annotated, 0, len(entries))
	if len(entries) > 0 {
		productIDs := make([]any, 0, len(entries))
		for _, e := range entries {
			productIDs = append(productIDs, e.ProductID)
		}

		var products []models.Product
		if err := config.StoreGorm.WithContext(ctx).
			Where("id IN ?", productIDs).
			Find(&products).Error; err != nil {
			log.Printf("ERROR joining wishlist products: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
			return
		}

		byID := make(map[string]models.Product, len(products))
		for _, p := range products {
			byID[p.ID.String()] = p
		}

		// Keep the order items were saved in; skip vanished products.
		for _, e := range entries {
			if p, ok := byID[e.ProductID.String()]; ok {
				annotated = append(annotated, catalog.Storefront.Annotate(p))
			}
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", annotated))
}
