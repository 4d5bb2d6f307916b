package wishlist_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleWishlist godoc
// @Summary Toggle a product on the wishlist
// @Description Add the product if absent, remove it if present. The result payload says which happened; presentation is the caller's choice.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body models.WishlistRequest true "Wishlist entry"
// @Success 200 {object} models.ApiResponse{data=models.WishlistActionResult} "Wishlist updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/wishlist/toggle [post]
func ToggleWishlist(c *gin.Context) {
	req, productID, ok := bindWishlistRequest(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ensureProductExists(ctx, productID); err != nil {
		respondProductLookup(c, err)
		return
	}

	var result models.WishlistActionResult

	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.WishlistItem
		err := tx.Where("session_id = ? AND product_id = ?", req.SessionID, productID).
			First(&existing).Error

		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result = models.WishlistActionResult{Added: false, ProductID: productID}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			entry := models.WishlistItem{SessionID: req.SessionID, ProductID: productID}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			result = models.WishlistActionResult{Added: true, ProductID: productID}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}

	message := "Removed from wishlist"
	if result.Added {
		message = "Added to wishlist"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
}

func ensureProductExists(ctx context.Context, productID uuid.UUID) error {
	var product models.Product
	return config.StoreGorm.WithContext(ctx).
		Select("id").
		First(&product, "id = ?", productID).Error
}

func respondProductLookup(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
}
