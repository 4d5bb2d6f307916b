package wishlist_controller

import (
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RemoveFromWishlist godoc
// @Summary Remove a product from the wishlist
// @Description Delete one saved product for the session.
// @Tags Storefront - Wishlist
// @Produce json
// @Param session_id path string true "Session ID"
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistActionResult} "Removed from wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid product ID"
// @Failure 404 {object} models.ApiResponse "Not on wishlist"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/wishlist/{session_id}/{product_id} [delete]
func RemoveFromWishlist(c *gin.Context) {
	sessionID := c.Param("session_id")

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.StoreGorm.WithContext(ctx).
		Delete(&models.WishlistItem{}, "session_id = ? AND product_id = ?", sessionID, productID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update wishlist"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Not on wishlist"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from wishlist",
		models.WishlistActionResult{Added: false, ProductID: productID}))
}
