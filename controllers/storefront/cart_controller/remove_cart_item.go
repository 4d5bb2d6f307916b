package cart_controller

import (
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Description Delete one line from the cart.
// @Tags Storefront - Cart
// @Produce json
// @Param item_id path string true "Cart line ID"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Failure 400 {object} models.ApiResponse "Invalid cart line ID"
// @Failure 404 {object} models.ApiResponse "Cart line not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/cart/{item_id} [delete]
func RemoveCartItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart line ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.StoreGorm.WithContext(ctx).
		Delete(&models.CartItem{}, "id = ?", itemID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove item"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", nil))
}
