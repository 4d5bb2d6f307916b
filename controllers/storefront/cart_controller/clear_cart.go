package cart_controller

import (
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ClearCart godoc
// @Summary Clear a session's cart
// @Description Delete every cart line for the session.
// @Tags Storefront - Cart
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/cart/session/{session_id} [delete]
func ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StoreGorm.WithContext(ctx).
		Delete(&models.CartItem{}, "session_id = ?", sessionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", nil))
}
