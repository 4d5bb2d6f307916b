package order_controller

import (
	"errors"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetails godoc
// @Summary Get one order with its lines
// @Description Fetch a single order. The order must belong to the session; anything else is a 404, never a 403, to avoid confirming order ids.
// @Tags Storefront - Orders
// @Produce json
// @Param session_id path string true "Session ID"
// @Param order_id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderWithLines}
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders/{session_id}/{order_id} [get]
func GetOrderDetails(c *gin.Context) {
	order, ok := fetchSessionOrder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}

// fetchSessionOrder loads an order plus lines, scoped to the session in the
// path. Shared with the invoice download handler.
func fetchSessionOrder(c *gin.Context) (models.OrderWithLines, bool) {
	sessionID := c.Param("session_id")

	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return models.OrderWithLines{}, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.StoreGorm.WithContext(ctx).
		Where("id = ? AND session_id = ?", orderID, sessionID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return models.OrderWithLines{}, false
	}

	var lines []models.OrderLine
	if err := config.StoreGorm.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return models.OrderWithLines{}, false
	}

	return models.OrderWithLines{Order: order, Lines: lines}, true
}
