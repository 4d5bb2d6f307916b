package order_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get order history for a session
// @Description List the session's past orders, newest first.
// @Tags Storefront - Orders
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders/{session_id} [get]
func GetOrders(c *gin.Context) {
	sessionID := c.Param("session_id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.total_amount,
			COUNT(l.id) AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.session_id = ?
		GROUP BY o.id, o.order_number, o.status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
	`

	history := make([]models.OrderHistoryResponse, 0)
	if err := config.StoreGorm.WithContext(ctx).
		Raw(query, sessionID).
		Scan(&history).Error; err != nil {
		log.Printf("ERROR fetching orders for session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", history))
}
