package order_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/Velora-Fashion/velora-storefront-backend/services"
	"github.com/Velora-Fashion/velora-storefront-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Create an order from the session's cart. Lines are priced at the current effective sale price, the cart is cleared on success, and a confirmation email is sent best-effort.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Checkout details"
// @Success 201 {object} models.ApiResponse{data=models.OrderWithLines} "Order created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request or empty cart"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	var created models.OrderWithLines
	emptyCart := false

	err := config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("session_id = ?", req.SessionID).
			Order("created_at ASC").
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			emptyCart = true
			return gorm.ErrRecordNotFound
		}

		productIDs := make([]any, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		var products []models.Product
		if err := tx.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		byID := make(map[string]models.Product, len(products))
		for _, p := range products {
			byID[p.ID.String()] = p
		}

		lines := buildOrderLines(items, byID)
		if len(lines) == 0 {
			// Every cart line pointed at a vanished product.
			emptyCart = true
			return gorm.ErrRecordNotFound
		}
		subtotal, shipping, total := orderTotals(lines)

		now := time.Now().UTC()
		orderNumber, err := utils.NextOrderNumber(tx, now)
		if err != nil {
			return err
		}

		order := models.Order{
			OrderNumber:     orderNumber,
			SessionID:       req.SessionID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			ShippingAddress: req.ShippingAddress,
			Subtotal:        subtotal,
			ShippingCost:    shipping,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		// Checkout empties the cart.
		if err := tx.Delete(&models.CartItem{}, "session_id = ?", req.SessionID).Error; err != nil {
			return err
		}

		created = models.OrderWithLines{Order: order, Lines: lines}
		return nil
	})
	if err != nil {
		if emptyCart {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		log.Printf("ERROR creating order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	log.Printf("✅ Order %s created for session %s (%.2f)", created.OrderNumber, req.SessionID, created.TotalAmount)

	// Best effort; checkout never fails on email problems.
	go func(order models.OrderWithLines) {
		if err := services.SendOrderConfirmationEmail(order); err != nil {
			log.Printf("⚠️ Failed to send confirmation email for %s: %v", order.OrderNumber, err)
		}
	}(created)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", created))
}
