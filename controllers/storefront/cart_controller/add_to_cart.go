package cart_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddToCart godoc
// @Summary Add a product to the cart
// @Description Add a product/size/color line to the session's cart. Adding the same combination again merges quantities into the existing line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Cart line"
// @Success 201 {object} models.ApiResponse{data=models.CartActionResult} "Added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/cart [post]
func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// The product must exist and carry the requested size.
	var product models.Product
	if err := config.StoreGorm.WithContext(ctx).
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}
	if !hasSize(product.Sizes, req.Size) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Size not available for this product"))
		return
	}

	var result models.CartActionResult

	err = config.StoreGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where(
			"session_id = ? AND product_id = ? AND size = ? AND color = ?",
			req.SessionID, productID, req.Size, req.Color,
		).First(&existing).Error

		switch {
		case err == nil:
			// Same line already in the cart: merge quantities.
			existing.Quantity += req.Quantity
			if err := tx.Model(&existing).Update("quantity", existing.Quantity).Error; err != nil {
				return err
			}
			result = models.CartActionResult{Merged: true, ItemID: existing.ID, Quantity: existing.Quantity}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			item := models.CartItem{
				SessionID: req.SessionID,
				ProductID: productID,
				Size:      req.Size,
				Color:     req.Color,
				Quantity:  req.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			result = models.CartActionResult{Merged: false, ItemID: item.ID, Quantity: item.Quantity}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		log.Printf("ERROR adding to cart: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Added to cart", result))
}

func hasSize(sizes []string, want string) bool {
	for _, s := range sizes {
		if s == want {
			return true
		}
	}
	return false
}
