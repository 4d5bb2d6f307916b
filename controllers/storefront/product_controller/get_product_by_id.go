package product_controller

import (
	"errors"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Get detailed product information by ID, annotated with its badge and sale price. Pass view=sale for sale-view badge wording.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param view query string false "View context (sale)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

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

	pipeline := catalog.Storefront
	if c.Query("view") == "sale" {
		pipeline = catalog.SalePipeline
	}

	go incrementProductViews(productID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", pipeline.Annotate(product)))
}

// incrementProductViews bumps the popularity counter used by the popularity
// sort. Best effort, off the request path.
func incrementProductViews(productID uuid.UUID) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		UPDATE products
		SET views = COALESCE(views, 0) + 1
		WHERE id = ?
	`
	config.StoreGorm.WithContext(ctx).Exec(query, productID)
}
