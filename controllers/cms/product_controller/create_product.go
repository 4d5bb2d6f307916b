package product_controller

import (
	"log"
	"net/http"

	filter_cache "github.com/Velora-Fashion/velora-storefront-backend/cache"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a catalog product. Image URLs are stored as-is.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /cms/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product := productFromRequest(req)
	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[ERROR] Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

func productFromRequest(req models.ProductRequest) models.Product {
	return models.Product{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		BrandName:          req.BrandName,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Sizes:              req.Sizes,
		Colors:             req.Colors,
		Images:             req.Images,
		StockQuantity:      req.StockQuantity,
		Featured:           req.Featured,
	}
}
