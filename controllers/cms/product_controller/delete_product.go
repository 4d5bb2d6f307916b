package product_controller

import (
	"log"
	"net/http"

	filter_cache "github.com/Velora-Fashion/velora-storefront-backend/cache"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a product from the catalog. Existing order lines keep their snapshot; cart and wishlist entries pointing here are skipped at read time.
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /cms/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.StoreGorm.WithContext(ctx).
		Delete(&models.Product{}, "id = ?", productID)
	if res.Error != nil {
		log.Printf("[ERROR] Failed to delete product %s: %v", productID, res.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}
