package product_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ListProducts godoc
// @Summary List storefront products with filters
// @Description Retrieve products with optional category, brand, size, price range, discount and sorting filters.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Category tag (exact match)"
// @Param brand query string false "Brand name (exact match)"
// @Param size query []string false "Sizes (repeatable, intersection match)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minDiscount query int false "Minimum discount percentage (inclusive)"
// @Param sortBy query string false "Sort key (featured, price_low, price_high, popularity, rating, newest, discount_high, discount_low)" default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func ListProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	cfg := parseFilterConfig(c)

	// Coarse narrowing in SQL when a category was chosen; everything else is
	// the pipeline's job.
	var categories []string
	if cfg.Category != "" {
		categories = []string{cfg.Category}
	}

	products, err := fetchCatalog(c, categories)
	if err != nil {
		log.Printf("ERROR in fetchCatalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	rendered := catalog.Storefront.Render(products, cfg)
	pageItems, meta := paginate(rendered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		pageItems,
		meta,
	))
}
