package product_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// SectionProducts godoc
// @Summary List products for a storefront section
// @Description Render the men's, women's or sale view. Sections share one pipeline and only differ in category scope, default sort, badge wording and the sale discount floor.
// @Tags Storefront - Products
// @Produce json
// @Param section path string true "Section slug (mens | womens | sale)"
// @Param category query string false "Category tag within the section"
// @Param brand query string false "Brand name (exact match)"
// @Param size query []string false "Sizes (repeatable)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param minDiscount query int false "Minimum discount percentage (inclusive)"
// @Param sortBy query string false "Sort key"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Section products fetched successfully"
// @Failure 404 {object} models.ApiResponse "Unknown section"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/sections/{section}/products [get]
func SectionProducts(c *gin.Context) {
	section, ok := catalog.SectionBySlug(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Unknown section"))
		return
	}

	page, limit := parsePagination(c)
	cfg := section.Apply(parseFilterConfig(c))

	products, err := fetchCatalog(c, section.Categories)
	if err != nil {
		log.Printf("ERROR in fetchCatalog for section %s: %v", section.Slug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	rendered := section.Pipeline().Render(products, cfg)
	pageItems, meta := paginate(rendered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		section.Title+" products fetched successfully",
		pageItems,
		meta,
	))
}
