package product_controller

import (
	"strconv"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterConfig builds the per-render pipeline config from the query
// string. Numeric bounds are only set when the parameter is present, so an
// explicit minPrice=0 is a real bound while an absent one imposes nothing.
func parseFilterConfig(c *gin.Context) catalog.FilterConfig {
	cfg := catalog.FilterConfig{
		Category:  c.Query("category"),
		BrandName: c.Query("brand"),
		Sizes:     c.QueryArray("size"),
		SortBy:    catalog.SortKey(c.Query("sortBy")),
	}

	if s := c.Query("minPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.MinPrice = &v
		}
	}
	if s := c.Query("maxPrice"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.MaxPrice = &v
		}
	}
	if s := c.Query("minDiscount"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			cfg.MinDiscount = &v
		}
	}

	return cfg
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices an already-rendered list. The pipeline re-sorts the whole
// result each render, so pagination has to happen after it, not in SQL.
func paginate(rendered []catalog.Annotated, page, limit int) ([]catalog.Annotated, *models.Pagination) {
	total := len(rendered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return rendered[start:end], &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ─────────────────────────────────────────────────────────────
// Database fetcher
// ─────────────────────────────────────────────────────────────

// fetchCatalog pulls the candidate products for a view. Only coarse narrowing
// happens in SQL (category scope); the pipeline re-filters and re-sorts the
// result in memory and must stay correct standalone.
func fetchCatalog(c *gin.Context, categories []string) ([]models.Product, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.StoreGorm.WithContext(ctx).Order("created_at ASC")
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}

	products := make([]models.Product, 0)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
