package filter_controller

import (
	"context"
	"log"
	"net/http"

	filter_cache "github.com/Velora-Fashion/velora-storefront-backend/cache"
	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get filter metadata for the storefront
// @Description Categories with product counts, distinct brands, distinct sizes and the store's price range. Cached for a few minutes.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata} "Filter metadata fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/filters [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := filter_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	meta, err := fetchFilterMetadata(ctx)
	if err != nil {
		log.Printf("ERROR fetching filter metadata: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filter_cache.Set(meta)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}

// fetchFilterMetadata runs the aggregates on the raw pgx pool; these queries
// never touch models, so GORM adds nothing here.
func fetchFilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	meta := &models.FilterMetadata{
		Categories: make([]models.CategoryCount, 0),
		Brands:     make([]string, 0),
		Sizes:      make([]string, 0),
	}

	rows, err := config.StoreDB.Query(ctx, `
		SELECT category, COUNT(*)
		FROM products
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var cc models.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			rows.Close()
			return nil, err
		}
		meta.Categories = append(meta.Categories, cc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = config.StoreDB.Query(ctx, `
		SELECT DISTINCT brand_name
		FROM products
		WHERE brand_name <> ''
		ORDER BY brand_name
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var brand string
		if err := rows.Scan(&brand); err != nil {
			rows.Close()
			return nil, err
		}
		meta.Brands = append(meta.Brands, brand)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = config.StoreDB.Query(ctx, `
		SELECT DISTINCT size_label
		FROM products, jsonb_array_elements_text(sizes) AS size_label
		ORDER BY size_label
	`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var size string
		if err := rows.Scan(&size); err != nil {
			rows.Close()
			return nil, err
		}
		meta.Sizes = append(meta.Sizes, size)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var priceRange models.PriceRangeData
	err = config.StoreDB.QueryRow(ctx, `
		SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM products
	`).Scan(&priceRange.Min, &priceRange.Max)
	if err != nil {
		return nil, err
	}
	meta.PriceRange = &priceRange

	return meta, nil
}
