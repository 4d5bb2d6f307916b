package product_controller

import (
	"net/http/httptest"
	"testing"

	"github.com/Velora-Fashion/velora-storefront-backend/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/store/products?"+rawQuery, nil)
	return c
}

func TestParseFilterConfigAbsentBoundsStayNil(t *testing.T) {
	cfg := parseFilterConfig(testContext(t, ""))
	assert.Empty(t, cfg.Category)
	assert.Empty(t, cfg.BrandName)
	assert.Nil(t, cfg.MinPrice)
	assert.Nil(t, cfg.MaxPrice)
	assert.Nil(t, cfg.MinDiscount)
	assert.Empty(t, cfg.Sizes)
}

func TestParseFilterConfigExplicitZeroIsABound(t *testing.T) {
	cfg := parseFilterConfig(testContext(t, "minPrice=0"))
	require.NotNil(t, cfg.MinPrice)
	assert.Equal(t, 0.0, *cfg.MinPrice)
}

func TestParseFilterConfigFullQuery(t *testing.T) {
	cfg := parseFilterConfig(testContext(t,
		"category=mens_shirts&brand=Velora+Atelier&minPrice=10.5&maxPrice=99.99&minDiscount=20&size=M&size=L&sortBy=price_low"))

	assert.Equal(t, "mens_shirts", cfg.Category)
	assert.Equal(t, "Velora Atelier", cfg.BrandName)
	require.NotNil(t, cfg.MinPrice)
	assert.Equal(t, 10.5, *cfg.MinPrice)
	require.NotNil(t, cfg.MaxPrice)
	assert.Equal(t, 99.99, *cfg.MaxPrice)
	require.NotNil(t, cfg.MinDiscount)
	assert.Equal(t, 20, *cfg.MinDiscount)
	assert.Equal(t, []string{"M", "L"}, cfg.Sizes)
	assert.Equal(t, catalog.SortPriceLow, cfg.SortBy)
}

func TestParseFilterConfigMalformedNumbersAreIgnored(t *testing.T) {
	cfg := parseFilterConfig(testContext(t, "minPrice=cheap&minDiscount=lots"))
	assert.Nil(t, cfg.MinPrice)
	assert.Nil(t, cfg.MinDiscount)
}

func TestParsePaginationDefaultsAndClamps(t *testing.T) {
	page, limit := parsePagination(testContext(t, ""))
	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)

	page, limit = parsePagination(testContext(t, "page=0&limit=500"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 12, limit)

	page, limit = parsePagination(testContext(t, "page=3&limit=24"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 24, limit)
}

func TestPaginateSlicesAfterRender(t *testing.T) {
	rendered := make([]catalog.Annotated, 25)
	for i := range rendered {
		rendered[i].Name = string(rune('a' + i))
	}

	pageItems, meta := paginate(rendered, 2, 10)
	require.Len(t, pageItems, 10)
	assert.Equal(t, rendered[10].Name, pageItems[0].Name)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 25, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	// Last partial page.
	pageItems, _ = paginate(rendered, 3, 10)
	assert.Len(t, pageItems, 5)

	// Page past the end is empty, not an error.
	pageItems, meta = paginate(rendered, 9, 10)
	assert.Empty(t, pageItems)
	assert.Equal(t, 3, meta.TotalPages)
}
