package wishlist_controller

import (
	"net/http"

	"github.com/Velora-Fashion/velora-storefront-backend/config"
	"github.com/Velora-Fashion/velora-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToWishlist godoc
// @Summary Add a product to the wishlist
// @Description Save a product for the session. Adding an already-saved product is a no-op reported as added=true.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param item body models.WishlistRequest true "Wishlist entry"
// @Success 201 {object} models.ApiResponse{data=models.WishlistActionResult} "Added to wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/wishlist [post]
func AddToWishlist(c *gin.Context) {
	req, productID, ok := bindWishlistRequest(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ensureProductExists(ctx, productID); err != nil {
		respondProductLookup(c, err)
		return
	}

	// ON CONFLICT DO NOTHING instead of check-then-create: two concurrent
	// adds of the same product must both succeed, one as a no-op, rather
	// than one tripping the unique index.
	entry := models.WishlistItem{SessionID: req.SessionID, ProductID: productID}
	res := config.StoreGorm.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to wishlist"))
		return
	}

	if alreadyOnWishlist(res) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Already on wishlist",
			models.WishlistActionResult{Added: true, ProductID: productID}))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Added to wishlist",
		models.WishlistActionResult{Added: true, ProductID: productID}))
}

// alreadyOnWishlist reports whether a DO NOTHING insert hit an existing
// (session, product) row.
func alreadyOnWishlist(res *gorm.DB) bool {
	return res.Error == nil && res.RowsAffected == 0
}

func bindWishlistRequest(c *gin.Context) (models.WishlistRequest, uuid.UUID, bool) {
	var req models.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return req, uuid.Nil, false
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return req, uuid.Nil, false
	}

	return req, productID, true
}
