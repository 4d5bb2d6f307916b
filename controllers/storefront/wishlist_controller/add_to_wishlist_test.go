package wishlist_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAlreadyOnWishlist(t *testing.T) {
	// A DO NOTHING insert that hit an existing row reports zero rows; that is
	// the duplicate-add case, not an error.
	assert.True(t, alreadyOnWishlist(&gorm.DB{RowsAffected: 0}))

	// A real insert touches one row.
	assert.False(t, alreadyOnWishlist(&gorm.DB{RowsAffected: 1}))

	// Failures are never mistaken for a duplicate.
	assert.False(t, alreadyOnWishlist(&gorm.DB{Error: gorm.ErrInvalidDB}))
}
