package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItem marks a product as saved for a session. One row per
// (session, product) pair.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;uniqueIndex:idx_wishlist_session_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_session_product"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (wi *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if wi.ID == uuid.Nil {
		wi.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// WishlistRequest adds or toggles a product on a session's wishlist.
type WishlistRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

// WishlistActionResult tells the caller what actually happened. Added=false on
// a toggle means the product was removed.
type WishlistActionResult struct {
	Added     bool      `json:"added"`
	ProductID uuid.UUID `json:"product_id"`
}
