package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one line of an anonymous session's cart. The session id is an
// opaque token generated client-side; there is no user account behind it.
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;index:idx_cart_items_session"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	Size      string    `json:"size" gorm:"not null"`
	Color     string    `json:"color" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CartItem) TableName() string {
	return "cart_items"
}

// AddToCartRequest is the storefront add-to-cart payload.
type AddToCartRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest changes the quantity of one cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLineResponse is a cart line joined with its product for display.
type CartLineResponse struct {
	CartItem
	ProductName        string  `json:"product_name"`
	ProductImage       string  `json:"product_image,omitempty"`
	UnitPrice          float64 `json:"unit_price"`
	DiscountPercentage int     `json:"discount_percentage"`
	LineTotal          float64 `json:"line_total"`
}

// CartActionResult is returned by cart mutations so the caller decides how to
// present the outcome instead of the server assuming an alert.
type CartActionResult struct {
	Merged   bool      `json:"merged"`
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}
