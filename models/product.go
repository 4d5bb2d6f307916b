package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Categories (closed set)
// ═══════════════════════════════════════════════════════════

const (
	CategoryMensShirts    = "mens_shirts"
	CategoryMensPants     = "mens_pants"
	CategoryWomensDresses = "womens_dresses"
	CategoryWomensTops    = "womens_tops"
	CategoryCasualWear    = "casual_wear"
	CategoryFormalWear    = "formal_wear"
	CategorySportswear    = "sportswear"
)

var ValidCategories = []string{
	CategoryMensShirts,
	CategoryMensPants,
	CategoryWomensDresses,
	CategoryWomensTops,
	CategoryCasualWear,
	CategoryFormalWear,
	CategorySportswear,
}

// IsValidCategory reports whether tag is one of the known category tags.
func IsValidCategory(tag string) bool {
	for _, c := range ValidCategories {
		if c == tag {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                 uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string                     `json:"name" gorm:"not null;index"`
	Description        string                     `json:"description" gorm:"not null"`
	Category           string                     `json:"category" gorm:"not null;index"`
	BrandName          string                     `json:"brand_name" gorm:"index"`
	Price              float64                    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	DiscountPercentage int                        `json:"discount_percentage" gorm:"not null;default:0;check:discount_percentage >= 0 AND discount_percentage <= 100"`
	Sizes              datatypes.JSONSlice[string] `json:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Colors             datatypes.JSONSlice[string] `json:"colors" gorm:"type:jsonb;not null;default:'[]'"`
	Images             datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	StockQuantity      int                        `json:"stock_quantity" gorm:"not null;default:0"`
	Featured           bool                       `json:"featured" gorm:"not null;default:false;index"`
	Views              int                        `json:"views" gorm:"not null;default:0;index:idx_products_views,sort:desc"`
	AverageRating      float64                    `json:"average_rating" gorm:"type:numeric(3,2);not null;default:0;check:average_rating >= 0 AND average_rating <= 5"`
	CreatedAt          time.Time                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRequest is the CMS create/update payload.
type ProductRequest struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	BrandName          string   `json:"brand_name"`
	Price              float64  `json:"price" binding:"required,gte=0"`
	DiscountPercentage int      `json:"discount_percentage" binding:"gte=0,lte=100"`
	Sizes              []string `json:"sizes" binding:"required,min=1"`
	Colors             []string `json:"colors"`
	Images             []string `json:"images"`
	StockQuantity      int      `json:"stock_quantity" binding:"gte=0"`
	Featured           bool     `json:"featured"`
}
