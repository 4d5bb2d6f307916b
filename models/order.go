package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Payment is simulated, so orders start and usually stay
// pending until an operator moves them along.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a completed checkout for an anonymous session.
type Order struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `json:"order_number" gorm:"not null;uniqueIndex"`
	SessionID       string    `json:"session_id" gorm:"not null;index:idx_orders_session"`
	CustomerName    string    `json:"customer_name" gorm:"not null"`
	CustomerEmail   string    `json:"customer_email" gorm:"not null"`
	ShippingAddress string    `json:"shipping_address" gorm:"not null"`
	Subtotal        float64   `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	ShippingCost    float64   `json:"shipping_cost" gorm:"type:numeric(12,2);not null"`
	TotalAmount     float64   `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderLine snapshots one cart line at checkout time. Unit price is the
// effective sale price at the moment of purchase, not the list price.
type OrderLine struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName        string    `json:"product_name" gorm:"not null"`
	Size               string    `json:"size" gorm:"not null"`
	Color              string    `json:"color" gorm:"not null"`
	UnitPrice          float64   `json:"unit_price" gorm:"type:numeric(12,2);not null"`
	DiscountPercentage int       `json:"discount_percentage" gorm:"not null;default:0"`
	Quantity           int       `json:"quantity" gorm:"not null"`
	LineTotal          float64   `json:"line_total" gorm:"type:numeric(12,2);not null"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ol *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if ol.ID == uuid.Nil {
		ol.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderLine) TableName() string {
	return "order_lines"
}

// OrderWithLines combines an order and its lines for detail views.
type OrderWithLines struct {
	Order
	Lines []OrderLine `gorm:"-" json:"lines"`
}

// CreateOrderRequest is the checkout payload. The cart itself lives server
// side under the session id, so only customer details travel here.
type CreateOrderRequest struct {
	SessionID       string `json:"session_id" binding:"required"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// OrderHistoryResponse is the list-view row for a session's past orders.
type OrderHistoryResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}
