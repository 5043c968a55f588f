package models

import "time"

// Order statuses, in the order they normally progress.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Order is an immutable record of a checkout. TotalTRY is the
// authoritative amount; DisplayTotal is what the customer saw in their
// chosen currency and must never be used to recompute anything.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;type:varchar(20)"`
	CustomerName    string      `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string      `json:"customer_email" validate:"required,email"`
	CustomerPhone   string      `json:"customer_phone" validate:"omitempty,max=50"`
	CustomerAddress string      `json:"customer_address" validate:"required,max=500"`
	CustomerCity    string      `json:"customer_city" validate:"required,max=100"`
	CustomerCountry string      `json:"customer_country" validate:"required,max=100"`
	TotalTRY        float64     `json:"total_try" gorm:"column:total_try" validate:"required,gt=0"`
	Currency        string      `json:"currency" gorm:"default:TRY" validate:"required,oneof=TRY EUR USD"`
	DisplayTotal    float64     `json:"display_total" validate:"gte=0"`
	Status          string      `json:"status" gorm:"default:pending"`
	PaymentMethod   string      `json:"payment_method" gorm:"default:bank_transfer"`
	PaymentStatus   string      `json:"payment_status" gorm:"default:pending"`
	Notes           string      `json:"notes" validate:"omitempty,max=2000"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
}

// OrderItem snapshots a cart line at checkout time. Name and price are
// copied from the product so later catalog edits do not rewrite history.
type OrderItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required,max=200"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	PriceTRY    float64 `json:"price_try" gorm:"column:price_try" validate:"required,gt=0"`
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}
