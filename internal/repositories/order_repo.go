package repositories

import (
	"lunaris/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// List returns all orders, newest first, with their line items.
	List() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// Create persists the order and its line items atomically. Returns
	// ErrDuplicate if the order number is already taken.
	Create(order *models.Order) error
	// Update applies a partial column update (status, payment_status,
	// notes) to an existing order.
	Update(id uint, fields map[string]interface{}) error
}
