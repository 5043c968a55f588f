package repositories

import (
	"sort"
	"sync"
	"time"

	"lunaris/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It enforces order-number uniqueness the way the real schema does.
type MockOrderRepository struct {
	mu      sync.RWMutex
	orders  map[uint]models.Order
	numbers map[string]bool
	nextID  uint
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders:  make(map[uint]models.Order),
		numbers: make(map[string]bool),
		nextID:  1,
	}
}

// List returns all orders, newest first.
func (r *MockOrderRepository) List() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

// Create adds a new order, rejecting duplicate order numbers.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.numbers[order.OrderNumber] {
		return ErrDuplicate
	}
	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	r.numbers[order.OrderNumber] = true
	return nil
}

// Update applies a partial update to an existing order.
func (r *MockOrderRepository) Update(id uint, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := fields["status"].(string); ok {
		order.Status = v
	}
	if v, ok := fields["payment_status"].(string); ok {
		order.PaymentStatus = v
	}
	if v, ok := fields["notes"].(string); ok {
		order.Notes = v
	}
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
