// Package cart models the shopper's cart as an injectable store so the
// checkout path can be exercised without any HTTP or rendering layer. Each
// session owns exactly one store; there is no cross-session sharing.
package cart

import (
	"sync"

	"lunaris/internal/models"
)

// MaxQuantity caps a single line. Quantities above it are clamped.
const MaxQuantity = 99

// Item is one cart line: a product and how many of it.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store is the cart contract used by the checkout flow.
type Store interface {
	Items() []Item
	Add(product models.Product)
	UpdateQuantity(productID uint, quantity int)
	Remove(productID uint)
	Clear()
	TotalBase() float64
}

// MemoryStore is the in-process Store implementation. It preserves
// insertion order for listing, which the total does not depend on.
type MemoryStore struct {
	mu    sync.Mutex
	lines map[uint]*Item
	order []uint
}

// NewMemoryStore returns an empty cart.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lines: make(map[uint]*Item)}
}

// Items returns the cart lines in insertion order.
func (s *MemoryStore) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *s.lines[id])
	}
	return items
}

// Add puts one unit of the product in the cart, incrementing the existing
// line if the product is already present.
func (s *MemoryStore) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[product.ID]; ok {
		if line.Quantity < MaxQuantity {
			line.Quantity++
		}
		return
	}
	s.lines[product.ID] = &Item{Product: product, Quantity: 1}
	s.order = append(s.order, product.ID)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line; quantities above MaxQuantity are clamped.
func (s *MemoryStore) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.lines[productID]; ok {
		line.Quantity = quantity
	}
}

// Remove deletes the line for the product; absent ids are a no-op.
func (s *MemoryStore) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. Called after a successful order submission.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[uint]*Item)
	s.order = nil
}

// TotalBase sums price_try times quantity over all lines. An empty cart
// totals zero.
func (s *MemoryStore) TotalBase() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Product.PriceTRY * float64(line.Quantity)
	}
	return total
}
