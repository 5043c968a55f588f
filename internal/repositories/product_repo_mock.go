package repositories

import (
	"sort"
	"sync"

	"lunaris/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository used in unit tests.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// List returns products matching the filters, ordered like the GORM
// implementation: sort_order ascending.
func (r *MockProductRepository) List(categoryID uint, featuredOnly bool) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if featuredOnly && !p.Featured {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SortOrder != list[j].SortOrder {
			return list[i].SortOrder < list[j].SortOrder
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Create adds a new product, assigning an ID when none is set.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return ErrNotFound
	}
	images := stored.Images
	r.products[product.ID] = *product
	// Images are managed through ReplaceImages only.
	p := r.products[product.ID]
	p.Images = images
	r.products[product.ID] = p
	return nil
}

// ReplaceImages rewrites the product's image list.
func (r *MockProductRepository) ReplaceImages(productID uint, urls []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return ErrNotFound
	}
	p.Images = nil
	for i, url := range urls {
		p.Images = append(p.Images, models.ProductImage{
			ProductID: productID,
			ImageURL:  url,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}
	r.products[productID] = p
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}
