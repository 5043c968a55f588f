package repositories

import (
	"lunaris/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns products with images, optionally filtered by category
	// and/or featured flag. categoryID of zero means no category filter.
	List(categoryID uint, featuredOnly bool) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// ReplaceImages drops the product's image list and writes urls in
	// order, flagging the first as primary.
	ReplaceImages(productID uint, urls []string) error
	Delete(id uint) error
}
