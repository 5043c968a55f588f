package repositories

import (
	"errors"
	"fmt"

	"lunaris/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, sort_order ASC")
}

// List retrieves products ordered by sort_order, newest first within the
// same slot, with their images and category preloaded.
func (r *GORMProductRepository) List(categoryID uint, featuredOnly bool) ([]models.Product, error) {
	q := r.db.Preload("Images", preloadImages).Preload("Category")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if featuredOnly {
		q = q.Where("featured = ?", true)
	}

	var products []models.Product
	if err := q.Order("sort_order ASC, created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product with its images.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images", preloadImages).Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product together with any images attached to it.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update saves all product columns. Images are managed separately via
// ReplaceImages so a field edit does not touch the image list.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Images", "Category").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceImages rewrites the product's image list in one transaction.
func (r *GORMProductRepository) ReplaceImages(productID uint, urls []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to clear images for product %d: %w", productID, err)
		}
		for i, url := range urls {
			img := models.ProductImage{
				ProductID: productID,
				ImageURL:  url,
				IsPrimary: i == 0,
				SortOrder: i,
			}
			if err := tx.Create(&img).Error; err != nil {
				return fmt.Errorf("failed to insert image for product %d: %w", productID, err)
			}
		}
		return nil
	})
}

// Delete removes a product; its images go with it via the FK cascade.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Select("Images").Delete(&models.Product{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
