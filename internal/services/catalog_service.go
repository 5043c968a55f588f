package services

import (
	"lunaris/internal/models"
	"lunaris/internal/repositories"
)

// CatalogService handles business logic for the public catalog and the
// admin product screens.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts returns products with images, optionally filtered.
func (s *CatalogService) ListProducts(categoryID uint, featuredOnly bool) ([]models.Product, error) {
	return s.productRepo.List(categoryID, featuredOnly)
}

// GetProduct returns a single product with its images.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct persists a new product. imageURLs become the product's
// ordered image list; the first one is the primary.
func (s *CatalogService) CreateProduct(product *models.Product, imageURLs []string) error {
	for i, url := range imageURLs {
		product.Images = append(product.Images, models.ProductImage{
			ImageURL:  url,
			IsPrimary: i == 0,
			SortOrder: i,
		})
	}
	return s.productRepo.Create(product)
}

// UpdateProduct saves product fields. A non-nil imageURLs slice replaces
// the image list; nil leaves images untouched.
func (s *CatalogService) UpdateProduct(product *models.Product, imageURLs []string) error {
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	if imageURLs != nil {
		return s.productRepo.ReplaceImages(product.ID, imageURLs)
	}
	return nil
}

// DeleteProduct removes a product and its images.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}

// ListCategories returns all categories in display order.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}
