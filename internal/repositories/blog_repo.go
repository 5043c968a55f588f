package repositories

import (
	"lunaris/internal/models"
)

// BlogRepository defines the interface for blog post data access.
type BlogRepository interface {
	// List returns posts newest first, optionally filtered by category
	// and/or restricted to published posts.
	List(category string, publishedOnly bool) ([]models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	Create(post *models.BlogPost) error
	Update(post *models.BlogPost) error
	Delete(slug string) error
}
