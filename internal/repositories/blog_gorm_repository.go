package repositories

import (
	"errors"
	"fmt"

	"lunaris/internal/models"

	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{db: db}
}

// List retrieves blog posts newest first.
func (r *GORMBlogRepository) List(category string, publishedOnly bool) ([]models.BlogPost, error) {
	q := r.db.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

// GetBySlug retrieves a post by its slug.
func (r *GORMBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post %q: %w", slug, err)
	}
	return &post, nil
}

// Create persists a new post.
func (r *GORMBlogRepository) Create(post *models.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update saves all post columns.
func (r *GORMBlogRepository) Update(post *models.BlogPost) error {
	res := r.db.Save(post)
	if res.Error != nil {
		return fmt.Errorf("failed to update blog post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the post with the given slug.
func (r *GORMBlogRepository) Delete(slug string) error {
	res := r.db.Where("slug = ?", slug).Delete(&models.BlogPost{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog post %q: %w", slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
