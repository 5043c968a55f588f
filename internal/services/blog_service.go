package services

import (
	"regexp"
	"strings"

	"lunaris/internal/models"
	"lunaris/internal/repositories"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, non-alphanumerics
// collapsed to single dashes, dashes trimmed from the ends.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// BlogService handles business logic for blog posts.
type BlogService struct {
	repo repositories.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

// ListPosts returns posts newest first. Public callers pass
// publishedOnly=true; the admin listing sees drafts too.
func (s *BlogService) ListPosts(category string, publishedOnly bool) ([]models.BlogPost, error) {
	return s.repo.List(category, publishedOnly)
}

// GetPost returns the post with the given slug.
func (s *BlogService) GetPost(slug string) (*models.BlogPost, error) {
	return s.repo.GetBySlug(slug)
}

// CreatePost persists a new post, deriving the slug from the English
// title when none is supplied.
func (s *BlogService) CreatePost(post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.TitleEN)
	}
	if post.Category == "" {
		post.Category = "production"
	}
	return s.repo.Create(post)
}

// UpdatePost applies new field values to the post at slug. A non-empty
// newSlug renames the post.
func (s *BlogService) UpdatePost(slug string, updated *models.BlogPost, newSlug string) error {
	existing, err := s.repo.GetBySlug(slug)
	if err != nil {
		return err
	}

	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.Slug = existing.Slug
	if newSlug != "" {
		updated.Slug = newSlug
	}
	return s.repo.Update(updated)
}

// DeletePost removes the post with the given slug.
func (s *BlogService) DeletePost(slug string) error {
	return s.repo.Delete(slug)
}
