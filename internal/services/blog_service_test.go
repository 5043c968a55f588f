package services_test

import (
	"testing"

	"lunaris/internal/models"
	"lunaris/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a mock implementation of repositories.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(category string, publishedOnly bool) ([]models.BlogPost, error) {
	args := m.Called(category, publishedOnly)
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Create(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(post *models.BlogPost) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "firing-the-winter-collection", services.Slugify("Firing the Winter Collection"))
	assert.Equal(t, "glaze-notes-2", services.Slugify("  Glaze Notes #2! "))
	assert.Equal(t, "a-b-c", services.Slugify("a---b___c"))
	assert.Equal(t, "", services.Slugify("!!!"))
}

func TestBlogService_CreatePostDerivesSlug(t *testing.T) {
	repo := new(MockBlogRepository)
	service := services.NewBlogService(repo)

	repo.On("Create", mock.AnythingOfType("*models.BlogPost")).Return(nil).Once()

	post := models.BlogPost{
		TitleEN:   "Firing the Winter Collection",
		TitleTR:   "Kış Koleksiyonunu Pişirmek",
		ContentEN: "...",
		ContentTR: "...",
	}
	assert.NoError(t, service.CreatePost(&post))
	assert.Equal(t, "firing-the-winter-collection", post.Slug)
	assert.Equal(t, "production", post.Category)
	repo.AssertExpectations(t)
}

func TestBlogService_CreatePostKeepsExplicitSlug(t *testing.T) {
	repo := new(MockBlogRepository)
	service := services.NewBlogService(repo)
	repo.On("Create", mock.AnythingOfType("*models.BlogPost")).Return(nil).Once()

	post := models.BlogPost{Slug: "my-slug", TitleEN: "T", TitleTR: "T", ContentEN: "c", ContentTR: "c", Category: "studio"}
	assert.NoError(t, service.CreatePost(&post))
	assert.Equal(t, "my-slug", post.Slug)
	assert.Equal(t, "studio", post.Category)
	repo.AssertExpectations(t)
}

func TestBlogService_UpdatePost(t *testing.T) {
	repo := new(MockBlogRepository)
	service := services.NewBlogService(repo)

	existing := &models.BlogPost{ID: 3, Slug: "old-slug", TitleEN: "Old"}
	repo.On("GetBySlug", "old-slug").Return(existing, nil).Twice()

	// Without a new slug the identity is preserved.
	repo.On("Update", mock.MatchedBy(func(p *models.BlogPost) bool {
		return p.ID == 3 && p.Slug == "old-slug" && p.TitleEN == "New"
	})).Return(nil).Once()
	assert.NoError(t, service.UpdatePost("old-slug", &models.BlogPost{TitleEN: "New"}, ""))

	// A new slug renames the post.
	repo.On("Update", mock.MatchedBy(func(p *models.BlogPost) bool {
		return p.ID == 3 && p.Slug == "new-slug"
	})).Return(nil).Once()
	assert.NoError(t, service.UpdatePost("old-slug", &models.BlogPost{TitleEN: "New"}, "new-slug"))

	repo.AssertExpectations(t)
}
