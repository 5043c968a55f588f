package handlers

import (
	"errors"
	"log"

	"lunaris/internal/models"
	"lunaris/internal/repositories"
	"lunaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public blog routes.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/blog", h.HandleListPosts)
	router.Get("/blog/:slug", h.HandleGetPost)
}

// RegisterAdminRoutes registers the blog management routes.
func (h *BlogHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/blog", h.HandleListAllPosts)
	router.Post("/blog", h.HandleCreatePost)
	router.Put("/blog/:slug", h.HandleUpdatePost)
	router.Delete("/blog/:slug", h.HandleDeletePost)
}

// HandleListPosts returns published posts, optionally filtered by
// ?category=.
func (h *BlogHandler) HandleListPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.Query("category"), true)
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog posts",
		})
	}
	return c.JSON(posts)
}

// HandleListAllPosts returns every post including drafts, for the admin
// screen.
func (h *BlogHandler) HandleListAllPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.Query("category"), false)
	if err != nil {
		log.Printf("Error listing blog posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog posts",
		})
	}
	return c.JSON(posts)
}

// HandleGetPost returns the post with the given slug.
func (h *BlogHandler) HandleGetPost(c *fiber.Ctx) error {
	post, err := h.service.GetPost(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog post not found",
			})
		}
		log.Printf("Error getting blog post %q: %v", c.Params("slug"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog post",
		})
	}
	return c.JSON(post)
}

// blogRequest is the admin create/update payload. NewSlug renames a post
// on update.
type blogRequest struct {
	Slug       string `json:"slug" validate:"omitempty,max=200"`
	TitleEN    string `json:"title_en" validate:"required,min=2,max=300"`
	TitleTR    string `json:"title_tr" validate:"required,min=2,max=300"`
	ExcerptEN  string `json:"excerpt_en" validate:"omitempty,max=1000"`
	ExcerptTR  string `json:"excerpt_tr" validate:"omitempty,max=1000"`
	ContentEN  string `json:"content_en" validate:"required"`
	ContentTR  string `json:"content_tr" validate:"required"`
	CoverImage string `json:"cover_image" validate:"omitempty,max=500"`
	Category   string `json:"category" validate:"omitempty,max=100"`
	Published  bool   `json:"published"`
	NewSlug    string `json:"new_slug" validate:"omitempty,max=200"`
}

func (req *blogRequest) toModel() models.BlogPost {
	return models.BlogPost{
		Slug:       req.Slug,
		TitleEN:    req.TitleEN,
		TitleTR:    req.TitleTR,
		ExcerptEN:  req.ExcerptEN,
		ExcerptTR:  req.ExcerptTR,
		ContentEN:  req.ContentEN,
		ContentTR:  req.ContentTR,
		CoverImage: req.CoverImage,
		Category:   req.Category,
		Published:  req.Published,
	}
}

// HandleCreatePost creates a post, deriving the slug from the English
// title when none is supplied.
func (h *BlogHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	post := req.toModel()
	if err := h.service.CreatePost(&post); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "A post with this slug already exists",
			})
		}
		log.Printf("Error creating blog post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create blog post",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      post.ID,
		"slug":    post.Slug,
		"message": "Blog post created",
	})
}

// HandleUpdatePost updates the post at the given slug.
func (h *BlogHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	post := req.toModel()
	if err := h.service.UpdatePost(c.Params("slug"), &post, req.NewSlug); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog post not found",
			})
		}
		log.Printf("Error updating blog post %q: %v", c.Params("slug"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update blog post",
		})
	}
	return c.JSON(fiber.Map{"message": "Blog post updated"})
}

// HandleDeletePost removes the post with the given slug.
func (h *BlogHandler) HandleDeletePost(c *fiber.Ctx) error {
	if err := h.service.DeletePost(c.Params("slug")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Blog post not found",
			})
		}
		log.Printf("Error deleting blog post %q: %v", c.Params("slug"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete blog post",
		})
	}
	return c.JSON(fiber.Map{"message": "Blog post deleted"})
}
