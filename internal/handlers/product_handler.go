package handlers

import (
	"errors"
	"log"
	"strconv"

	"lunaris/internal/models"
	"lunaris/internal/repositories"
	"lunaris/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	catalog  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// RegisterAdminRoutes registers the product management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleListProducts returns products with images, optionally filtered by
// ?category=<id> and ?featured=true.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var categoryID uint
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid category filter",
			})
		}
		categoryID = uint(id)
	}
	featured := c.Query("featured") == "true"

	products, err := h.catalog.ListProducts(categoryID, featured)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product with its images.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	product, err := h.catalog.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleListCategories returns all categories in display order.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}

// productRequest is the admin create/update payload. Images is the full
// ordered URL list; on update a nil slice leaves images untouched.
type productRequest struct {
	CategoryID    uint      `json:"category_id" validate:"required"`
	Name          string    `json:"name" validate:"required,min=2,max=200"`
	NameEN        string    `json:"name_en" validate:"required,min=2,max=200"`
	NameTR        string    `json:"name_tr" validate:"required,min=2,max=200"`
	Description   string    `json:"description" validate:"omitempty,max=2000"`
	DescriptionEN string    `json:"description_en" validate:"omitempty,max=2000"`
	DescriptionTR string    `json:"description_tr" validate:"omitempty,max=2000"`
	PriceTRY      float64   `json:"price_try" validate:"required,gt=0"`
	InStock       *bool     `json:"in_stock"`
	Featured      bool      `json:"featured"`
	SortOrder     int       `json:"sort_order"`
	Images        *[]string `json:"images"`
}

func (req *productRequest) toModel() models.Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	return models.Product{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		NameEN:        req.NameEN,
		NameTR:        req.NameTR,
		Description:   req.Description,
		DescriptionEN: req.DescriptionEN,
		DescriptionTR: req.DescriptionTR,
		PriceTRY:      req.PriceTRY,
		InStock:       inStock,
		Featured:      req.Featured,
		SortOrder:     req.SortOrder,
	}
}

// HandleCreateProduct creates a product with its image list.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req productRequest
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

	product := req.toModel()
	var images []string
	if req.Images != nil {
		images = *req.Images
	}
	if err := h.catalog.CreateProduct(&product, images); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      product.ID,
		"message": "Product created",
	})
}

// HandleUpdateProduct updates product fields and, when an image list is
// supplied, replaces the images.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	var req productRequest
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

	product := req.toModel()
	product.ID = uint(id)
	var images []string
	if req.Images != nil {
		images = *req.Images
	}
	if err := h.catalog.UpdateProduct(&product, images); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
		})
	}
	return c.JSON(fiber.Map{"message": "Product updated"})
}

// HandleDeleteProduct removes a product and its images.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	if err := h.catalog.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
