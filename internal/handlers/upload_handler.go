package handlers

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// allowed product image extensions, lowercase.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler stores admin-uploaded product and blog images under the
// static uploads directory.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler writing into uploadDir.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// RegisterAdminRoutes registers the upload route.
func (h *UploadHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/uploads", h.HandleUpload)
}

// HandleUpload accepts a JPEG/PNG/WebP multipart file and returns the
// public URL it was stored under. Filenames are regenerated so uploads
// never collide or leak the original name.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A 'file' form field is required",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Only JPEG, PNG and WebP images are accepted",
		})
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		log.Printf("Error saving upload %q: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": "/uploads/" + name,
	})
}
