package handlers

import (
	"errors"
	"log"

	"lunaris/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RatesHandler serves the display exchange rates and lets admins
// overwrite them.
type RatesHandler struct {
	service *services.RatesService
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(service *services.RatesService) *RatesHandler {
	return &RatesHandler{service: service}
}

// RegisterRoutes registers the public rates route.
func (h *RatesHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/exchange-rates", h.HandleGetRates)
}

// RegisterAdminRoutes registers the rate management route.
func (h *RatesHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Put("/exchange-rates", h.HandleUpdateRates)
}

// HandleGetRates returns the EUR and USD multipliers from TRY.
func (h *RatesHandler) HandleGetRates(c *fiber.Ctx) error {
	return c.JSON(h.service.Rates())
}

// HandleUpdateRates overwrites both rates.
func (h *RatesHandler) HandleUpdateRates(c *fiber.Ctx) error {
	var req struct {
		EUR float64 `json:"EUR"`
		USD float64 `json:"USD"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.service.Update(req.EUR, req.USD); err != nil {
		if errors.Is(err, services.ErrInvalidRate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Exchange rates must be positive",
			})
		}
		log.Printf("Error updating exchange rates: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update rates",
		})
	}
	return c.JSON(fiber.Map{"message": "Rates updated"})
}
