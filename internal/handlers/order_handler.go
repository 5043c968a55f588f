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

// OrderHandler handles HTTP requests for orders: public checkout and the
// admin order screens.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public checkout route.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
}

// RegisterAdminRoutes registers the order management routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleGetOrders)
	router.Get("/orders/:id", h.HandleGetOrderByID)
	router.Put("/orders/:id", h.HandleUpdateOrder)
}

// orderItemRequest is a snapshotted cart line as submitted by checkout.
type orderItemRequest struct {
	ProductID   uint    `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name" validate:"required,max=200"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	PriceTRY    float64 `json:"price_try" validate:"required,gt=0"`
}

// orderRequest is the checkout payload. TotalTRY is the authoritative
// amount; DisplayTotal is whatever the shopper saw in their currency.
type orderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,min=2,max=200"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	CustomerPhone   string             `json:"customer_phone" validate:"omitempty,max=50"`
	CustomerAddress string             `json:"customer_address" validate:"required,max=500"`
	CustomerCity    string             `json:"customer_city" validate:"required,max=100"`
	CustomerCountry string             `json:"customer_country" validate:"required,max=100"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalTRY        float64            `json:"total_try" validate:"required,gt=0"`
	Currency        string             `json:"currency" validate:"omitempty,oneof=TRY EUR USD"`
	DisplayTotal    float64            `json:"display_total" validate:"gte=0"`
	Notes           string             `json:"notes" validate:"omitempty,max=2000"`
}

// HandleCreateOrder accepts a submitted cart snapshot plus shipping form
// and returns the generated order number.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req orderRequest
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

	order := models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		CustomerCountry: req.CustomerCountry,
		TotalTRY:        req.TotalTRY,
		Currency:        req.Currency,
		DisplayTotal:    req.DisplayTotal,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceTRY:    item.PriceTRY,
		})
	}

	created, err := h.service.CreateOrder(&order)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order must contain at least one item",
			})
		}
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           created.ID,
		"order_number": created.OrderNumber,
		"message":      "Order created successfully",
	})
}

// HandleGetOrders retrieves all orders for the admin screen.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order with its line items.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	order, err := h.service.GetOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
		})
	}
	return c.JSON(order)
}

// HandleUpdateOrder applies a partial admin update: status,
// payment_status and/or notes.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	var req struct {
		Status        *string `json:"status"`
		PaymentStatus *string `json:"payment_status"`
		Notes         *string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if req.Status == nil && req.PaymentStatus == nil && req.Notes == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No updates provided",
		})
	}

	if err := h.service.UpdateOrder(uint(id), req.Status, req.PaymentStatus, req.Notes); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error updating order %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order",
		})
	}
	return c.JSON(fiber.Map{"message": "Order updated"})
}
