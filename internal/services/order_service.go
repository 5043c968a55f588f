package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"lunaris/internal/currency"
	"lunaris/internal/models"
	"lunaris/internal/repositories"
)

// ErrEmptyOrder is returned when an order is submitted without items.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrInvalidInput is wrapped by update/create failures caused by bad
// caller input rather than the store.
var ErrInvalidInput = errors.New("invalid input")

const orderNumberChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EventPublisher publishes order lifecycle events to the message broker.
// A nil publisher is tolerated; events are then skipped.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles order intake and the admin order screens.
type OrderService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
	now       func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
		now:       time.Now,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.List()
}

// GetOrderByID retrieves a single order with its line items.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder persists a submitted cart snapshot as an immutable order and
// returns it with its generated order number. Line items arrive already
// snapshotted (name, price, quantity) so later catalog edits never affect
// this record.
func (s *OrderService) CreateOrder(order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if order.Currency == "" {
		order.Currency = string(currency.TRY)
	}
	if !currency.Valid(currency.Code(order.Currency)) {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrInvalidInput, order.Currency)
	}

	order.ID = 0
	order.Status = models.OrderStatusPending
	order.PaymentMethod = "bank_transfer"
	order.PaymentStatus = models.PaymentStatusPending
	order.OrderNumber = s.generateOrderNumber()

	err := s.orderRepo.Create(order)
	if errors.Is(err, repositories.ErrDuplicate) {
		// The random suffix collided with an existing order; one fresh
		// draw is plenty at this volume.
		order.OrderNumber = s.generateOrderNumber()
		err = s.orderRepo.Create(order)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishCreated(order)
	return order, nil
}

// UpdateOrder applies a partial admin update. Nil pointers leave the
// corresponding column untouched.
func (s *OrderService) UpdateOrder(id uint, status, paymentStatus, notes *string) error {
	fields := make(map[string]interface{})
	if status != nil {
		if !models.ValidOrderStatus(*status) {
			return fmt.Errorf("%w: invalid order status %q", ErrInvalidInput, *status)
		}
		fields["status"] = *status
	}
	if paymentStatus != nil {
		if !models.ValidPaymentStatus(*paymentStatus) {
			return fmt.Errorf("%w: invalid payment status %q", ErrInvalidInput, *paymentStatus)
		}
		fields["payment_status"] = *paymentStatus
	}
	if notes != nil {
		fields["notes"] = *notes
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no updates provided", ErrInvalidInput)
	}

	return s.orderRepo.Update(id, fields)
}

// generateOrderNumber builds the human-readable payment reference:
// LC + 2-digit year + 2-digit month + 6 random alphanumerics.
func (s *OrderService) generateOrderNumber() string {
	now := s.now()
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderNumberChars[rand.Intn(len(orderNumberChars))]
	}
	return fmt.Sprintf("LC%02d%02d%s", now.Year()%100, int(now.Month()), suffix)
}

// publishCreated emits an order.created event. Publish failures are
// logged and never fail the order.
func (s *OrderService) publishCreated(order *models.Order) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":        "order.created",
		"order_number": order.OrderNumber,
		"customer":     order.CustomerEmail,
		"total_try":    order.TotalTRY,
		"currency":     order.Currency,
		"status":       order.Status,
	})
	if err != nil {
		log.Printf("Failed to marshal order event for %s: %v", order.OrderNumber, err)
		return
	}
	if err := s.events.Publish("", "order_events", body); err != nil {
		log.Printf("Failed to publish order.created for %s: %v", order.OrderNumber, err)
	}
}
