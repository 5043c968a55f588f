package services_test

import (
	"encoding/json"
	"regexp"
	"testing"

	"lunaris/internal/models"
	"lunaris/internal/repositories"
	"lunaris/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

var orderNumberPattern = regexp.MustCompile(`^LC\d{4}[A-Z0-9]{6}$`)

func orderFixture() *models.Order {
	return &models.Order{
		CustomerName:    "Ayşe Yılmaz",
		CustomerEmail:   "ayse@example.com",
		CustomerAddress: "Bağdat Cd. 42",
		CustomerCity:    "Istanbul",
		CustomerCountry: "Turkiye",
		TotalTRY:        1580,
		Currency:        "EUR",
		DisplayTotal:    44.24,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Glazed Vase", Quantity: 2, PriceTRY: 450},
			{ProductID: 2, ProductName: "Teapot", Quantity: 1, PriceTRY: 680},
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	events := new(MockEventPublisher)
	events.On("Publish", "", "order_events", mock.Anything).Return(nil).Once()
	service := services.NewOrderService(repo, events)

	order := orderFixture()
	created, err := service.CreateOrder(order)
	assert.NoError(t, err)

	assert.Regexp(t, orderNumberPattern, created.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.Equal(t, models.PaymentStatusPending, created.PaymentStatus)
	assert.Equal(t, "bank_transfer", created.PaymentMethod)

	// Line items are snapshots, persisted with the order.
	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, "Glazed Vase", stored.Items[0].ProductName)
	assert.Equal(t, 450.0, stored.Items[0].PriceTRY)
	assert.Equal(t, 1580.0, stored.TotalTRY)

	events.AssertExpectations(t)
}

func TestOrderService_CreateOrderEventPayload(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	events := new(MockEventPublisher)
	var payload map[string]interface{}
	events.On("Publish", "", "order_events", mock.Anything).Run(func(args mock.Arguments) {
		assert.NoError(t, json.Unmarshal(args.Get(2).([]byte), &payload))
	}).Return(nil).Once()
	service := services.NewOrderService(repo, events)

	created, err := service.CreateOrder(orderFixture())
	assert.NoError(t, err)
	assert.Equal(t, "order.created", payload["event"])
	assert.Equal(t, created.OrderNumber, payload["order_number"])
	assert.Equal(t, 1580.0, payload["total_try"])
	events.AssertExpectations(t)
}

func TestOrderService_CreateOrderWithoutPublisher(t *testing.T) {
	// A nil publisher skips events; orders still go through.
	service := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	created, err := service.CreateOrder(orderFixture())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.OrderNumber)
}

func TestOrderService_CreateOrderRejectsEmptyCart(t *testing.T) {
	service := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	order := orderFixture()
	order.Items = nil
	_, err := service.CreateOrder(order)
	assert.ErrorIs(t, err, services.ErrEmptyOrder)
}

func TestOrderService_CreateOrderRejectsUnknownCurrency(t *testing.T) {
	service := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	order := orderFixture()
	order.Currency = "GBP"
	_, err := service.CreateOrder(order)
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestOrderService_CreateOrderDefaultsCurrencyToBase(t *testing.T) {
	service := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	order := orderFixture()
	order.Currency = ""
	created, err := service.CreateOrder(order)
	assert.NoError(t, err)
	assert.Equal(t, "TRY", created.Currency)
}

// MockOrderRepo is a testify mock of repositories.OrderRepository, used
// where call-level control is needed.
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) List() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepo) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepo) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepo) Update(id uint, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func TestOrderService_CreateOrderRetriesOnDuplicateNumber(t *testing.T) {
	repo := new(MockOrderRepo)
	service := services.NewOrderService(repo, nil)

	var numbers []string
	record := func(args mock.Arguments) {
		numbers = append(numbers, args.Get(0).(*models.Order).OrderNumber)
	}
	repo.On("Create", mock.AnythingOfType("*models.Order")).Run(record).Return(repositories.ErrDuplicate).Once()
	repo.On("Create", mock.AnythingOfType("*models.Order")).Run(record).Return(nil).Once()

	created, err := service.CreateOrder(orderFixture())
	assert.NoError(t, err)
	assert.Len(t, numbers, 2)
	assert.NotEqual(t, numbers[0], numbers[1])
	assert.Equal(t, numbers[1], created.OrderNumber)
	repo.AssertExpectations(t)
}

func TestOrderService_CreateOrderSecondCollisionFails(t *testing.T) {
	repo := new(MockOrderRepo)
	service := services.NewOrderService(repo, nil)
	repo.On("Create", mock.AnythingOfType("*models.Order")).Return(repositories.ErrDuplicate).Twice()

	_, err := service.CreateOrder(orderFixture())
	assert.Error(t, err)
	repo.AssertExpectations(t)
}

func TestOrderService_UpdateOrder(t *testing.T) {
	repo := repositories.NewMockOrderRepository()
	service := services.NewOrderService(repo, nil)

	created, err := service.CreateOrder(orderFixture())
	assert.NoError(t, err)

	status := models.OrderStatusShipped
	paid := models.PaymentStatusPaid
	assert.NoError(t, service.UpdateOrder(created.ID, &status, &paid, nil))

	stored, err := repo.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, stored.Status)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)
	// Untouched columns keep their values.
	assert.Equal(t, 1580.0, stored.TotalTRY)
}

func TestOrderService_UpdateOrderValidation(t *testing.T) {
	service := services.NewOrderService(repositories.NewMockOrderRepository(), nil)

	bad := "teleported"
	err := service.UpdateOrder(1, &bad, nil, nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	err = service.UpdateOrder(1, nil, &bad, nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	err = service.UpdateOrder(1, nil, nil, nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	// Unknown order id surfaces not-found from the repository.
	status := models.OrderStatusConfirmed
	err = service.UpdateOrder(999, &status, nil, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
