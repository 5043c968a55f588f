package services_test

import (
	"errors"
	"testing"

	"lunaris/internal/currency"
	"lunaris/internal/models"
	"lunaris/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRateRepository is a mock implementation of repositories.RateRepository.
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) All() ([]models.ExchangeRate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExchangeRate), args.Error(1)
}

func (m *MockRateRepository) Upsert(currency string, rate float64) error {
	args := m.Called(currency, rate)
	return args.Error(0)
}

func TestRatesService_LoadsOnceAndCaches(t *testing.T) {
	repo := new(MockRateRepository)
	service := services.NewRatesService(repo)

	repo.On("All").Return([]models.ExchangeRate{
		{Currency: "EUR", Rate: 0.031},
		{Currency: "USD", Rate: 0.033},
	}, nil).Once()

	rates := service.Rates()
	assert.Equal(t, 0.031, rates.EUR)
	assert.Equal(t, 0.033, rates.USD)

	// Second call is served from the cache; the single .Once() above
	// fails the test if the repo is hit again.
	again := service.Rates()
	assert.Equal(t, rates, again)
	repo.AssertExpectations(t)
}

func TestRatesService_FallbackOnLoadFailure(t *testing.T) {
	repo := new(MockRateRepository)
	service := services.NewRatesService(repo)

	repo.On("All").Return(nil, errors.New("store unreachable")).Once()
	rates := service.Rates()
	assert.Equal(t, currency.FallbackRates, rates)

	// A failed load is not cached; the next call retries the store.
	repo.On("All").Return([]models.ExchangeRate{{Currency: "EUR", Rate: 0.029}}, nil).Once()
	rates = service.Rates()
	assert.Equal(t, 0.029, rates.EUR)
	// Missing rows keep their fallback value.
	assert.Equal(t, currency.FallbackRates.USD, rates.USD)
	repo.AssertExpectations(t)
}

func TestRatesService_Update(t *testing.T) {
	repo := new(MockRateRepository)
	service := services.NewRatesService(repo)

	repo.On("Upsert", "EUR", 0.05).Return(nil).Once()
	repo.On("Upsert", "USD", 0.06).Return(nil).Once()

	assert.NoError(t, service.Update(0.05, 0.06))

	// The cache reflects the update without touching the store.
	rates := service.Rates()
	assert.Equal(t, 0.05, rates.EUR)
	assert.Equal(t, 0.06, rates.USD)
	repo.AssertExpectations(t)
}

func TestRatesService_UpdateRejectsNonPositive(t *testing.T) {
	repo := new(MockRateRepository)
	service := services.NewRatesService(repo)

	assert.ErrorIs(t, service.Update(0, 0.03), services.ErrInvalidRate)
	assert.ErrorIs(t, service.Update(0.03, -1), services.ErrInvalidRate)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRatesService_SeedOnlyWhenEmpty(t *testing.T) {
	repo := new(MockRateRepository)
	service := services.NewRatesService(repo)

	repo.On("All").Return([]models.ExchangeRate{}, nil).Once()
	repo.On("Upsert", "EUR", currency.FallbackRates.EUR).Return(nil).Once()
	repo.On("Upsert", "USD", currency.FallbackRates.USD).Return(nil).Once()
	assert.NoError(t, service.Seed())

	repo.On("All").Return([]models.ExchangeRate{{Currency: "EUR", Rate: 0.04}}, nil).Once()
	assert.NoError(t, service.Seed())
	repo.AssertExpectations(t)
}
