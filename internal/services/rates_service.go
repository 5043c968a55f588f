package services

import (
	"errors"
	"log"
	"sync"

	"lunaris/internal/currency"
	"lunaris/internal/repositories"
)

// ErrInvalidRate is returned when an admin submits a non-positive rate.
var ErrInvalidRate = errors.New("exchange rates must be positive")

// RatesService serves the display exchange rates. Rates are loaded from
// the store once and cached for the process; an admin update refreshes
// the cache. A failed load falls back to the hardcoded pair, which only
// affects display prices, never the authoritative TRY totals.
type RatesService struct {
	repo repositories.RateRepository

	mu     sync.Mutex
	cached *currency.Rates
}

// NewRatesService creates a new RatesService.
func NewRatesService(repo repositories.RateRepository) *RatesService {
	return &RatesService{repo: repo}
}

// Rates returns the current multipliers, loading them on first use.
func (s *RatesService) Rates() currency.Rates {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return *s.cached
	}

	rates := currency.FallbackRates
	rows, err := s.repo.All()
	if err != nil {
		log.Printf("Failed to load exchange rates, using fallback: %v", err)
		return rates
	}
	for _, row := range rows {
		switch currency.Code(row.Currency) {
		case currency.EUR:
			rates.EUR = row.Rate
		case currency.USD:
			rates.USD = row.Rate
		}
	}
	s.cached = &rates
	return rates
}

// Update overwrites both rates and refreshes the cache.
func (s *RatesService) Update(eur, usd float64) error {
	if eur <= 0 || usd <= 0 {
		return ErrInvalidRate
	}

	if err := s.repo.Upsert(string(currency.EUR), eur); err != nil {
		return err
	}
	if err := s.repo.Upsert(string(currency.USD), usd); err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = &currency.Rates{EUR: eur, USD: usd}
	s.mu.Unlock()
	return nil
}

// Seed writes the fallback rates when the table is empty, so a fresh
// install always has something to display.
func (s *RatesService) Seed() error {
	rows, err := s.repo.All()
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	if err := s.repo.Upsert(string(currency.EUR), currency.FallbackRates.EUR); err != nil {
		return err
	}
	return s.repo.Upsert(string(currency.USD), currency.FallbackRates.USD)
}
