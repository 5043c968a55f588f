package repositories

import (
	"fmt"

	"lunaris/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateRepository defines the interface for exchange rate data access.
type RateRepository interface {
	All() ([]models.ExchangeRate, error)
	Upsert(currency string, rate float64) error
}

// GORMRateRepository is a GORM implementation of RateRepository.
type GORMRateRepository struct {
	db *gorm.DB
}

// NewGORMRateRepository creates a new instance of GORMRateRepository.
func NewGORMRateRepository(db *gorm.DB) *GORMRateRepository {
	return &GORMRateRepository{db: db}
}

// All returns every stored rate row.
func (r *GORMRateRepository) All() ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := r.db.Find(&rates).Error; err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	return rates, nil
}

// Upsert writes the rate for a currency, inserting the row on first use.
func (r *GORMRateRepository) Upsert(currency string, rate float64) error {
	row := models.ExchangeRate{Currency: currency, Rate: rate}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rate for %s: %w", currency, err)
	}
	return nil
}
