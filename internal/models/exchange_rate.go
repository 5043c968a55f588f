package models

import "time"

// ExchangeRate is a per-currency multiplier from the TRY base. Rates are
// admin-maintained and used only for display, never for settlement.
type ExchangeRate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Currency  string    `json:"currency" gorm:"uniqueIndex;type:varchar(3)" validate:"required,len=3"`
	Rate      float64   `json:"rate" validate:"required,gt=0"`
	UpdatedAt time.Time `json:"updated_at"`
}
