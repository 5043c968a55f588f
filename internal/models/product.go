package models

import "time"

// Product is a catalog item. Prices are stored in TRY, the base currency;
// display currencies are derived at render time and never persisted here.
type Product struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CategoryID    uint           `json:"category_id" validate:"required"`
	Name          string         `json:"name" validate:"required,min=2,max=200"`
	NameEN        string         `json:"name_en" gorm:"column:name_en" validate:"required,min=2,max=200"`
	NameTR        string         `json:"name_tr" gorm:"column:name_tr" validate:"required,min=2,max=200"`
	Description   string         `json:"description" validate:"omitempty,max=2000"`
	DescriptionEN string         `json:"description_en" gorm:"column:description_en" validate:"omitempty,max=2000"`
	DescriptionTR string         `json:"description_tr" gorm:"column:description_tr" validate:"omitempty,max=2000"`
	PriceTRY      float64        `json:"price_try" gorm:"column:price_try" validate:"required,gt=0"`
	InStock       bool           `json:"in_stock" gorm:"default:true"`
	Featured      bool           `json:"featured"`
	SortOrder     int            `json:"sort_order"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Images        []ProductImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	Category      *Category      `json:"category,omitempty"`
}

// ProductImage is one entry in a product's ordered image list. The first
// image is flagged primary and serves as the thumbnail.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id"`
	ImageURL  string `json:"image_url" validate:"required,max=500"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

// Category groups products; the slug is used in public URLs.
type Category struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" validate:"required,min=2,max=100"`
	NameEN    string `json:"name_en" gorm:"column:name_en" validate:"required,min=2,max=100"`
	NameTR    string `json:"name_tr" gorm:"column:name_tr" validate:"required,min=2,max=100"`
	Slug      string `json:"slug" gorm:"uniqueIndex" validate:"required,max=100"`
	Image     string `json:"image"`
	SortOrder int    `json:"sort_order"`
}
