package models

import "time"

// BlogPost is a bilingual article. Unpublished posts are only visible to
// admins; the public listing filters on Published.
type BlogPost struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Slug       string    `json:"slug" gorm:"uniqueIndex;type:varchar(200)" validate:"omitempty,max=200"`
	TitleEN    string    `json:"title_en" gorm:"column:title_en" validate:"required,min=2,max=300"`
	TitleTR    string    `json:"title_tr" gorm:"column:title_tr" validate:"required,min=2,max=300"`
	ExcerptEN  string    `json:"excerpt_en" gorm:"column:excerpt_en" validate:"omitempty,max=1000"`
	ExcerptTR  string    `json:"excerpt_tr" gorm:"column:excerpt_tr" validate:"omitempty,max=1000"`
	ContentEN  string    `json:"content_en" gorm:"column:content_en;type:text" validate:"required"`
	ContentTR  string    `json:"content_tr" gorm:"column:content_tr;type:text" validate:"required"`
	CoverImage string    `json:"cover_image" validate:"omitempty,max=500"`
	Category   string    `json:"category" gorm:"default:production" validate:"omitempty,max=100"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
