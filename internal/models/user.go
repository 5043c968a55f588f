package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser is a back-office account. PasswordHash carries the bcrypt
// hash and is never serialized.
type AdminUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	PasswordHash string     `json:"-" gorm:"type:varchar(255)"`
	Name         string     `json:"name" validate:"required,min=2,max=200"`
	Role         string     `json:"role" gorm:"default:editor" validate:"omitempty,oneof=admin editor"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
