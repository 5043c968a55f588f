package repositories

import (
	"lunaris/internal/models"
)

// UserRepository defines the interface for admin user data access.
type UserRepository interface {
	GetByUsername(username string) (*models.AdminUser, error)
	GetByID(id uint) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
	TouchLastLogin(id uint) error
}
