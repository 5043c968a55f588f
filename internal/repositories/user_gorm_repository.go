package repositories

import (
	"errors"
	"fmt"
	"time"

	"lunaris/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// GetByUsername retrieves an admin user by username.
func (r *GORMUserRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return &user, nil
}

// GetByID retrieves an admin user by ID.
func (r *GORMUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// Create persists a new admin user.
func (r *GORMUserRepository) Create(user *models.AdminUser) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful login.
func (r *GORMUserRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	err := r.db.Model(&models.AdminUser{}).Where("id = ?", id).
		Update("last_login", &now).Error
	if err != nil {
		return fmt.Errorf("failed to update last login for user %d: %w", id, err)
	}
	return nil
}
