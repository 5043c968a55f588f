package services

import (
	"errors"
	"fmt"
	"time"

	"lunaris/internal/models"
	"lunaris/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login, whether the
// username was unknown or the password wrong, so callers cannot enumerate
// accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

const bcryptCost = 12

// AuthService handles admin authentication: bcrypt password checks and
// the signed session token carried in the auth cookie.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService. Sessions are valid for 7 days.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 7 * 24 * time.Hour,
	}
}

// TokenDuration returns how long issued session tokens stay valid.
func (s *AuthService) TokenDuration() time.Duration {
	return s.tokenDurat
}

// Login authenticates an admin and returns the user plus a signed session
// token. Both unknown usernames and wrong passwords return
// ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (*models.AdminUser, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		// Login still succeeds; last_login is informational.
		return user, tokenString, nil
	}
	return user, tokenString, nil
}

// ValidateToken parses and validates a session token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// CurrentUser resolves a session token to the admin user it belongs to.
func (s *AuthService) CurrentUser(tokenString string) (*models.AdminUser, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("invalid token")
	}
	return s.userRepo.GetByID(uint(id))
}

// EnsureAdmin creates the bootstrap admin account when it does not exist
// yet. Called once at startup.
func (s *AuthService) EnsureAdmin(username, password, name string) error {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
