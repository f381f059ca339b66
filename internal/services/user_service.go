package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Lumora-KR/rps-server/internal/auth"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/models"
)

// IUserService defines the interface for admin user operations.
type IUserService interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type userService struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(db *gorm.DB, cfg *config.Config) IUserService {
	return &userService{db: db, cfg: cfg}
}

// Login verifies the credentials and returns a signed token for the user.
// It deliberately returns the same error for an unknown username and a wrong
// password.
func (s *userService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Username, s.cfg.JwtSecret, s.cfg.JwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *userService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
