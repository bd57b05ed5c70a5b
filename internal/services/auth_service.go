// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/comicden/comics-backend/internal/apperrors"
	"github.com/comicden/comics-backend/internal/config"
	"github.com/comicden/comics-backend/internal/models"
	"github.com/comicden/comics-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,client_password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Client      *models.Client `json:"client"`
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*models.Client, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadInput, err)
	}

	client := &models.Client{
		Email: strings.TrimSpace(req.Email),
		Role:  models.RoleUser,
	}

	if err := client.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", apperrors.ErrTransient, err)
	}

	if err := s.db.Create(client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: client %q", apperrors.ErrConflict, client.Email)
		}
		return nil, fmt.Errorf("%w: create client: %v", apperrors.ErrTransient, err)
	}

	return client, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrBadInput, err)
	}

	var client models.Client
	err := s.db.Where("email = ?", strings.TrimSpace(req.Email)).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: email", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: lookup client: %v", apperrors.ErrTransient, err)
	}

	if err := client.CheckPassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: wrong password", apperrors.ErrBadInput)
	}

	accessToken, err := utils.GenerateJWT(client.Email, string(client.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: generate token: %v", apperrors.ErrTransient, err)
	}

	return &AuthResponse{
		Client:      &client,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
