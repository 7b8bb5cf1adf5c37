package service

import (
	"context"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
	"github.com/shopbook/shopbook-api/pkg/apperror"
	"github.com/shopbook/shopbook-api/pkg/utils"
)

// AuthService handles the owner account. The shop is single-user, so
// registration closes permanently once an account exists.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// RegisterInput represents the owner registration input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates the owner account. Rejected once any account exists.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	if input.Name == "" {
		return nil, apperror.NewRequiredFieldError("name")
	}
	if input.Email == "" {
		return nil, apperror.NewRequiredFieldError("email")
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewBadRequestError("Password must be at least 8 characters")
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.NewConflictError("An owner account already exists")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// LoginResult represents a successful login
type LoginResult struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}
