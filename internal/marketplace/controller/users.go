package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

const minPasswordLength = 8

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// RegisterInput carries the input for a new account.
type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	CompanyName string
	Location    string
	LogoURL     string
	Role        models.UserRole
}

// AccountService handles registration and credential checks.
type AccountService struct {
	repo   UserRepository
	logger *zap.Logger
}

func NewAccountService(repo UserRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger.Named("account_service"),
	}
}

func (s *AccountService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if input.Email == "" || len(input.Email) > 255 {
		return nil, fmt.Errorf("%w: invalid email", e.ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", e.ErrInvalidInput, minPasswordLength)
	}
	if input.Role != models.RoleCompany && input.Role != models.RoleVendor {
		return nil, fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.New(),
		Email:          input.Email,
		HashedPassword: string(hash),
		FullName:       input.FullName,
		CompanyName:    input.CompanyName,
		Location:       input.Location,
		LogoURL:        input.LogoURL,
		Role:           input.Role,
		IsActive:       true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials and returns the account. Missing user
// and wrong password fail identically so the response does not reveal
// which part was wrong.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", e.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid email or password", e.ErrInvalidInput)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is inactive", e.ErrForbidden)
	}
	return user, nil
}
