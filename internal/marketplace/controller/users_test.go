package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	createUser     func(context.Context, *models.User) error
	getUser        func(context.Context, uuid.UUID) (*models.User, error)
	getUserByEmail func(context.Context, string) (*models.User, error)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.createUser(ctx, user)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getUser(ctx, id)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.getUserByEmail(ctx, email)
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         *RegisterInput
		mockSetup     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			input: &RegisterInput{Email: "acme@example.com", Password: "long-enough", Role: models.RoleCompany},
			mockSetup: func(mr *MockUserRepository) {
				mr.createUser = func(_ context.Context, _ *models.User) error {
					return nil
				}
			},
		},
		{
			name:          "short password",
			input:         &RegisterInput{Email: "acme@example.com", Password: "short", Role: models.RoleCompany},
			mockSetup:     func(_ *MockUserRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:          "missing email",
			input:         &RegisterInput{Password: "long-enough", Role: models.RoleCompany},
			mockSetup:     func(_ *MockUserRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:          "unknown role",
			input:         &RegisterInput{Email: "acme@example.com", Password: "long-enough", Role: models.UserRole("admin")},
			mockSetup:     func(_ *MockUserRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:  "duplicate email",
			input: &RegisterInput{Email: "taken@example.com", Password: "long-enough", Role: models.RoleVendor},
			mockSetup: func(mr *MockUserRepository) {
				mr.createUser = func(_ context.Context, _ *models.User) error {
					return e.ErrConflict
				}
			},
			expectedError: e.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockUserRepository{}
			tt.mockSetup(mockRepo)
			service := NewAccountService(mockRepo, zaptest.NewLogger(t))

			user, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assertErrorIs(t, err, tt.expectedError)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !user.IsActive {
				t.Error("expected new account to be active")
			}
			if user.HashedPassword == tt.input.Password {
				t.Error("password must not be stored in the clear")
			}
			if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(tt.input.Password)) != nil {
				t.Error("stored hash should verify against the password")
			}
		})
	}
}

func TestAccountService_Authenticate(t *testing.T) {
	password := "correct-horse"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	active := &models.User{ID: uuid.New(), Email: "a@example.com", HashedPassword: string(hash), IsActive: true}

	withUser := func(user *models.User) *MockUserRepository {
		return &MockUserRepository{
			getUserByEmail: func(_ context.Context, _ string) (*models.User, error) {
				if user == nil {
					return nil, e.ErrNotFound
				}
				return user, nil
			},
		}
	}

	t.Run("valid credentials", func(t *testing.T) {
		service := NewAccountService(withUser(active), zaptest.NewLogger(t))
		user, err := service.Authenticate(context.Background(), active.Email, password)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != active.ID {
			t.Error("expected the matching account")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		service := NewAccountService(withUser(active), zaptest.NewLogger(t))
		_, err := service.Authenticate(context.Background(), active.Email, "wrong")
		assertErrorIs(t, err, e.ErrInvalidInput)
	})

	t.Run("unknown email fails the same way", func(t *testing.T) {
		service := NewAccountService(withUser(nil), zaptest.NewLogger(t))
		_, err := service.Authenticate(context.Background(), "nobody@example.com", password)
		assertErrorIs(t, err, e.ErrInvalidInput)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := *active
		inactive.IsActive = false
		service := NewAccountService(withUser(&inactive), zaptest.NewLogger(t))
		_, err := service.Authenticate(context.Background(), inactive.Email, password)
		assertErrorIs(t, err, e.ErrForbidden)
	})
}
