package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, label string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateService(ctx context.Context, service *models.Service) error
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	UpdateService(ctx context.Context, service *models.Service) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}

// CatalogService manages the category/service catalog. Reads are public;
// writes are restricted to superusers.
type CatalogService struct {
	repo   CatalogRepository
	logger *zap.Logger
}

func NewCatalogService(repo CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger.Named("catalog_service"),
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, actor *models.User, label string) (*models.Category, error) {
	if err := requireSuperuser(actor); err != nil {
		return nil, err
	}
	if label == "" || len(label) > 255 {
		return nil, fmt.Errorf("%w: invalid label", e.ErrInvalidInput)
	}

	category := &models.Category{ID: uuid.New(), Label: label}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, actor *models.User, id uuid.UUID, label string) (*models.Category, error) {
	if err := requireSuperuser(actor); err != nil {
		return nil, err
	}
	if label == "" || len(label) > 255 {
		return nil, fmt.Errorf("%w: invalid label", e.ErrInvalidInput)
	}
	if err := s.repo.UpdateCategory(ctx, id, label); err != nil {
		return nil, err
	}
	return s.repo.GetCategory(ctx, id)
}

func (s *CatalogService) CreateService(ctx context.Context, actor *models.User, label string, categoryID uuid.UUID) (*models.Service, error) {
	if err := requireSuperuser(actor); err != nil {
		return nil, err
	}
	if label == "" || len(label) > 255 {
		return nil, fmt.Errorf("%w: invalid label", e.ErrInvalidInput)
	}
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	service := &models.Service{ID: uuid.New(), Label: label, CategoryID: &categoryID}
	if err := s.repo.CreateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, actor *models.User, service *models.Service) (*models.Service, error) {
	if err := requireSuperuser(actor); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return s.repo.GetService(ctx, service.ID)
}

func (s *CatalogService) DeleteService(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if err := requireSuperuser(actor); err != nil {
		return err
	}
	return s.repo.DeleteService(ctx, id)
}

func requireSuperuser(actor *models.User) error {
	if !actor.IsSuperuser {
		return fmt.Errorf("%w: not enough privileges", e.ErrForbidden)
	}
	return nil
}
