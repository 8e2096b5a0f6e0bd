package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

func (r *Repository) CreateCategory(ctx context.Context, category *models.Category) error {
	result := r.db.WithContext(ctx).Create(category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: category already exists", e.ErrConflict)
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).Preload("Services").First(&category, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, id uuid.UUID, label string) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", id).
		Update("label", label)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// ListCategories returns the whole catalog with services attached.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	result := r.db.WithContext(ctx).Preload("Services").Order("label").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

func (r *Repository) CreateService(ctx context.Context, service *models.Service) error {
	result := r.db.WithContext(ctx).Create(service)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: service already exists", e.ErrConflict)
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	result := r.db.WithContext(ctx).Preload("Category").First(&service, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &service, nil
}

func (r *Repository) UpdateService(ctx context.Context, service *models.Service) error {
	result := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"label":       service.Label,
			"category_id": service.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// GetServicesByIDs resolves a set of service IDs to catalog rows. Callers
// validate that every requested ID was found.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, error) {
	var services []models.Service
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&services)
	if result.Error != nil {
		return nil, result.Error
	}
	return services, nil
}
