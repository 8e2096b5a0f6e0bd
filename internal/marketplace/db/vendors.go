package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// CreateVendorProfile inserts the profile and its service links. The unique
// index on user_id enforces at most one profile per user.
func (r *Repository) CreateVendorProfile(ctx context.Context, profile *models.VendorProfile) error {
	result := r.db.WithContext(ctx).Omit("Services.*").Create(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: vendor profile already exists", e.ErrConflict)
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	result := r.db.WithContext(ctx).
		Preload("Services").
		Preload("User").
		First(&profile, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

func (r *Repository) GetVendorProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	result := r.db.WithContext(ctx).
		Preload("Services").
		First(&profile, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &profile, nil
}

// ListVendorsExcluding returns every vendor profile outside the excluded ID
// set, services preloaded for scoring.
func (r *Repository) ListVendorsExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.VendorProfile, error) {
	query := r.db.WithContext(ctx).Preload("Services").Preload("User")
	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var vendors []models.VendorProfile
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// SearchVendors returns vendors offering at least one of the given services,
// optionally narrowed by a case-insensitive location match on the owning
// user. Relevance ordering happens in the controller.
func (r *Repository) SearchVendors(ctx context.Context, serviceIDs []uuid.UUID, location string) ([]models.VendorProfile, error) {
	query := r.db.WithContext(ctx).Model(&models.VendorProfile{}).
		Preload("Services").
		Preload("User")

	if len(serviceIDs) > 0 {
		query = query.
			Joins("JOIN vendor_services ON vendor_services.vendor_profile_id = vendor_profiles.id").
			Where("vendor_services.service_id IN ?", serviceIDs).
			Distinct("vendor_profiles.*")
	}
	if location != "" {
		query = query.
			Joins("JOIN users ON users.id = vendor_profiles.user_id").
			Where("LOWER(users.location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	var vendors []models.VendorProfile
	if err := query.Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
