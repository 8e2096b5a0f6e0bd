package db

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// AddToShortlist records a vendor on the project's shortlist. Re-adding an
// existing entry is a no-op.
func (r *Repository) AddToShortlist(ctx context.Context, projectID, vendorProfileID uuid.UUID) error {
	entry := models.ProjectShortlist{
		ProjectID:       projectID,
		VendorProfileID: vendorProfileID,
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)
	return result.Error
}

func (r *Repository) RemoveFromShortlist(ctx context.Context, projectID, vendorProfileID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.ProjectShortlist{}, "project_id = ? AND vendor_profile_id = ?", projectID, vendorProfileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) IsShortlisted(ctx context.Context, projectID, vendorProfileID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ProjectShortlist{}).
		Where("project_id = ? AND vendor_profile_id = ?", projectID, vendorProfileID).
		Count(&count)
	return count > 0, result.Error
}

// ShortlistedVendorIDs returns the IDs of every vendor on the project's
// shortlist; the matcher consumes this as its priority tier.
func (r *Repository) ShortlistedVendorIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).Model(&models.ProjectShortlist{}).
		Where("project_id = ?", projectID).
		Pluck("vendor_profile_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (r *Repository) ShortlistedVendors(ctx context.Context, projectID uuid.UUID) ([]models.VendorProfile, error) {
	var vendors []models.VendorProfile
	result := r.db.WithContext(ctx).
		Joins("JOIN project_shortlists ON project_shortlists.vendor_profile_id = vendor_profiles.id").
		Where("project_shortlists.project_id = ?", projectID).
		Preload("Services").
		Preload("User").
		Find(&vendors)
	if result.Error != nil {
		return nil, result.Error
	}
	return vendors, nil
}
