package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// CreateRequest inserts a new connection request. The composite unique
// index on (project_id, vendor_profile_id) is the backstop for concurrent
// creates: the loser gets ErrConflict.
func (r *Repository) CreateRequest(ctx context.Context, request *models.ProjectRequest) error {
	result := r.db.WithContext(ctx).Create(request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: request already exists for this pair", e.ErrConflict)
		}
		return result.Error
	}
	return nil
}

func (r *Repository) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ProjectRequest, error) {
	var request models.ProjectRequest
	result := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Vendor").
		First(&request, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &request, nil
}

func (r *Repository) GetRequestByPair(ctx context.Context, projectID, vendorProfileID uuid.UUID) (*models.ProjectRequest, error) {
	var request models.ProjectRequest
	result := r.db.WithContext(ctx).
		First(&request, "project_id = ? AND vendor_profile_id = ?", projectID, vendorProfileID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &request, nil
}

// ResolveRequest moves a request out of the sent state with a single
// conditional UPDATE guarded on status, so concurrent resolutions cannot
// both succeed. Zero affected rows means the request is gone or already
// resolved.
func (r *Repository) ResolveRequest(ctx context.Context, id uuid.UUID, status models.RequestStatus) (*models.ProjectRequest, error) {
	result := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where("id = ? AND status = ?", id, models.StatusSent).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetRequestByID(ctx, id); errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, fmt.Errorf("%w: request already resolved", e.ErrInvalidState)
	}
	return r.GetRequestByID(ctx, id)
}

// RequestVendorIDs returns the vendor side of every request against the
// project, regardless of status. Orphaned requests (vendor deleted) are
// skipped.
func (r *Repository) RequestVendorIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where("project_id = ? AND vendor_profile_id IS NOT NULL", projectID).
		Pluck("vendor_profile_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// RequestProjectIDs is the mirror of RequestVendorIDs for the vendor side.
func (r *Repository) RequestProjectIDs(ctx context.Context, vendorProfileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where("vendor_profile_id = ? AND project_id IS NOT NULL", vendorProfileID).
		Pluck("project_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// RequestFilter narrows request listings; nil fields match everything.
type RequestFilter struct {
	Initiator *models.RequestInitiator
	Status    *models.RequestStatus
}

func (r *Repository) ListRequestsForProject(ctx context.Context, projectID uuid.UUID, filter RequestFilter, skip, limit int) ([]models.ProjectRequest, int64, error) {
	conditions := r.db.Where("project_id = ?", projectID)
	if filter.Initiator != nil {
		conditions = conditions.Where("initiator = ?", *filter.Initiator)
	}
	if filter.Status != nil {
		conditions = conditions.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where(conditions).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.ProjectRequest
	result := r.db.WithContext(ctx).
		Where(conditions).
		Preload("Vendor").
		Preload("Vendor.Services").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&requests)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return requests, total, nil
}

// IncomingRequestsForVendor lists company-initiated requests against the
// vendor's profile, newest first.
func (r *Repository) IncomingRequestsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.ProjectRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where("vendor_profile_id = ? AND initiator = ?", vendorProfileID, models.InitiatorCompany).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.ProjectRequest
	result := r.db.WithContext(ctx).
		Where("vendor_profile_id = ? AND initiator = ?", vendorProfileID, models.InitiatorCompany).
		Preload("Project").
		Preload("Project.Services").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&requests)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return requests, total, nil
}
