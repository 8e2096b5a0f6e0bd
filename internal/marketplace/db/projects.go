package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// CreateProject inserts the project and its service links. The services
// themselves must already exist; Omit("Services.*") writes only the join
// rows.
func (r *Repository) CreateProject(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).Omit("Services.*").Create(project)
	return result.Error
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Owner").
		First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return &project, nil
}

func (r *Repository) ListProjectsForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).
		Preload("Services").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// IncomingRequestCounts returns, per project, how many vendor-initiated
// requests are still awaiting the company's decision.
func (r *Repository) IncomingRequestCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ProjectID uuid.UUID
		Total     int64
	}
	result := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Select("project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs).
		Where("initiator = ? AND status = ?", models.InitiatorVendor, models.StatusSent).
		Group("project_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, row := range rows {
		counts[row.ProjectID] = row.Total
	}
	return counts, nil
}

// ListProjectsExcluding returns every project outside the excluded ID set,
// services preloaded for scoring.
func (r *Repository) ListProjectsExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.Project, error) {
	query := r.db.WithContext(ctx).Preload("Services").Preload("Owner")
	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AcceptedProjectsForVendor lists the projects a vendor was accepted on,
// newest first.
func (r *Repository) AcceptedProjectsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Where("vendor_profile_id = ? AND status = ?", vendorProfileID, models.StatusAccepted).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	result := r.db.WithContext(ctx).
		Joins("JOIN project_requests ON project_requests.project_id = projects.id").
		Where("project_requests.vendor_profile_id = ? AND project_requests.status = ?",
			vendorProfileID, models.StatusAccepted).
		Preload("Services").
		Preload("Owner").
		Order("projects.created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&projects)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return projects, total, nil
}
