package db

import (
	"context"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

func (r *Repository) CreateFeedback(ctx context.Context, feedback *models.PlatformFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *Repository) ListFeedback(ctx context.Context, skip, limit int) ([]models.PlatformFeedback, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PlatformFeedback{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var feedback []models.PlatformFeedback
	result := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&feedback)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return feedback, total, nil
}
