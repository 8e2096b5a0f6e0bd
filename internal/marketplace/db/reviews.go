package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

func (r *Repository) CreateReview(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *Repository) ReviewsForUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("reviewed_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	result := r.db.WithContext(ctx).
		Where("reviewed_user_id = ?", userID).
		Preload("Author").
		Preload("ReviewedUser").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&reviews)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return reviews, total, nil
}

func (r *Repository) ReviewsByAuthor(ctx context.Context, authorID uuid.UUID, skip, limit int) ([]models.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("author_id = ?", authorID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	result := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Preload("Author").
		Preload("ReviewedUser").
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&reviews)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return reviews, total, nil
}

// RatingStats returns the average rating and review count for a user. The
// average is nil when the user has no reviews.
func (r *Repository) RatingStats(ctx context.Context, userID uuid.UUID) (*float64, int64, error) {
	var row struct {
		Avg   *float64
		Total int64
	}
	result := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("AVG(rating) AS avg, COUNT(id) AS total").
		Where("reviewed_user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return row.Avg, row.Total, nil
}

// HasAcceptedCollaboration reports whether an accepted request links the
// two users in either direction: one owning the project, the other owning
// the vendor profile.
func (r *Repository) HasAcceptedCollaboration(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ProjectRequest{}).
		Joins("JOIN projects ON projects.id = project_requests.project_id").
		Joins("JOIN vendor_profiles ON vendor_profiles.id = project_requests.vendor_profile_id").
		Where("project_requests.status = ?", models.StatusAccepted).
		Where("(projects.owner_id = ? AND vendor_profiles.user_id = ?) OR (projects.owner_id = ? AND vendor_profiles.user_id = ?)",
			userA, userB, userB, userA).
		Count(&count)
	return count > 0, result.Error
}
