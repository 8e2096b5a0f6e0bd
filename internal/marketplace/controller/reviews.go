package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type ReviewRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	CreateReview(ctx context.Context, review *models.Review) error
	ReviewsForUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]models.Review, int64, error)
	ReviewsByAuthor(ctx context.Context, authorID uuid.UUID, skip, limit int) ([]models.Review, int64, error)
	RatingStats(ctx context.Context, userID uuid.UUID) (*float64, int64, error)
	HasAcceptedCollaboration(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}

// ReviewCreate carries the input for a new review.
type ReviewCreate struct {
	ReviewedUserID uuid.UUID
	Rating         int
	Comment        string
}

type ReviewService struct {
	repo   ReviewRepository
	logger *zap.Logger
}

func NewReviewService(repo ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		logger: logger.Named("review_service"),
	}
}

// Create records a review of one user by another. The author must have an
// accepted request linking them to the subject (in either direction); a
// rating without a completed collaboration is rejected.
func (s *ReviewService) Create(ctx context.Context, author *models.User, input *ReviewCreate) (*models.Review, error) {
	if input.ReviewedUserID == author.ID {
		return nil, fmt.Errorf("%w: cannot review yourself", e.ErrInvalidInput)
	}
	if input.Rating < models.MinRating || input.Rating > models.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", e.ErrInvalidInput, models.MinRating, models.MaxRating)
	}
	if len(input.Comment) > 2000 {
		return nil, fmt.Errorf("%w: comment too long", e.ErrInvalidInput)
	}

	if _, err := s.repo.GetUser(ctx, input.ReviewedUserID); err != nil {
		return nil, err
	}

	collaborated, err := s.repo.HasAcceptedCollaboration(ctx, author.ID, input.ReviewedUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check collaboration: %w", err)
	}
	if !collaborated {
		return nil, fmt.Errorf("%w: no completed collaboration with this user", e.ErrForbidden)
	}

	review := &models.Review{
		ID:             uuid.New(),
		AuthorID:       author.ID,
		ReviewedUserID: input.ReviewedUserID,
		Rating:         input.Rating,
		Comment:        input.Comment,
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ForUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]models.Review, int64, error) {
	return s.repo.ReviewsForUser(ctx, userID, skip, limit)
}

// ForVendor resolves a vendor profile to its owning user and returns that
// user's reviews. Orphaned profiles have none.
func (s *ReviewService) ForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.Review, int64, error) {
	profile, err := s.repo.GetVendorProfile(ctx, vendorProfileID)
	if err != nil {
		return nil, 0, err
	}
	if profile.UserID == nil {
		return []models.Review{}, 0, nil
	}
	return s.repo.ReviewsForUser(ctx, *profile.UserID, skip, limit)
}

func (s *ReviewService) ByAuthor(ctx context.Context, author *models.User, skip, limit int) ([]models.Review, int64, error) {
	return s.repo.ReviewsByAuthor(ctx, author.ID, skip, limit)
}

// Stats returns the review aggregate for a user: average rating (nil when
// unreviewed) and review count.
func (s *ReviewService) Stats(ctx context.Context, userID uuid.UUID) (*float64, int64, error) {
	return s.repo.RatingStats(ctx, userID)
}
