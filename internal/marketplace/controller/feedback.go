package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.PlatformFeedback) error
	ListFeedback(ctx context.Context, skip, limit int) ([]models.PlatformFeedback, int64, error)
}

// FeedbackService collects notes about the platform itself. Any
// authenticated user can submit; only superusers read them back.
type FeedbackService struct {
	repo   FeedbackRepository
	logger *zap.Logger
}

func NewFeedbackService(repo FeedbackRepository, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		repo:   repo,
		logger: logger.Named("feedback_service"),
	}
}

func (s *FeedbackService) Submit(ctx context.Context, actor *models.User, message string) (*models.PlatformFeedback, error) {
	if message == "" || len(message) > 2000 {
		return nil, fmt.Errorf("%w: invalid message", e.ErrInvalidInput)
	}

	feedback := &models.PlatformFeedback{
		ID:      uuid.New(),
		UserID:  &actor.ID,
		Message: message,
	}
	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) List(ctx context.Context, actor *models.User, skip, limit int) ([]models.PlatformFeedback, int64, error) {
	if err := requireSuperuser(actor); err != nil {
		return nil, 0, err
	}
	return s.repo.ListFeedback(ctx, skip, limit)
}
