package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type ShortlistRepository interface {
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	AddToShortlist(ctx context.Context, projectID, vendorProfileID uuid.UUID) error
	RemoveFromShortlist(ctx context.Context, projectID, vendorProfileID uuid.UUID) error
	ShortlistedVendors(ctx context.Context, projectID uuid.UUID) ([]models.VendorProfile, error)
	RatingStats(ctx context.Context, userID uuid.UUID) (*float64, int64, error)
}

// ShortlistService manages the per-project vendor shortlist. Only the
// owning company may touch it; the matcher reads it as a priority tier.
type ShortlistService struct {
	repo   ShortlistRepository
	logger *zap.Logger
}

func NewShortlistService(repo ShortlistRepository, logger *zap.Logger) *ShortlistService {
	return &ShortlistService{
		repo:   repo,
		logger: logger.Named("shortlist_service"),
	}
}

// Add puts a vendor on the project's shortlist. Adding an already
// shortlisted vendor is a no-op.
func (s *ShortlistService) Add(ctx context.Context, actor *models.User, projectID, vendorProfileID uuid.UUID) error {
	if err := s.ensureOwner(ctx, actor, projectID); err != nil {
		return err
	}
	if _, err := s.repo.GetVendorProfile(ctx, vendorProfileID); err != nil {
		return err
	}
	return s.repo.AddToShortlist(ctx, projectID, vendorProfileID)
}

func (s *ShortlistService) Remove(ctx context.Context, actor *models.User, projectID, vendorProfileID uuid.UUID) error {
	if err := s.ensureOwner(ctx, actor, projectID); err != nil {
		return err
	}
	return s.repo.RemoveFromShortlist(ctx, projectID, vendorProfileID)
}

// Vendors returns the shortlisted profiles, review-enriched.
func (s *ShortlistService) Vendors(ctx context.Context, actor *models.User, projectID uuid.UUID) ([]VendorView, error) {
	if err := s.ensureOwner(ctx, actor, projectID); err != nil {
		return nil, err
	}

	vendors, err := s.repo.ShortlistedVendors(ctx, projectID)
	if err != nil {
		return nil, err
	}
	views := make([]VendorView, 0, len(vendors))
	for i := range vendors {
		view, err := buildVendorView(ctx, s.repo, &vendors[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *ShortlistService) ensureOwner(ctx context.Context, actor *models.User, projectID uuid.UUID) error {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleCompany || project.OwnerID == nil || *project.OwnerID != actor.ID {
		return fmt.Errorf("%w: not authorized to modify this project", e.ErrForbidden)
	}
	return nil
}
