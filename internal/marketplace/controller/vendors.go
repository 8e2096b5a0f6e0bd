package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type VendorRepository interface {
	CreateVendorProfile(ctx context.Context, profile *models.VendorProfile) error
	GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	GetVendorProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.VendorProfile, error)
	SearchVendors(ctx context.Context, serviceIDs []uuid.UUID, location string) ([]models.VendorProfile, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, error)
	RatingStats(ctx context.Context, userID uuid.UUID) (*float64, int64, error)
}

// VendorProfileCreate carries the validated input for a new vendor profile.
type VendorProfileCreate struct {
	MainGoal       string
	SalesEmail     string
	ContactPhone   string
	CompanyWebsite string
	Description    string
	EmployeeCount  int
	FoundedYear    int
	Turnover       float64
	MinProjectSize float64
	AvgHourlyRate  float64
	ServiceIDs     []uuid.UUID
}

// VendorView is a read-only projection of a profile enriched with the
// owning user's review aggregate. Rating is nil for unreviewed or orphaned
// profiles.
type VendorView struct {
	Profile      *models.VendorProfile `json:"profile"`
	Rating       *float64              `json:"rating"`
	ReviewsCount int64                 `json:"reviews_count"`
}

type VendorService struct {
	repo   VendorRepository
	logger *zap.Logger
}

func NewVendorService(repo VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		repo:   repo,
		logger: logger.Named("vendor_service"),
	}
}

// CreateProfile registers the acting vendor's profile. One profile per
// user; the same 5–10 service bound as projects applies.
func (s *VendorService) CreateProfile(ctx context.Context, actor *models.User, input *VendorProfileCreate) (*models.VendorProfile, error) {
	if actor.Role != models.RoleVendor {
		return nil, fmt.Errorf("%w: vendor account required", e.ErrForbidden)
	}

	if _, err := s.repo.GetVendorProfileByUserID(ctx, actor.ID); err == nil {
		return nil, fmt.Errorf("%w: profile already exists", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	services, err := resolveServiceIDs(ctx, s.repo, input.ServiceIDs)
	if err != nil {
		return nil, err
	}

	profile := &models.VendorProfile{
		ID:             uuid.New(),
		UserID:         &actor.ID,
		MainGoal:       input.MainGoal,
		SalesEmail:     input.SalesEmail,
		ContactPhone:   input.ContactPhone,
		CompanyWebsite: input.CompanyWebsite,
		Description:    input.Description,
		EmployeeCount:  input.EmployeeCount,
		FoundedYear:    input.FoundedYear,
		Turnover:       input.Turnover,
		MinProjectSize: input.MinProjectSize,
		AvgHourlyRate:  input.AvgHourlyRate,
		Services:       services,
	}
	if err := s.repo.CreateVendorProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create vendor profile: %w", err)
	}
	return profile, nil
}

// Get returns a review-enriched view of any vendor profile.
func (s *VendorService) Get(ctx context.Context, id uuid.UUID) (*VendorView, error) {
	profile, err := s.repo.GetVendorProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildVendorView(ctx, s.repo, profile)
}

// ProfileForUser returns the acting vendor's own profile.
func (s *VendorService) ProfileForUser(ctx context.Context, actor *models.User) (*VendorView, error) {
	if actor.Role != models.RoleVendor {
		return nil, fmt.Errorf("%w: only vendors have vendor profiles", e.ErrForbidden)
	}
	profile, err := s.repo.GetVendorProfileByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return buildVendorView(ctx, s.repo, profile)
}

// Search finds vendors offering at least one of the requested services,
// ranked by raw match count descending, optionally narrowed by location.
// Without service filters the pool is returned unranked.
func (s *VendorService) Search(ctx context.Context, serviceIDs []uuid.UUID, location string, skip, limit int) ([]VendorView, int, error) {
	vendors, err := s.repo.SearchVendors(ctx, serviceIDs, location)
	if err != nil {
		return nil, 0, err
	}

	if len(serviceIDs) > 0 {
		requested := idSet(serviceIDs)
		sort.SliceStable(vendors, func(i, j int) bool {
			return overlapCount(requested, vendors[i].Services) > overlapCount(requested, vendors[j].Services)
		})
	}

	page := pageOf(vendors, skip, limit)
	views := make([]VendorView, 0, len(page))
	for i := range page {
		view, err := buildVendorView(ctx, s.repo, &page[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, len(vendors), nil
}

type ratingSource interface {
	RatingStats(ctx context.Context, userID uuid.UUID) (*float64, int64, error)
}

// buildVendorView attaches the owning user's rating aggregate to a profile.
// Orphaned profiles carry no rating.
func buildVendorView(ctx context.Context, src ratingSource, profile *models.VendorProfile) (*VendorView, error) {
	view := &VendorView{Profile: profile}
	if profile.UserID == nil {
		return view, nil
	}

	rating, count, err := src.RatingStats(ctx, *profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rating stats: %w", err)
	}
	view.Rating = rating
	view.ReviewsCount = count
	return view, nil
}
