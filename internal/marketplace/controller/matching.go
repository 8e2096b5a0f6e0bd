// Package controller implements the business logic (service layer) of the
// vendors platform: the matching engine, the request state machine, and the
// CRUD orchestration around projects, vendors, shortlists and reviews.
package controller

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// MatchingRepository is the read surface the matching engine depends on.
type MatchingRepository interface {
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	RequestVendorIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	RequestProjectIDs(ctx context.Context, vendorProfileID uuid.UUID) ([]uuid.UUID, error)
	ShortlistedVendorIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	ListVendorsExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.VendorProfile, error)
	ListProjectsExcluding(ctx context.Context, excluded []uuid.UUID) ([]models.Project, error)
}

// VendorMatch is one ranked candidate for a project. Score is the matched
// share of the project's required services, in [0, 1].
type VendorMatch struct {
	Profile *models.VendorProfile `json:"profile"`
	Score   float64               `json:"score"`
}

// ProjectMatch is one ranked candidate for a vendor. Overlap is the raw
// count of shared service tags; it is deliberately not normalized, so the
// two ranking directions do not share a score scale.
type ProjectMatch struct {
	Project *models.Project `json:"project"`
	Overlap int             `json:"overlap"`
}

// MatchingService ranks vendors for a project and projects for a vendor.
// Both operations are read-only.
type MatchingService struct {
	repo   MatchingRepository
	logger *zap.Logger
}

func NewMatchingService(repo MatchingRepository, logger *zap.Logger) *MatchingService {
	return &MatchingService{
		repo:   repo,
		logger: logger.Named("matching_service"),
	}
}

// RankVendorsForProject ranks every vendor without an existing request
// against the project. Vendors already engaged with the project (any
// request status) are excluded outright. Ordering: shortlisted vendors
// first, then matched share of required services descending, ties broken
// by the vendor's total service count descending. Returns the requested
// page and the post-exclusion candidate total.
func (s *MatchingService) RankVendorsForProject(ctx context.Context, projectID uuid.UUID, skip, limit int) ([]VendorMatch, int, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	required := project.ServiceIDSet()
	requiredCount := len(required)

	engaged, err := s.repo.RequestVendorIDs(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	shortlistIDs, err := s.repo.ShortlistedVendorIDs(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	shortlisted := idSet(shortlistIDs)

	vendors, err := s.repo.ListVendorsExcluding(ctx, engaged)
	if err != nil {
		return nil, 0, err
	}

	matches := make([]VendorMatch, 0, len(vendors))
	for i := range vendors {
		vendor := &vendors[i]
		var score float64
		if requiredCount > 0 {
			score = float64(overlapCount(required, vendor.Services)) / float64(requiredCount)
		}
		matches = append(matches, VendorMatch{Profile: vendor, Score: score})
	}

	if requiredCount == 0 {
		// No required services: every vendor qualifies with score 0 and
		// only the shortlist tier orders the pool.
		sort.SliceStable(matches, func(i, j int) bool {
			_, si := shortlisted[matches[i].Profile.ID]
			_, sj := shortlisted[matches[j].Profile.ID]
			return si && !sj
		})
		return pageOf(matches, skip, limit), len(matches), nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		_, si := shortlisted[matches[i].Profile.ID]
		_, sj := shortlisted[matches[j].Profile.ID]
		if si != sj {
			return si
		}
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return len(matches[i].Profile.Services) > len(matches[j].Profile.Services)
	})

	return pageOf(matches, skip, limit), len(matches), nil
}

// RankProjectsForVendor is the mirror direction: every project the vendor
// has no request against, scored by raw service-tag overlap, ties broken by
// project creation time (newest first).
func (s *MatchingService) RankProjectsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]ProjectMatch, int, error) {
	vendor, err := s.repo.GetVendorProfile(ctx, vendorProfileID)
	if err != nil {
		return nil, 0, err
	}
	offered := vendor.ServiceIDSet()

	engaged, err := s.repo.RequestProjectIDs(ctx, vendorProfileID)
	if err != nil {
		return nil, 0, err
	}
	projects, err := s.repo.ListProjectsExcluding(ctx, engaged)
	if err != nil {
		return nil, 0, err
	}

	matches := make([]ProjectMatch, 0, len(projects))
	for i := range projects {
		project := &projects[i]
		matches = append(matches, ProjectMatch{
			Project: project,
			Overlap: overlapCount(offered, project.Services),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Overlap != matches[j].Overlap {
			return matches[i].Overlap > matches[j].Overlap
		}
		return matches[i].Project.CreatedAt.After(matches[j].Project.CreatedAt)
	})

	return pageOf(matches, skip, limit), len(matches), nil
}

func overlapCount(required map[uuid.UUID]struct{}, services []models.Service) int {
	count := 0
	for _, svc := range services {
		if _, ok := required[svc.ID]; ok {
			count++
		}
	}
	return count
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// pageOf applies offset pagination after the full sort. Negative skip and
// limit are treated as zero.
func pageOf[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
