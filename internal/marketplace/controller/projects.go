package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjectsForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error)
	IncomingRequestCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	AcceptedProjectsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.Project, int64, error)
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, error)
}

// ProjectCreate carries the validated input for a new project.
type ProjectCreate struct {
	Title       string
	Description string
	StartDate   models.ProjectStart
	Location    string
	Website     string
	Budget      float64
	ServiceIDs  []uuid.UUID
}

// ProjectSummary is a read-only projection for owner listings: the project
// plus the number of vendor requests awaiting a decision. The count never
// lives on the persisted entity.
type ProjectSummary struct {
	Project       *models.Project `json:"project"`
	IncomingCount int64           `json:"incoming_count"`
}

type ProjectService struct {
	repo   ProjectRepository
	logger *zap.Logger
}

func NewProjectService(repo ProjectRepository, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:   repo,
		logger: logger.Named("project_service"),
	}
}

// Create validates and persists a new project for a company account. A
// project requires between 5 and 10 existing services.
func (s *ProjectService) Create(ctx context.Context, owner *models.User, input *ProjectCreate) (*models.Project, error) {
	if owner.Role != models.RoleCompany {
		return nil, fmt.Errorf("%w: company account required", e.ErrForbidden)
	}
	if input.Title == "" || len(input.Title) > 255 {
		return nil, fmt.Errorf("%w: invalid title", e.ErrInvalidInput)
	}
	if len(input.Description) > 2000 {
		return nil, fmt.Errorf("%w: description too long", e.ErrInvalidInput)
	}
	switch input.StartDate {
	case models.StartWithin30Days, models.StartWithin60Days, models.StartAfter60Days:
	default:
		return nil, fmt.Errorf("%w: invalid start window %q", e.ErrInvalidInput, input.StartDate)
	}

	services, err := s.resolveServices(ctx, input.ServiceIDs)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:          uuid.New(),
		OwnerID:     &owner.ID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		Location:    input.Location,
		Website:     input.Website,
		Budget:      input.Budget,
		Services:    services,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Get returns a project's detail to its owning company.
func (s *ProjectService) Get(ctx context.Context, actor *models.User, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID == nil || *project.OwnerID != actor.ID {
		return nil, fmt.Errorf("%w: not the project owner", e.ErrForbidden)
	}
	return project, nil
}

// ListForOwner returns the company's projects, each with its pending
// incoming-request count attached.
func (s *ProjectService) ListForOwner(ctx context.Context, owner *models.User) ([]ProjectSummary, error) {
	projects, err := s.repo.ListProjectsForOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return []ProjectSummary{}, nil
	}

	ids := make([]uuid.UUID, len(projects))
	for i := range projects {
		ids[i] = projects[i].ID
	}
	counts, err := s.repo.IncomingRequestCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, len(projects))
	for i := range projects {
		summaries[i] = ProjectSummary{
			Project:       &projects[i],
			IncomingCount: counts[projects[i].ID],
		}
	}
	return summaries, nil
}

// AcceptedForVendor lists the projects the acting vendor was accepted on.
func (s *ProjectService) AcceptedForVendor(ctx context.Context, actor *models.User, skip, limit int) ([]models.Project, int64, error) {
	if actor.Role != models.RoleVendor || actor.VendorProfile == nil {
		return nil, 0, fmt.Errorf("%w: vendor account required", e.ErrForbidden)
	}
	return s.repo.AcceptedProjectsForVendor(ctx, actor.VendorProfile.ID, skip, limit)
}

func (s *ProjectService) resolveServices(ctx context.Context, ids []uuid.UUID) ([]models.Service, error) {
	return resolveServiceIDs(ctx, s.repo, ids)
}

type serviceResolver interface {
	GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, error)
}

// resolveServiceIDs enforces the 5–10 service bound shared by projects and
// vendor profiles, and rejects unknown or duplicated service IDs.
func resolveServiceIDs(ctx context.Context, repo serviceResolver, ids []uuid.UUID) ([]models.Service, error) {
	unique := idSet(ids)
	if len(unique) != len(ids) {
		return nil, fmt.Errorf("%w: duplicate service IDs", e.ErrInvalidInput)
	}
	if len(ids) < models.MinProjectServices || len(ids) > models.MaxProjectServices {
		return nil, fmt.Errorf("%w: between %d and %d services required, got %d",
			e.ErrInvalidInput, models.MinProjectServices, models.MaxProjectServices, len(ids))
	}

	services, err := repo.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve services: %w", err)
	}
	if len(services) != len(ids) {
		return nil, fmt.Errorf("%w: unknown service ID", e.ErrInvalidInput)
	}
	return services, nil
}
