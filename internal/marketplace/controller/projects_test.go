package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
	"github.com/haku4130/vendors-platform/internal/pkg/utils"
)

// MockProjectRepository implements ProjectRepository for testing
type MockProjectRepository struct {
	createProject             func(context.Context, *models.Project) error
	getProject                func(context.Context, uuid.UUID) (*models.Project, error)
	listProjectsForOwner      func(context.Context, uuid.UUID) ([]models.Project, error)
	incomingRequestCounts     func(context.Context, []uuid.UUID) (map[uuid.UUID]int64, error)
	acceptedProjectsForVendor func(context.Context, uuid.UUID, int, int) ([]models.Project, int64, error)
	getServicesByIDs          func(context.Context, []uuid.UUID) ([]models.Service, error)
}

func (m *MockProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return m.createProject(ctx, project)
}

func (m *MockProjectRepository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return m.getProject(ctx, id)
}

func (m *MockProjectRepository) ListProjectsForOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	return m.listProjectsForOwner(ctx, ownerID)
}

func (m *MockProjectRepository) IncomingRequestCounts(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return m.incomingRequestCounts(ctx, projectIDs)
}

func (m *MockProjectRepository) AcceptedProjectsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.Project, int64, error) {
	return m.acceptedProjectsForVendor(ctx, vendorProfileID, skip, limit)
}

func (m *MockProjectRepository) GetServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Service, error) {
	return m.getServicesByIDs(ctx, ids)
}

func serviceIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestProjectService_Create(t *testing.T) {
	owner := &models.User{ID: uuid.New(), Role: models.RoleCompany}

	echoServices := func(mr *MockProjectRepository) {
		mr.getServicesByIDs = func(_ context.Context, ids []uuid.UUID) ([]models.Service, error) {
			return servicesFor(ids...), nil
		}
		mr.createProject = func(_ context.Context, _ *models.Project) error {
			return nil
		}
	}

	validInput := func(n int) *ProjectCreate {
		return &ProjectCreate{
			Title:      "CRM rollout",
			StartDate:  models.StartWithin30Days,
			ServiceIDs: serviceIDs(n),
		}
	}

	tests := []struct {
		name          string
		actor         *models.User
		input         *ProjectCreate
		mockSetup     func(*MockProjectRepository)
		expectedError error
	}{
		{
			name:      "minimum services",
			actor:     owner,
			input:     validInput(5),
			mockSetup: echoServices,
		},
		{
			name:      "maximum services",
			actor:     owner,
			input:     validInput(10),
			mockSetup: echoServices,
		},
		{
			name:          "vendor cannot create projects",
			actor:         &models.User{ID: uuid.New(), Role: models.RoleVendor},
			input:         validInput(5),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrForbidden,
		},
		{
			name:          "too few services",
			actor:         owner,
			input:         validInput(4),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:          "too many services",
			actor:         owner,
			input:         validInput(11),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:  "duplicate service IDs",
			actor: owner,
			input: func() *ProjectCreate {
				in := validInput(5)
				in.ServiceIDs[1] = in.ServiceIDs[0]
				return in
			}(),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:  "unknown service ID",
			actor: owner,
			input: validInput(5),
			mockSetup: func(mr *MockProjectRepository) {
				mr.getServicesByIDs = func(_ context.Context, ids []uuid.UUID) ([]models.Service, error) {
					return servicesFor(ids[:len(ids)-1]...), nil
				}
			},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:  "missing title",
			actor: owner,
			input: func() *ProjectCreate {
				in := validInput(5)
				in.Title = ""
				return in
			}(),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrInvalidInput,
		},
		{
			name:  "unknown start window",
			actor: owner,
			input: func() *ProjectCreate {
				in := validInput(5)
				in.StartDate = models.ProjectStart("Someday")
				return in
			}(),
			mockSetup:     func(_ *MockProjectRepository) {},
			expectedError: e.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockProjectRepository{}
			tt.mockSetup(mockRepo)
			service := NewProjectService(mockRepo, zaptest.NewLogger(t))

			project, err := service.Create(context.Background(), tt.actor, tt.input)

			if tt.expectedError != nil {
				assertErrorIs(t, err, tt.expectedError)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if project.ID == uuid.Nil {
				t.Error("expected project ID to be set")
			}
			if project.OwnerID == nil || *project.OwnerID != tt.actor.ID {
				t.Error("expected project owner to be the actor")
			}
			if len(project.Services) != len(tt.input.ServiceIDs) {
				t.Errorf("expected %d services, got %d", len(tt.input.ServiceIDs), len(project.Services))
			}
		})
	}
}

func TestProjectService_ListForOwner(t *testing.T) {
	owner := &models.User{ID: uuid.New(), Role: models.RoleCompany}
	busy := models.Project{ID: uuid.New(), OwnerID: utils.Ptr(owner.ID)}
	quiet := models.Project{ID: uuid.New(), OwnerID: utils.Ptr(owner.ID)}

	mockRepo := &MockProjectRepository{
		listProjectsForOwner: func(_ context.Context, _ uuid.UUID) ([]models.Project, error) {
			return []models.Project{busy, quiet}, nil
		},
		incomingRequestCounts: func(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]int64, error) {
			return map[uuid.UUID]int64{busy.ID: 3}, nil
		},
	}
	service := NewProjectService(mockRepo, zaptest.NewLogger(t))

	summaries, err := service.ListForOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected two summaries, got %d", len(summaries))
	}
	if summaries[0].IncomingCount != 3 {
		t.Errorf("expected incoming count 3, got %d", summaries[0].IncomingCount)
	}
	// Projects with no pending requests report zero, not a missing entry.
	if summaries[1].IncomingCount != 0 {
		t.Errorf("expected incoming count 0, got %d", summaries[1].IncomingCount)
	}
}

func TestProjectService_Get(t *testing.T) {
	owner := &models.User{ID: uuid.New(), Role: models.RoleCompany}
	project := &models.Project{ID: uuid.New(), OwnerID: utils.Ptr(owner.ID)}

	mockRepo := &MockProjectRepository{
		getProject: func(_ context.Context, _ uuid.UUID) (*models.Project, error) {
			return project, nil
		},
	}
	service := NewProjectService(mockRepo, zaptest.NewLogger(t))

	t.Run("owner reads detail", func(t *testing.T) {
		got, err := service.Get(context.Background(), owner, project.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != project.ID {
			t.Errorf("expected project %v, got %v", project.ID, got.ID)
		}
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := service.Get(context.Background(), &models.User{ID: uuid.New(), Role: models.RoleCompany}, project.ID)
		assertErrorIs(t, err, e.ErrForbidden)
	})
}
