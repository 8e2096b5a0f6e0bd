package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haku4130/vendors-platform/internal/marketplace/db"
	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/events"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// RequestRepository is the storage surface of the request state machine.
type RequestRepository interface {
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetVendorProfile(ctx context.Context, id uuid.UUID) (*models.VendorProfile, error)
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.ProjectRequest, error)
	GetRequestByPair(ctx context.Context, projectID, vendorProfileID uuid.UUID) (*models.ProjectRequest, error)
	CreateRequest(ctx context.Context, request *models.ProjectRequest) error
	ResolveRequest(ctx context.Context, id uuid.UUID, status models.RequestStatus) (*models.ProjectRequest, error)
	ListRequestsForProject(ctx context.Context, projectID uuid.UUID, filter db.RequestFilter, skip, limit int) ([]models.ProjectRequest, int64, error)
	IncomingRequestsForVendor(ctx context.Context, vendorProfileID uuid.UUID, skip, limit int) ([]models.ProjectRequest, int64, error)
}

type EventProducer interface {
	Produce(eventType events.EventType, request *models.ProjectRequest)
}

// RequestService owns the connection-request lifecycle:
// sent -> accepted | declined, resolved only by the counterparty.
type RequestService struct {
	repo     RequestRepository
	producer EventProducer
	logger   *zap.Logger
}

func NewRequestService(repo RequestRepository, producer EventProducer, logger *zap.Logger) *RequestService {
	return &RequestService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("request_service"),
	}
}

// Create opens a request between a project and a vendor profile on behalf
// of the initiating side. At most one request may exist per pair; the
// pre-check returns the friendly Conflict and the unique index catches the
// concurrent-create race with the same error kind.
func (s *RequestService) Create(ctx context.Context, actor *models.User, projectID, vendorProfileID uuid.UUID, initiator models.RequestInitiator) (*models.ProjectRequest, error) {
	if initiator != models.InitiatorCompany && initiator != models.InitiatorVendor {
		return nil, fmt.Errorf("%w: unknown initiator %q", e.ErrInvalidInput, initiator)
	}

	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	vendor, err := s.repo.GetVendorProfile(ctx, vendorProfileID)
	if err != nil {
		return nil, err
	}
	if err := authorizeCreate(actor, initiator, project, vendor); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetRequestByPair(ctx, projectID, vendorProfileID); err == nil {
		return nil, fmt.Errorf("%w: request already exists for this pair", e.ErrConflict)
	} else if !errors.Is(err, e.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing request: %w", err)
	}

	request := &models.ProjectRequest{
		ID:              uuid.New(),
		ProjectID:       &projectID,
		VendorProfileID: &vendorProfileID,
		Initiator:       initiator,
		Status:          models.StatusSent,
	}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	go func() {
		s.producer.Produce(events.RequestSent, request)
	}()
	return request, nil
}

// Resolve moves a sent request to accepted or declined. Only the side that
// did not initiate may resolve; the storage layer's conditional update
// guarantees at most one resolution succeeds.
func (s *RequestService) Resolve(ctx context.Context, actor *models.User, requestID uuid.UUID, newStatus models.RequestStatus) (*models.ProjectRequest, error) {
	if newStatus != models.StatusAccepted && newStatus != models.StatusDeclined {
		return nil, fmt.Errorf("%w: cannot transition a request to %q", e.ErrInvalidInput, newStatus)
	}

	request, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := authorizeResolve(actor, request); err != nil {
		return nil, err
	}
	if request.Resolved() {
		return nil, fmt.Errorf("%w: request already processed", e.ErrInvalidState)
	}

	updated, err := s.repo.ResolveRequest(ctx, requestID, newStatus)
	if err != nil {
		return nil, err
	}

	eventType := events.RequestAccepted
	if newStatus == models.StatusDeclined {
		eventType = events.RequestDeclined
	}
	go func() {
		s.producer.Produce(eventType, updated)
	}()
	return updated, nil
}

// ListForProject returns the project's requests for its owning company.
func (s *RequestService) ListForProject(ctx context.Context, actor *models.User, projectID uuid.UUID, filter db.RequestFilter, skip, limit int) ([]models.ProjectRequest, int64, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, 0, err
	}
	if actor.Role != models.RoleCompany || project.OwnerID == nil || *project.OwnerID != actor.ID {
		return nil, 0, fmt.Errorf("%w: not the project owner", e.ErrForbidden)
	}
	return s.repo.ListRequestsForProject(ctx, projectID, filter, skip, limit)
}

// Incoming returns company-initiated requests against the acting vendor's
// profile, newest first.
func (s *RequestService) Incoming(ctx context.Context, actor *models.User, skip, limit int) ([]models.ProjectRequest, int64, error) {
	if actor.Role != models.RoleVendor || actor.VendorProfile == nil {
		return nil, 0, fmt.Errorf("%w: vendor account required", e.ErrForbidden)
	}
	return s.repo.IncomingRequestsForVendor(ctx, actor.VendorProfile.ID, skip, limit)
}

// authorizeCreate checks that the actor owns the initiating side.
func authorizeCreate(actor *models.User, initiator models.RequestInitiator, project *models.Project, vendor *models.VendorProfile) error {
	switch initiator {
	case models.InitiatorCompany:
		if actor.Role != models.RoleCompany || project.OwnerID == nil || *project.OwnerID != actor.ID {
			return fmt.Errorf("%w: only the project owner may send this request", e.ErrForbidden)
		}
	case models.InitiatorVendor:
		if actor.Role != models.RoleVendor || actor.VendorProfile == nil || actor.VendorProfile.ID != vendor.ID {
			return fmt.Errorf("%w: only the profile owner may send this request", e.ErrForbidden)
		}
	}
	return nil
}

// authorizeResolve encodes the approval rule as a pure function of the
// initiator, the acting user and the request: the party that did not
// initiate is the one that approves. Requests orphaned by a deleted
// counterparty cannot be resolved by anyone.
func authorizeResolve(actor *models.User, request *models.ProjectRequest) error {
	switch request.Initiator {
	case models.InitiatorCompany:
		if actor.Role != models.RoleVendor || actor.VendorProfile == nil ||
			request.VendorProfileID == nil || *request.VendorProfileID != actor.VendorProfile.ID {
			return fmt.Errorf("%w: only the requested vendor may resolve this request", e.ErrForbidden)
		}
	case models.InitiatorVendor:
		if actor.Role != models.RoleCompany || request.Project == nil ||
			request.Project.OwnerID == nil || *request.Project.OwnerID != actor.ID {
			return fmt.Errorf("%w: only the project owner may resolve this request", e.ErrForbidden)
		}
	default:
		return fmt.Errorf("%w: request has unknown initiator %q", e.ErrInvalidState, request.Initiator)
	}
	return nil
}
