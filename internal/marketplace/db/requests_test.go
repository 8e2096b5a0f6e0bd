package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
	"github.com/haku4130/vendors-platform/internal/pkg/utils"
)

func newTestRequest(project *models.Project, vendor *models.VendorProfile, initiator models.RequestInitiator) *models.ProjectRequest {
	return &models.ProjectRequest{
		ID:              uuid.New(),
		ProjectID:       utils.Ptr(project.ID),
		VendorProfileID: utils.Ptr(vendor.ID),
		Initiator:       initiator,
		Status:          models.StatusSent,
	}
}

func TestCreateRequestDuplicatePair(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)
	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	vendor := createTestVendor(t, repo, vendorOwner.ID)

	require.NoError(t, repo.CreateRequest(ctx, newTestRequest(project, vendor, models.InitiatorCompany)))

	// Same pair again, even with the other initiator, hits the unique index.
	err := repo.CreateRequest(ctx, newTestRequest(project, vendor, models.InitiatorVendor))
	assert.ErrorIs(t, err, e.ErrConflict, "duplicate pair should conflict")
}

func TestResolveRequest(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)
	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	vendor := createTestVendor(t, repo, vendorOwner.ID)

	request := newTestRequest(project, vendor, models.InitiatorCompany)
	require.NoError(t, repo.CreateRequest(ctx, request))

	resolved, err := repo.ResolveRequest(ctx, request.ID, models.StatusAccepted)
	require.NoError(t, err, "first resolution should succeed")
	assert.Equal(t, models.StatusAccepted, resolved.Status)

	// The conditional update refuses a second resolution.
	_, err = repo.ResolveRequest(ctx, request.ID, models.StatusDeclined)
	assert.ErrorIs(t, err, e.ErrInvalidState, "second resolution should fail")

	// The stored status is unchanged by the losing attempt.
	stored, err := repo.GetRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, stored.Status)
}

func TestResolveRequestNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.ResolveRequest(context.Background(), uuid.New(), models.StatusAccepted)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestRequestVendorIDsCoversAllStatuses(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)

	var want []uuid.UUID
	for _, status := range []models.RequestStatus{models.StatusSent, models.StatusAccepted, models.StatusDeclined} {
		vendorOwner := createTestUser(t, repo, models.RoleVendor)
		vendor := createTestVendor(t, repo, vendorOwner.ID)
		request := newTestRequest(project, vendor, models.InitiatorCompany)
		request.Status = status
		require.NoError(t, repo.CreateRequest(ctx, request))
		want = append(want, vendor.ID)
	}

	ids, err := repo.RequestVendorIDs(ctx, project.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, ids, "every request status should count as engaged")
}

func TestListRequestsForProjectFilters(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)

	mkRequest := func(initiator models.RequestInitiator, status models.RequestStatus) {
		vendorOwner := createTestUser(t, repo, models.RoleVendor)
		vendor := createTestVendor(t, repo, vendorOwner.ID)
		request := newTestRequest(project, vendor, initiator)
		request.Status = status
		require.NoError(t, repo.CreateRequest(ctx, request))
	}
	mkRequest(models.InitiatorVendor, models.StatusSent)
	mkRequest(models.InitiatorVendor, models.StatusAccepted)
	mkRequest(models.InitiatorCompany, models.StatusSent)

	all, total, err := repo.ListRequestsForProject(ctx, project.ID, RequestFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	pending := models.StatusSent
	fromVendors := models.InitiatorVendor
	filtered, total, err := repo.ListRequestsForProject(ctx, project.ID, RequestFilter{
		Initiator: &fromVendors,
		Status:    &pending,
	}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, models.InitiatorVendor, filtered[0].Initiator)
	assert.Equal(t, models.StatusSent, filtered[0].Status)
}

func TestIncomingRequestsForVendor(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	vendor := createTestVendor(t, repo, vendorOwner.ID)

	fromCompany := createTestProject(t, repo, owner.ID)
	require.NoError(t, repo.CreateRequest(ctx, newTestRequest(fromCompany, vendor, models.InitiatorCompany)))

	// Vendor-initiated requests are outgoing, not incoming.
	fromVendor := createTestProject(t, repo, owner.ID)
	require.NoError(t, repo.CreateRequest(ctx, newTestRequest(fromVendor, vendor, models.InitiatorVendor)))

	requests, total, err := repo.IncomingRequestsForVendor(ctx, vendor.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].ProjectID)
	assert.Equal(t, fromCompany.ID, *requests[0].ProjectID)
}
