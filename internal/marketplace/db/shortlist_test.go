package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

func TestAddToShortlistIdempotent(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)
	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	vendor := createTestVendor(t, repo, vendorOwner.ID)

	require.NoError(t, repo.AddToShortlist(ctx, project.ID, vendor.ID))
	// Adding again is a no-op, not an error.
	require.NoError(t, repo.AddToShortlist(ctx, project.ID, vendor.ID))

	ids, err := repo.ShortlistedVendorIDs(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{vendor.ID}, ids)

	shortlisted, err := repo.IsShortlisted(ctx, project.ID, vendor.ID)
	require.NoError(t, err)
	assert.True(t, shortlisted)
}

func TestRemoveFromShortlist(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)
	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	vendor := createTestVendor(t, repo, vendorOwner.ID)

	require.NoError(t, repo.AddToShortlist(ctx, project.ID, vendor.ID))
	require.NoError(t, repo.RemoveFromShortlist(ctx, project.ID, vendor.ID))

	shortlisted, err := repo.IsShortlisted(ctx, project.ID, vendor.ID)
	require.NoError(t, err)
	assert.False(t, shortlisted)

	// Removing an absent entry reports not found.
	err = repo.RemoveFromShortlist(ctx, project.ID, vendor.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestShortlistedVendorsScopedToProject(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, models.RoleCompany)
	project := createTestProject(t, repo, owner.ID)
	other := createTestProject(t, repo, owner.ID)

	vendorOwner := createTestUser(t, repo, models.RoleVendor)
	mine := createTestVendor(t, repo, vendorOwner.ID)
	otherOwner := createTestUser(t, repo, models.RoleVendor)
	theirs := createTestVendor(t, repo, otherOwner.ID)

	require.NoError(t, repo.AddToShortlist(ctx, project.ID, mine.ID))
	require.NoError(t, repo.AddToShortlist(ctx, other.ID, theirs.ID))

	vendors, err := repo.ShortlistedVendors(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, mine.ID, vendors[0].ID)
}
