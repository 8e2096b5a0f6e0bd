package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
	"github.com/haku4130/vendors-platform/internal/pkg/utils"
)

func TestListFeedbackNewestFirst(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, repo, models.RoleCompany)
	older := &models.PlatformFeedback{
		ID:        uuid.New(),
		UserID:    utils.Ptr(author.ID),
		Message:   "first note",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &models.PlatformFeedback{
		ID:      uuid.New(),
		UserID:  utils.Ptr(author.ID),
		Message: "second note",
	}
	require.NoError(t, repo.CreateFeedback(ctx, older))
	require.NoError(t, repo.CreateFeedback(ctx, newer))

	feedback, total, err := repo.ListFeedback(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, feedback, 2)
	assert.Equal(t, newer.ID, feedback[0].ID)
	require.NotNil(t, feedback[0].User, "submitter should be preloaded")
	assert.Equal(t, author.ID, feedback[0].User.ID)

	// Total counts the whole table, not the page.
	page, total, err := repo.ListFeedback(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 1)
}
