package database

import (
	"testing"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestContactSubmissionRepoSetReadGuardsOnReadBit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactSubmissionRepo(db)

	submission := &models.ContactSubmission{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there",
		IsRead:  true,
	}
	require.NoError(t, repo.Add(submission))

	stored, err := repo.FindByID(submission.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.False(t, stored.IsRead, "submissions always start unread")

	require.NoError(t, repo.SetRead(stored.ID, true, false))

	// The bit flipped, so a guard that still claims unread is stale.
	err = repo.SetRead(stored.ID, true, false)
	require.ErrorIs(t, err, errs.ErrStaleRecord)

	after, err := repo.FindByID(stored.ID)
	require.NoError(t, err)
	require.True(t, after.IsRead)

	err = repo.SetRead(uuid.New(), true, false)
	require.ErrorIs(t, err, errs.ErrStaleRecord)
}
