package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Frabbi727/mine-portfolio/database"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/Frabbi727/mine-portfolio/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func putReadState(h http.HandlerFunc, id uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/admin/contact/"+id.String()+"/read", strings.NewReader(body))
	req = withURLParam(req, "contactID", id.String())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func seedSubmission(t *testing.T, repo *database.ContactSubmissionRepo) models.ContactSubmission {
	t.Helper()
	submission := services.NewContactSubmission("Ada", "ada@example.com", "Hello there")
	require.NoError(t, repo.Add(&submission))
	return submission
}

func TestSetReadFlipAndIdempotentWrites(t *testing.T) {
	d := setupTestDatabase(t)
	handler := newContactHandler(d.ContactSubmissionRepo(), map[string]string{})
	submission := seedSubmission(t, d.ContactSubmissionRepo())

	// Omitted value flips the fresh submission from unread to read.
	rec := putReadState(handler.setRead(), submission.ID, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := d.ContactSubmissionRepo().FindByID(submission.ID)
	require.NoError(t, err)
	require.True(t, stored.IsRead)

	// Writing the value the record already carries is not a conflict.
	rec = putReadState(handler.setRead(), submission.ID, `{"value":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err = d.ContactSubmissionRepo().FindByID(submission.ID)
	require.NoError(t, err)
	require.True(t, stored.IsRead)

	// An explicit opposite value flips back.
	rec = putReadState(handler.setRead(), submission.ID, `{"value":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err = d.ContactSubmissionRepo().FindByID(submission.ID)
	require.NoError(t, err)
	require.False(t, stored.IsRead)
}

func TestSetReadUnknownSubmission(t *testing.T) {
	d := setupTestDatabase(t)
	handler := newContactHandler(d.ContactSubmissionRepo(), map[string]string{})

	rec := putReadState(handler.setRead(), uuid.New(), `{"value":true}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
