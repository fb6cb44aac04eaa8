package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := issueToken(secret, "admin@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := parseToken(secret, token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := issueToken([]byte("right-secret"), "admin@example.com", time.Hour)
	require.NoError(t, err)

	_, err = parseToken([]byte("wrong-secret"), token)
	require.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := issueToken(secret, "admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(secret, token)
	require.Error(t, err)
}

func TestAuthenticateMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	middleware := newAuthMiddleware(secret)

	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := ctxGetAdminSubject(r.Context())
		require.NoError(t, err)
		gotSubject = subject
		w.WriteHeader(http.StatusOK)
	})

	token, err := issueToken(secret, "admin@example.com", time.Hour)
	require.NoError(t, err)

	t.Run("valid token reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		middleware.authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "admin@example.com", gotSubject)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		rec := httptest.NewRecorder()

		middleware.authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()

		middleware.authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured secret rejects everything", func(t *testing.T) {
		unconfigured := newAuthMiddleware(nil)
		req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		unconfigured.authenticate(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
