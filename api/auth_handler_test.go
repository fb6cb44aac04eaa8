package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig(t *testing.T) map[string]string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "test-secret",
	}
}

func postLogin(handler authHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.login().ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	handler := newAuthHandler(testAuthConfig(t))

	rec := postLogin(handler, `{"email":"admin@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result LoginResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)

	claims, err := parseToken([]byte("test-secret"), result.Token)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	handler := newAuthHandler(testAuthConfig(t))

	rec := postLogin(handler, `{"email":"admin@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWrongEmail(t *testing.T) {
	handler := newAuthHandler(testAuthConfig(t))

	rec := postLogin(handler, `{"email":"intruder@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginNotConfigured(t *testing.T) {
	handler := newAuthHandler(nil)

	rec := postLogin(handler, `{"email":"admin@example.com","password":"hunter2"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoginMalformedBody(t *testing.T) {
	handler := newAuthHandler(testAuthConfig(t))

	rec := postLogin(handler, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
