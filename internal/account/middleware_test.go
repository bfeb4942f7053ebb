package account

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authProtected(t *testing.T, m *JWTManager) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Authenticated-User", claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(m)(next)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	m := newTestJWTManager()
	h := authProtected(t, m)

	token, err := m.GenerateAccessToken("u-1", "anna@example.com", RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", rec.Header().Get("X-Authenticated-User"))
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	h := authProtected(t, newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	h := authProtected(t, newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	h := authProtected(t, newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-token")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_TokenSignedWithOtherSecret(t *testing.T) {
	h := authProtected(t, newTestJWTManager())
	other := NewJWTManager("a-completely-different-secret-value", 15*time.Minute, time.Hour)

	token, err := other.GenerateAccessToken("u-1", "anna@example.com", RoleCustomer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
