package integration

import (
	"net/http"
	"testing"
)

const testPassword = "Sup3rSecretPass"

// registerUser creates a fresh account and returns its email and tokens.
func registerUser(t *testing.T) (email, accessToken, refreshToken string) {
	t.Helper()

	email = uniqueEmail("auth")
	status, data := httpPost(t, baseURL()+"/api/v1/auth/register", map[string]interface{}{
		"email":      email,
		"password":   testPassword,
		"first_name": "Анна",
		"last_name":  "Смирнова",
	})
	requireStatus(t, status, http.StatusCreated)

	accessToken = extractString(t, data, "data.tokens.access_token")
	refreshToken = extractString(t, data, "data.tokens.refresh_token")
	return email, accessToken, refreshToken
}

// TestAuthRegisterAndLogin verifies the register/login round trip.
func TestAuthRegisterAndLogin(t *testing.T) {
	skipIfNotRunning(t)

	email, _, _ := registerUser(t)

	status, data := httpPost(t, baseURL()+"/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": testPassword,
	})
	requireStatus(t, status, http.StatusOK)

	if got := extractString(t, data, "data.user.email"); got != email {
		t.Fatalf("expected user email %q, got %q", email, got)
	}
	if token := extractString(t, data, "data.tokens.access_token"); token == "" {
		t.Fatal("expected non-empty access token")
	}
}

// TestAuthWrongPassword verifies invalid credentials return 401.
func TestAuthWrongPassword(t *testing.T) {
	skipIfNotRunning(t)

	email, _, _ := registerUser(t)

	status, _ := httpPost(t, baseURL()+"/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "Wr0ngPassword!",
	})
	requireStatus(t, status, http.StatusUnauthorized)
}

// TestAuthDuplicateEmail verifies double registration is rejected.
func TestAuthDuplicateEmail(t *testing.T) {
	skipIfNotRunning(t)

	email, _, _ := registerUser(t)

	status, _ := httpPost(t, baseURL()+"/api/v1/auth/register", map[string]interface{}{
		"email":      email,
		"password":   testPassword,
		"first_name": "Анна",
	})
	requireStatus(t, status, http.StatusConflict)
}

// TestAuthRefreshRotation verifies refresh token rotation: the new pair
// works and the old refresh token is revoked.
func TestAuthRefreshRotation(t *testing.T) {
	skipIfNotRunning(t)

	_, _, refreshToken := registerUser(t)

	status, data := httpPost(t, baseURL()+"/api/v1/auth/refresh", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	requireStatus(t, status, http.StatusOK)
	if token := extractString(t, data, "data.access_token"); token == "" {
		t.Fatal("expected rotated access token")
	}

	// The old refresh token must be unusable after rotation.
	status, _ = httpPost(t, baseURL()+"/api/v1/auth/refresh", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	requireStatus(t, status, http.StatusUnauthorized)
}

// TestAuthProfile verifies the authenticated profile endpoints.
func TestAuthProfile(t *testing.T) {
	skipIfNotRunning(t)

	email, accessToken, _ := registerUser(t)

	status, data := httpGetWithHeaders(t, baseURL()+"/api/v1/profile", authHeader(accessToken))
	requireStatus(t, status, http.StatusOK)
	if got := extractString(t, data, "data.email"); got != email {
		t.Fatalf("expected profile email %q, got %q", email, got)
	}

	status, _ = httpGet(t, baseURL()+"/api/v1/profile")
	requireStatus(t, status, http.StatusUnauthorized)
}

// TestAuthForgotPasswordAlwaysAccepted verifies unknown emails do not leak
// account existence.
func TestAuthForgotPasswordAlwaysAccepted(t *testing.T) {
	skipIfNotRunning(t)

	status, _ := httpPost(t, baseURL()+"/api/v1/auth/forgot-password", map[string]interface{}{
		"email": uniqueEmail("ghost"),
	})
	requireStatus(t, status, http.StatusAccepted)
}
