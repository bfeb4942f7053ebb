package account

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager() *JWTManager {
	return NewJWTManager("test-secret-at-least-32-characters", 15*time.Minute, 30*24*time.Hour)
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := newTestJWTManager()

	token, err := m.GenerateAccessToken("u-1", "anna@example.com", RoleCustomer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTManager_RefreshTokenRoundTrip(t *testing.T) {
	m := newTestJWTManager()

	token, err := m.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

func TestJWTManager_ExpiredAccessToken(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-32-characters", -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("u-1", "anna@example.com", RoleCustomer)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	m := newTestJWTManager()
	other := NewJWTManager("a-completely-different-secret-value", 15*time.Minute, time.Hour)

	token, err := m.GenerateAccessToken("u-1", "anna@example.com", RoleCustomer)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_AccessTokenIsNotRefreshToken(t *testing.T) {
	m := newTestJWTManager()

	refresh, err := m.GenerateRefreshToken("u-1")
	require.NoError(t, err)

	// A refresh token parses as access claims but carries no email/role.
	claims, err := m.ValidateAccessToken(refresh)
	require.NoError(t, err)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestJWTManager_RejectsForeignIssuer(t *testing.T) {
	m := newTestJWTManager()

	// Signed with the right secret but minted by something else.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		Issuer:    "another-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := foreign.SignedString([]byte("test-secret-at-least-32-characters"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(raw)
	assert.Error(t, err)
}

func TestJWTManager_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestJWTManager()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u-1",
		Issuer:    tokenIssuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(raw)
	assert.Error(t, err)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	m := newTestJWTManager()

	_, err := m.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)

	_, err = m.ValidateRefreshToken("")
	assert.Error(t, err)
}
