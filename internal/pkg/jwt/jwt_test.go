package jwt

import (
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	orgID := "org-123"
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "user@example.com", &orgID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	email, _ := token.Get("email")
	assert.Equal(t, "user@example.com", email)
	organizationID, _ := token.Get("organization_id")
	assert.Equal(t, "org-123", organizationID)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
}

func TestGenerateAccessToken_NoOrganization(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, _, err := svc.GenerateAccessToken("user-1", "user@example.com", nil)
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	organizationID, _ := token.Get("organization_id")
	assert.Nil(t, organizationID)
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	tokenString, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, expiresIn, err := svc.GenerateSSEToken("user-1", "org-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 300, expiresIn)

	userID, organizationID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "org-123", organizationID)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	accessToken, _, err := svc.GenerateAccessToken("user-1", "user@example.com", nil)
	require.NoError(t, err)

	_, _, err = svc.ValidateSSEToken(accessToken)
	assert.Error(t, err)
}

func TestValidateSSEToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)
	other := NewJWTService("another-secret", testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateSSEToken("user-1", "org-123")
	require.NoError(t, err)

	_, _, err = other.ValidateSSEToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	cookie := svc.RefreshTokenCookie("some-token", 86400)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
