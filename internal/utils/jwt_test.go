package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medingen-server/internal/config"
	"medingen-server/internal/models"
)

func testConfig(expiryMinutes int) *config.Config {
	return &config.Config{
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: expiryMinutes,
	}
}

func testUser(id string) *models.User {
	user := &models.User{Username: "alice"}
	user.ID = id
	return user
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig(60)
	token, err := GenerateAccessToken(testUser("user-1"), cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig(60)
	token, err := GenerateAccessToken(testUser("user-1"), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testConfig(-1) // already expired when issued
	token, err := GenerateAccessToken(testUser("user-1"), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.JWTSecret)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	assert.Error(t, err)
}
