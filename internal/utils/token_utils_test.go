package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadps/poultry_ledger_app/internal/utils"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "test-secret", time.Hour, "test-issuer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "test-secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", "test-secret", -time.Minute, "test-issuer")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseAndValidateJWT_Garbage(t *testing.T) {
	claims, err := utils.ParseAndValidateJWT("not-a-token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, utils.CheckPasswordHash("hunter2-but-longer", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}
