package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-screen/internal/config"
	"github.com/jonathan/talent-screen/internal/types"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing",
		Issuer:          "talent-screen",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, types.RoleInterviewer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, types.RoleInterviewer, claims.Role)
	assert.Equal(t, "talent-screen", claims.Issuer)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestValidateTokenErrors(t *testing.T) {
	svc := testJWTService()

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken("")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{
			Secret:          "a-completely-different-secret",
			Issuer:          "talent-screen",
			ExpirationHours: 1,
		})
		token, err := other.GenerateToken(uuid.New(), types.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTService(&config.JWTConfig{
			Secret:          "test-secret-key-for-jwt-signing",
			Issuer:          "talent-screen",
			ExpirationHours: -1,
		})
		token, err := expired.GenerateToken(uuid.New(), types.RoleCandidate)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestAsTokenValidator(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, types.RoleAdmin)
	require.NoError(t, err)

	getter, err := svc.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
