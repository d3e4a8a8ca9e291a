package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key")
	os.Unsetenv("JWT_ISSUER")
	os.Unsetenv("JWT_EXPIRATION_HOURS")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, "talent-screen", cfg.Issuer, "should use default issuer")
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
}

func TestNewJWTConfig_CustomValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "my-secret-key-123")
	t.Setenv("JWT_ISSUER", "screening-api")
	t.Setenv("JWT_EXPIRATION_HOURS", "36")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "my-secret-key-123", cfg.Secret)
	assert.Equal(t, "screening-api", cfg.Issuer)
	assert.Equal(t, 36, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	tests := []struct {
		name        string
		expiration  string
		description string
	}{
		{
			name:        "non-numeric expiration",
			expiration:  "invalid",
			description: "should error when JWT_EXPIRATION_HOURS is non-numeric",
		},
		{
			name:        "zero expiration",
			expiration:  "0",
			description: "should error when JWT_EXPIRATION_HOURS is zero",
		},
		{
			name:        "negative expiration",
			expiration:  "-1",
			description: "should error when JWT_EXPIRATION_HOURS is negative",
		},
		{
			name:        "float expiration",
			expiration:  "12.5",
			description: "should error when JWT_EXPIRATION_HOURS is a float",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret-key")
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			require.Error(t, err, tt.description)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
		})
	}
}
