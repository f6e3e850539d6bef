package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_WithoutJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cfg := NewInternalConfig()

	assert.Empty(t, cfg.JWT.Secret)
}

func TestNewInternalConfig_ReadsJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "top-secret")

	cfg := NewInternalConfig()

	assert.Equal(t, "top-secret", cfg.JWT.Secret)
}
