package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "pet_qa_forum", cfg.MongoDB)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.False(t, cfg.DevEndpoints)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("DEV_ENDPOINTS", "true")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.True(t, cfg.DevEndpoints)
	require.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestBadDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	require.Equal(t, 24*time.Hour, Load().TokenTTL)
}
