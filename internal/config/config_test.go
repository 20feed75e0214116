package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUsesDefaults(t *testing.T) {
	cfg := New()

	require.Equal(t, DefaultServerPort, cfg.Server.Port)
	require.Equal(t, DefaultMongoDB, cfg.Mongo.Database)
	require.Equal(t, DefaultTokenTTLHour, cfg.Auth.TokenTTLHour)
	require.Equal(t, DefaultMinioBucket, cfg.Minio.Bucket)
	require.Equal(t, ":"+DefaultServerPort, cfg.Server.Address())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017/hr")
	t.Setenv("TOKEN_TTL_HOURS", "12")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := New()
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "mongodb://db:27017/hr", cfg.Mongo.URI)
	require.Equal(t, 12, cfg.Auth.TokenTTLHour)
	require.True(t, cfg.Minio.UseSSL)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "soon")
	cfg := New()
	require.Equal(t, DefaultTokenTTLHour, cfg.Auth.TokenTTLHour)
}
