package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func parseConfig(t *testing.T) *AppConfig {
	t.Helper()
	cfg := &AppConfig{}
	require.NoError(t, env.Parse(cfg))
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := parseConfig(t)

	assert.False(t, cfg.IsDev)
	assert.Equal(t, AuthModePassword, cfg.Auth.Mode)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Empty(t, cfg.HTTP.CookieDomain)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_MODE", "sso")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("OAUTH_CLIENT_ID", "portal")
	t.Setenv("ADMIN_GROUP", "cn=shelter-admins")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_COOKIE_DOMAIN", "petshop.example.com")

	cfg := parseConfig(t)

	assert.Equal(t, AuthModeSSO, cfg.Auth.Mode)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "portal", cfg.Auth.OAuth.ClientID)
	assert.Equal(t, "cn=shelter-admins", cfg.Auth.AdminGroup)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5433, cfg.Postgres.Port)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "petshop.example.com", cfg.HTTP.CookieDomain)
}

func TestAuthMode_UnmarshalText(t *testing.T) {
	var mode AuthMode
	require.NoError(t, mode.UnmarshalText([]byte("SSO")))
	assert.Equal(t, AuthModeSSO, mode)

	err := mode.UnmarshalText([]byte("basic"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid AuthMode")
}

func TestAuthConfig_SanitizeClampsValues(t *testing.T) {
	a := AuthConfig{SessionTTL: time.Second, BcryptCost: 0}
	a.Sanitize()
	assert.Equal(t, time.Minute, a.SessionTTL)
	assert.Equal(t, bcrypt.DefaultCost, a.BcryptCost)

	a = AuthConfig{SessionTTL: time.Hour, BcryptCost: 99}
	a.Sanitize()
	assert.Equal(t, bcrypt.MaxCost, a.BcryptCost)
}

func TestHTTPConfig_SanitizeClampsCompressionLevel(t *testing.T) {
	h := HTTPConfig{CompressionLevel: 0}
	h.Sanitize()
	assert.Equal(t, 1, h.CompressionLevel)

	h = HTTPConfig{CompressionLevel: 42}
	h.Sanitize()
	assert.Equal(t, 9, h.CompressionLevel)
}

func TestAppConfig_DetectsDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := parseConfig(t)
	assert.True(t, cfg.IsDev)
}
