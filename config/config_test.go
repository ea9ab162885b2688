package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "TOKEN_FORMAT", "ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "CORS_ORIGINS", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DbDriver)
	assert.Equal(t, "jwt", cfg.TokenFormat)
	assert.Equal(t, 60, cfg.AccessTokenTTL)
	assert.Equal(t, 7, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CorsOrigins)
	assert.Empty(t, cfg.AdminPassword)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("TOKEN_FORMAT", "paseto")
	t.Setenv("ACCESS_TOKEN_TTL", "15")
	t.Setenv("REFRESH_TOKEN_TTL", "-3")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DbDriver)
	assert.Equal(t, "paseto", cfg.TokenFormat)
	assert.Equal(t, 15, cfg.AccessTokenTTL)
	assert.Equal(t, 7, cfg.RefreshTokenTTL, "non-positive TTL falls back to default")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.True(t, cfg.IsProduction())
}
