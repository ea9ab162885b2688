// Package dbtest provides migrated throwaway SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"pharmacy-pos-backend/config"
	"pharmacy-pos-backend/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns a configuration suitable for tests backed by a SQLite file
func Config(t testing.TB) *config.Config {
	t.Helper()

	return &config.Config{
		DbDriver:           database.DriverSqlite,
		DbTz:               "UTC",
		SqlitePath:         filepath.Join(t.TempDir(), "test.db"),
		Env:                "test",
		LogLevel:           "error",
		RateLimitMax:       1000,
		TokenFormat:        "jwt",
		JwtSecret:          "test-secret-test-secret-test-secret-0123",
		PasetoSymmetricKey: "0123456789abcdef0123456789abcdef",
		CorsOrigins:        []string{"*"},
		AccessTokenTTL:     15,
		RefreshTokenTTL:    1,
		AdminUsername:      "admin",
		AdminEmail:         "admin@pharmacy.local",
	}
}

// New opens and migrates a fresh database for cfg
func New(t testing.TB, cfg *config.Config) *gorm.DB {
	t.Helper()

	dialector, err := database.Dialector(cfg)
	require.NoError(t, err)

	db, err := database.Open(dialector, cfg)
	require.NoError(t, err)
	require.NoError(t, database.MigrateDatabase(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
