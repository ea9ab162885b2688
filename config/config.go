package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Database settings
	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPass     string
	DbName     string
	DbSslMode  string
	DbTz       string
	SqlitePath string

	// Server settings
	Env          string
	Port         string
	AppUrl       string
	AppName      string
	LogLevel     string
	RateLimitMax int

	// Security settings
	TokenFormat        string // jwt or paseto
	JwtSecret          string
	PasetoSymmetricKey string
	CorsOrigins        []string
	AccessTokenTTL     int // minutes
	RefreshTokenTTL    int // days

	// Seeded administrator, skipped when password is empty
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:5173"
	}

	return &Config{
		// Database settings
		DbDriver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "5432"),
		DbUser:     getEnv("DB_USER", "postgres"),
		DbPass:     getEnv("DB_PASSWORD", "password"),
		DbName:     getEnv("DB_NAME", "pharmacy_db"),
		DbSslMode:  getEnv("DB_SSLMODE", "disable"),
		DbTz:       getEnv("DB_TZ", "UTC"),
		SqlitePath: getEnv("SQLITE_PATH", "pharmacy.db"),

		// Server settings
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "8000"),
		AppUrl:       getEnv("APP_URL", "http://localhost:8000"),
		AppName:      getEnv("APP_NAME", "Pharmacy POS API"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),

		// Security settings
		TokenFormat:        strings.ToLower(getEnv("TOKEN_FORMAT", "jwt")),
		JwtSecret:          getEnv("JWT_SECRET", "change-me-to-a-long-random-jwt-secret"),
		PasetoSymmetricKey: getEnv("PASETO_SYMMETRIC_KEY", "your-32-character-secret-key!!!!"), // Must be 32 chars
		CorsOrigins:        strings.Split(corsOrigins, ","),
		AccessTokenTTL:     getEnvInt("ACCESS_TOKEN_TTL", 60),
		RefreshTokenTTL:    getEnvInt("REFRESH_TOKEN_TTL", 7),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@pharmacy.local"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// IsProduction reports whether the app runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to the default for missing, malformed or non-positive values
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
