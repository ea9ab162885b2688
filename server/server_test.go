package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy-pos-backend/database/dbtest"
	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOriginPattern(t *testing.T) {
	tests := []struct {
		pattern string
		origin  string
		want    bool
	}{
		{pattern: "http://192.168.1.*:5173", origin: "http://192.168.1.20:5173", want: true},
		{pattern: "http://192.168.1.*:5173", origin: "http://192.168.2.20:5173", want: false},
		{pattern: "http://localhost:5173", origin: "http://localhost:5173", want: false},
		{pattern: "http://*.*", origin: "http://a.b", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchOriginPattern(tt.pattern, tt.origin), "%s vs %s", tt.pattern, tt.origin)
	}
}

func TestCorsAllowsConfiguredOrigins(t *testing.T) {
	cfg := dbtest.Config(t)
	cfg.CorsOrigins = []string{"http://localhost:5173", " http://10.0.0.*:3000"}

	corsCfg := corsConfig(cfg)
	require.NotNil(t, corsCfg.AllowOriginsFunc)
	assert.True(t, corsCfg.AllowCredentials)
	assert.True(t, corsCfg.AllowOriginsFunc("http://localhost:5173"))
	assert.True(t, corsCfg.AllowOriginsFunc("http://10.0.0.7:3000"))
	assert.False(t, corsCfg.AllowOriginsFunc("http://evil.example"))

	cfg.CorsOrigins = []string{"*"}
	corsCfg = corsConfig(cfg)
	assert.Equal(t, []string{"*"}, corsCfg.AllowOrigins)
	assert.False(t, corsCfg.AllowCredentials)
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Get("/boom", func(c fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/teapot", func(c fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{path: "/boom", status: http.StatusInternalServerError, message: "Internal server error"},
		{path: "/teapot", status: http.StatusTeapot, message: "short and stout"},
	}

	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
		require.NoError(t, err)

		var body utils.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, tt.status, resp.StatusCode)
		assert.False(t, body.Success)
		assert.Equal(t, tt.message, body.Error)
	}
}

func TestNewServesHealthAndMetrics(t *testing.T) {
	cfg := dbtest.Config(t)
	db := dbtest.New(t, cfg)
	tokens, err := utils.NewTokenService(cfg)
	require.NoError(t, err)

	app := New(cfg, db, tokens)

	for _, path := range []string{"/api/health", "/metrics"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
