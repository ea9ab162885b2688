package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmacy-pos-backend/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *utils.TokenService) {
	maker, err := utils.NewJWTMaker("test-secret-test-secret-test-secret-0123")
	require.NoError(t, err)
	tokens := &utils.TokenService{Maker: maker, AccessTTL: time.Minute, RefreshTTL: time.Hour}

	app := fiber.New()
	app.Get("/me", AuthMiddleware(tokens), func(c fiber.Ctx) error {
		principal := CurrentPrincipal(c)
		return c.JSON(fiber.Map{"id": principal.UserID, "username": principal.Username})
	})
	return app, tokens
}

func TestAuthMiddleware(t *testing.T) {
	app, tokens := newTestApp(t)

	access, err := tokens.GenerateAccessToken(7, "dora")
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefreshToken(7, "dora")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + access, want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "refresh token rejected", header: "Bearer " + refresh, want: http.StatusUnauthorized},
		{name: "valid access token", header: "Bearer " + access, want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + access, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestCurrentPrincipalWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		if CurrentPrincipal(c) != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
