package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy-pos-backend/database/dbtest"
	"pharmacy-pos-backend/models"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminMiddleware(t *testing.T) {
	db := dbtest.New(t, dbtest.Config(t))

	users := []models.User{
		{Username: "dora", Email: "dora@example.com", Password: "x", IsActive: true},
		{Username: "staff", Email: "staff@example.com", Password: "x", IsActive: true, IsStaff: true},
		{Username: "root", Email: "root@example.com", Password: "x", IsActive: true, IsSuperuser: true},
		{Username: "Admin", Email: "admin@example.com", Password: "x", IsActive: true},
		{Username: "retired", Email: "retired@example.com", Password: "x", IsStaff: true},
	}
	ids := map[string]uint{}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
		// IsActive defaults to true on insert when left false
		require.NoError(t, db.Model(&users[i]).Update("is_active", users[i].Username != "retired").Error)
		ids[users[i].Username] = users[i].ID
	}

	app := fiber.New()
	app.Get("/admin", func(c fiber.Ctx) error {
		if id := c.Get("X-User"); id != "" {
			c.Locals(principalKey{}, &Principal{UserID: ids[id], Username: id})
		}
		return c.Next()
	}, AdminMiddleware(db), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name string
		user string
		want int
	}{
		{name: "no principal", user: "", want: http.StatusUnauthorized},
		{name: "regular user", user: "dora", want: http.StatusForbidden},
		{name: "inactive staff", user: "retired", want: http.StatusForbidden},
		{name: "deleted account", user: "ghost", want: http.StatusForbidden},
		{name: "staff", user: "staff", want: http.StatusNoContent},
		{name: "superuser", user: "root", want: http.StatusNoContent},
		{name: "reserved username", user: "Admin", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.user != "" {
				req.Header.Set("X-User", tt.user)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
