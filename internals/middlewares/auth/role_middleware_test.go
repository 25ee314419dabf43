package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

func roleApp(role string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_role", role)
		return c.Next()
	})
	app.Get("/admin-only", RequireRoles(constants.AdminAndAbove...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {
	app := roleApp(constants.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {
	app := roleApp(constants.RoleStudent)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoles_RejectsMissingRole(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/admin-only", RequireRoles(constants.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
