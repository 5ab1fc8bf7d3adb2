package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrivilegeApp(privileges []string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if privileges != nil {
			c.Locals("user_privileges", privileges)
		}
		return c.Next()
	})
	app.Get("/", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestRequirePrivilege(t *testing.T) {
	t.Run("passes with the exact privilege", func(t *testing.T) {
		app := newPrivilegeApp([]string{"product:update"}, RequirePrivilege("product:update"))

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("rejects without it", func(t *testing.T) {
		app := newPrivilegeApp([]string{"quote:create"}, RequirePrivilege("product:update"))

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}

func TestRequireAnyPrivilege(t *testing.T) {
	editorGate := RequireAnyPrivilege("product:create", "product:update", "product:delete", "category:reorder")

	t.Run("any editing privilege opens the admin catalog", func(t *testing.T) {
		app := newPrivilegeApp([]string{"category:reorder"}, editorGate)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("a sales-only session is rejected", func(t *testing.T) {
		app := newPrivilegeApp([]string{"quote:create"}, editorGate)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("missing privilege claims are rejected", func(t *testing.T) {
		app := newPrivilegeApp(nil, editorGate)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))

		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})
}
