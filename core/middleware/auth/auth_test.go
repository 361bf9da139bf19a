package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"media-library/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(auth.HeaderName, "nope")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ValidKey", func(t *testing.T) {
		app := setupApp("secret")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("DisabledWhenKeyEmpty", func(t *testing.T) {
		app := setupApp("")

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
