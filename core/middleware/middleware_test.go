package middleware_test

import (
	"net/http/httptest"
	"testing"

	"recon-service/core/middleware/auth"
	"recon-service/core/middleware/rayid"
	"recon-service/core/middleware/readonly"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", okHandler)

	t.Run("Generates ID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))
	})

	t.Run("Preserves Incoming ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.HeaderName, "upstream-ray")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-ray", resp.Header.Get(rayid.HeaderName))
	})
}

func TestAuth(t *testing.T) {
	t.Run("No Key Configured", func(t *testing.T) {
		app := fiber.New()
		app.Use(auth.New(auth.Config{}))
		app.Get("/", okHandler)

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Valid Key", func(t *testing.T) {
		app := fiber.New()
		app.Use(auth.New(auth.Config{ApiKey: "secret"}))
		app.Get("/", okHandler)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "secret")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Invalid Key", func(t *testing.T) {
		app := fiber.New()
		app.Use(auth.New(auth.Config{ApiKey: "secret"}))
		app.Get("/", okHandler)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "wrong")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestReadOnly(t *testing.T) {
	app := fiber.New()
	app.Use(readonly.New(true))
	app.Get("/", okHandler)
	app.Post("/", okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
