package session_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"recon-service/feature/session"
	"recon-service/feature/session/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	svc := session.NewService(setupDB(t), zap.NewNop())
	h := session.NewHandler(svc)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

func TestHandleCreateSession(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(sampleRequest())
	req := httptest.NewRequest("POST", "/sessions/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Session
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "test_finance_vs_stripe", created.SessionName)
	assert.NotZero(t, created.ID)

	// Duplicate name
	req = httptest.NewRequest("POST", "/sessions/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleCreateSession_Validation(t *testing.T) {
	app := setupApp(t)

	// Missing required system names
	body := []byte(`{"session_name": "incomplete"}`)
	req := httptest.NewRequest("POST", "/sessions/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetSession_NotFound(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/999", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListSessions_Empty(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sessions []models.Session
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&sessions))
	assert.Empty(t, sessions)
}

func TestHandleDeleteSession(t *testing.T) {
	app := setupApp(t)

	body, _ := json.Marshal(sampleRequest())
	req := httptest.NewRequest("POST", "/sessions/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)

	var created models.Session
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp, err = app.Test(httptest.NewRequest("DELETE", "/sessions/1", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/sessions/1", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := session.NewFeature(setupDB(t), zap.NewNop())

	assert.Equal(t, "session", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
