package assistant_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"recon-service/core/audit"
	"recon-service/core/database"
	"recon-service/feature/assistant"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	svc, _ := setupService(t, audit.NopSink{})

	app := fiber.New()
	assistant.NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleChat(t *testing.T) {
	app := setupApp(t)

	payload, _ := json.Marshal(assistant.ChatRequest{Message: "summary for session 1"})
	req := httptest.NewRequest("POST", "/assistant/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body assistant.ChatResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, assistant.ActionGetSummary, body.Action)
	assert.Contains(t, body.Explanation, "match rate")
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/assistant/chat", bytes.NewReader([]byte(`{"message": ""}`)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleChat_UnknownSession(t *testing.T) {
	app := setupApp(t)

	payload, _ := json.Marshal(assistant.ChatRequest{Message: "reconcile session 999"})
	req := httptest.NewRequest("POST", "/assistant/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleExamples(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/assistant/examples", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body assistant.ExamplesResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Examples, 7)
	assert.Equal(t, "health", body.Examples[0].Prompt)
}

func TestLoader(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Session{}, &models.Transaction{}))

	sessions := session.NewService(db, zap.NewNop())
	transactions := transaction.NewService(db, zap.NewNop())
	recon := reconciliation.NewService(db, sessions, nil, "reports", zap.NewNop())

	feature := assistant.NewFeature(sessions, transactions, recon, audit.NopSink{}, zap.NewNop())
	assert.Equal(t, "assistant", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
