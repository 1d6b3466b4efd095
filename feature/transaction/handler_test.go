package transaction_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupDB(t)
	sessions := session.NewService(db, zap.NewNop())
	h := transaction.NewHandler(transaction.NewService(db, zap.NewNop()), sessions)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app, db
}

func TestHandleCreateTransaction(t *testing.T) {
	app, db := setupApp(t)
	sess := seedSession(t, db)

	body, _ := json.Marshal(transaction.CreateTransactionRequest{
		TransactionID: "TXN-101",
		System:        models.SystemA,
		Amount:        500,
	})
	target := fmt.Sprintf("/transactions/?session_id=%d", sess.ID)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "TXN-101", created.TransactionID)
	assert.Equal(t, sess.ID, created.SessionID)
}

func TestHandleCreateTransaction_UnknownSession(t *testing.T) {
	app, _ := setupApp(t)

	body, _ := json.Marshal(transaction.CreateTransactionRequest{
		TransactionID: "TXN-101",
		System:        models.SystemA,
		Amount:        500,
	})
	req := httptest.NewRequest("POST", "/transactions/?session_id=999", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleCreateTransaction_InvalidSystem(t *testing.T) {
	app, db := setupApp(t)
	sess := seedSession(t, db)

	body := []byte(`{"transaction_id": "TXN-101", "system": "system_c", "amount": 500}`)
	target := fmt.Sprintf("/transactions/?session_id=%d", sess.ID)
	req := httptest.NewRequest("POST", target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleBulkUpload(t *testing.T) {
	app, db := setupApp(t)
	sess := seedSession(t, db)

	body, _ := json.Marshal(transaction.BulkUploadRequest{
		SessionID:    sess.ID,
		Transactions: sampleTransactions(),
	})
	req := httptest.NewRequest("POST", "/transactions/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var confirmation session.MessageResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&confirmation))
	assert.Equal(t, float64(4), confirmation.Details["count"])
}

func TestHandleListBySystem(t *testing.T) {
	app, db := setupApp(t)
	sess := seedSession(t, db)

	svc := transaction.NewService(db, zap.NewNop())
	_, err := svc.BulkCreate(context.Background(), sess.ID, sampleTransactions())
	assert.NoError(t, err)

	target := fmt.Sprintf("/transactions/session/%d/system/system_b", sess.ID)
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []models.Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)

	t.Run("Invalid System Tag", func(t *testing.T) {
		target := fmt.Sprintf("/transactions/session/%d/system/system_c", sess.ID)
		resp, err := app.Test(httptest.NewRequest("GET", target, nil), 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleClearTransactions(t *testing.T) {
	app, db := setupApp(t)
	sess := seedSession(t, db)

	svc := transaction.NewService(db, zap.NewNop())
	_, err := svc.BulkCreate(context.Background(), sess.ID, sampleTransactions())
	assert.NoError(t, err)

	target := fmt.Sprintf("/transactions/session/%d", sess.ID)
	resp, err := app.Test(httptest.NewRequest("DELETE", target, nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", target, nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []models.Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Empty(t, records)
}

func TestLoader(t *testing.T) {
	db := setupDB(t)
	sessions := session.NewService(db, zap.NewNop())
	feature := transaction.NewFeature(db, zap.NewNop(), sessions)

	assert.Equal(t, "transaction", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
