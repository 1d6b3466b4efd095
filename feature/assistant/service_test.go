package assistant_test

import (
	"context"
	"testing"

	"recon-service/core/audit"
	"recon-service/core/database"
	"recon-service/feature/assistant"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// recordingSink captures audit entries for assertions.
type recordingSink struct {
	actions   []string
	successes []bool
}

func (r *recordingSink) Log(action string, arguments map[string]any, success bool, err error) {
	r.actions = append(r.actions, action)
	r.successes = append(r.successes, success)
}

func setupService(t *testing.T, sink audit.Sink) (*assistant.Service, uint) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Session{}, &models.Transaction{}))

	sess, id := seedAssistantData(t, db)
	transactions := transaction.NewService(db, zap.NewNop())
	recon := reconciliation.NewService(db, sess, nil, "reports", zap.NewNop())

	return assistant.NewService(sess, transactions, recon, sink, zap.NewNop()), id
}

func seedAssistantData(t *testing.T, db *gorm.DB) (*session.Service, uint) {
	t.Helper()

	sessions := session.NewService(db, zap.NewNop())
	created, err := sessions.Create(context.Background(), session.CreateSessionRequest{
		SessionName: "assistant_test",
		SystemAName: "Finance System",
		SystemBName: "Stripe",
	})
	assert.NoError(t, err)

	transactions := transaction.NewService(db, zap.NewNop())
	_, err = transactions.BulkCreate(context.Background(), created.ID, []transaction.CreateTransactionRequest{
		{TransactionID: "TXN-101", System: models.SystemA, Amount: 100},
		{TransactionID: "TXN-102", System: models.SystemA, Amount: 200},
		{TransactionID: "TXN-101", System: models.SystemB, Amount: 100},
		{TransactionID: "TXN-102", System: models.SystemB, Amount: 250},
	})
	assert.NoError(t, err)

	return sessions, created.ID
}

func TestService_Run_Health(t *testing.T) {
	svc, _ := setupService(t, audit.NopSink{})

	resp, err := svc.Run(context.Background(), "health", nil)
	assert.NoError(t, err)
	assert.Equal(t, assistant.ActionHealth, resp.Action)
	assert.Equal(t, "healthy", resp.Result["status"])
}

func TestService_Run_Reconcile(t *testing.T) {
	svc, id := setupService(t, audit.NopSink{})

	resp, err := svc.Run(context.Background(), "reconcile session 1", nil)
	assert.NoError(t, err)
	assert.Equal(t, assistant.ActionReconcile, resp.Action)
	assert.Contains(t, resp.Explanation, "2 matched transactions")
	assert.Contains(t, resp.Explanation, "Match rate: 100%")

	analysis, ok := resp.Result["analysis"].(*reconciliation.AnalysisResult)
	assert.True(t, ok)
	assert.Equal(t, id, analysis.SessionID)
}

func TestService_Run_Discrepancies(t *testing.T) {
	svc, _ := setupService(t, audit.NopSink{})

	resp, err := svc.Run(context.Background(), "show discrepancies for session 1", nil)
	assert.NoError(t, err)
	assert.Equal(t, assistant.ActionGetDiscrepancies, resp.Action)
	assert.Contains(t, resp.Explanation, "Found 1 amount discrepancies")
	assert.Contains(t, resp.Explanation, "$50")
}

func TestService_Run_Help(t *testing.T) {
	svc, _ := setupService(t, audit.NopSink{})

	resp, err := svc.Run(context.Background(), "make me a sandwich", nil)
	assert.NoError(t, err)
	assert.Equal(t, assistant.ActionHelp, resp.Action)
	assert.Equal(t, "unknown_intent", resp.Result["reason"])
	assert.NotEmpty(t, resp.Result["examples"])
}

func TestService_Run_MetadataOverride(t *testing.T) {
	svc, id := setupService(t, audit.NopSink{})

	// Message classifies as help, the override forces a summary
	resp, err := svc.Run(context.Background(), "whatever", map[string]any{
		"action": "get_summary",
		"params": map[string]any{"session_id": float64(id)},
	})
	assert.NoError(t, err)
	assert.Equal(t, assistant.ActionGetSummary, resp.Action)
}

func TestService_Run_UnknownSession(t *testing.T) {
	svc, _ := setupService(t, audit.NopSink{})

	_, err := svc.Run(context.Background(), "reconcile session 999", nil)
	assert.ErrorIs(t, err, reconciliation.ErrSessionNotFound)
}

func TestService_Run_Audits(t *testing.T) {
	sink := &recordingSink{}
	svc, _ := setupService(t, sink)
	ctx := context.Background()

	_, err := svc.Run(ctx, "list sessions", nil)
	assert.NoError(t, err)

	_, err = svc.Run(ctx, "reconcile session 999", nil)
	assert.Error(t, err)

	assert.Equal(t, []string{"list_sessions", "reconcile"}, sink.actions)
	assert.Equal(t, []bool{true, false}, sink.successes)
}
