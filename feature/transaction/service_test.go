package transaction_test

import (
	"context"
	"testing"

	"recon-service/core/database"
	"recon-service/feature/session"
	"recon-service/feature/session/models"
	"recon-service/feature/transaction"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Session{}, &models.Transaction{})
	assert.NoError(t, err)

	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seedSession(t *testing.T, db *gorm.DB) *models.Session {
	t.Helper()

	sessions := session.NewService(db, zap.NewNop())
	created, err := sessions.Create(context.Background(), session.CreateSessionRequest{
		SessionName: "txn_test_session",
		SystemAName: "Finance System",
		SystemBName: "Stripe",
	})
	assert.NoError(t, err)
	return created
}

func sampleTransactions() []transaction.CreateTransactionRequest {
	return []transaction.CreateTransactionRequest{
		{TransactionID: "TXN-101", System: models.SystemA, Amount: 500},
		{TransactionID: "TXN-102", System: models.SystemA, Amount: 1000},
		{TransactionID: "TXN-101", System: models.SystemB, Amount: 500},
		{TransactionID: "TXN-103", System: models.SystemB, Amount: 200},
	}
}

func TestService_Create(t *testing.T) {
	db := setupDB(t)
	svc := transaction.NewService(db, zap.NewNop())
	sess := seedSession(t, db)

	record, err := svc.Create(context.Background(), sess.ID, transaction.CreateTransactionRequest{
		TransactionID: "TXN-101",
		System:        models.SystemA,
		Amount:        500,
		Metadata:      `{"source": "api"}`,
	})
	assert.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, "TXN-101", record.TransactionID)
	assert.Equal(t, models.SystemA, record.System)
}

func TestService_BulkCreate(t *testing.T) {
	db := setupDB(t)
	svc := transaction.NewService(db, zap.NewNop())
	sess := seedSession(t, db)
	ctx := context.Background()

	records, err := svc.BulkCreate(ctx, sess.ID, sampleTransactions())
	assert.NoError(t, err)
	assert.Len(t, records, 4)

	t.Run("Empty Batch Is A No-Op", func(t *testing.T) {
		records, err := svc.BulkCreate(ctx, sess.ID, nil)
		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestService_List(t *testing.T) {
	db := setupDB(t)
	svc := transaction.NewService(db, zap.NewNop())
	sess := seedSession(t, db)
	ctx := context.Background()

	_, err := svc.BulkCreate(ctx, sess.ID, sampleTransactions())
	assert.NoError(t, err)

	t.Run("By Session", func(t *testing.T) {
		records, err := svc.ListBySession(ctx, sess.ID)
		assert.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("By System", func(t *testing.T) {
		records, err := svc.ListBySystem(ctx, sess.ID, models.SystemA)
		assert.NoError(t, err)
		assert.Len(t, records, 2)
		for _, record := range records {
			assert.Equal(t, models.SystemA, record.System)
		}
	})

	t.Run("Unknown Session Is Empty", func(t *testing.T) {
		records, err := svc.ListBySession(ctx, 999)
		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestService_Clear(t *testing.T) {
	db := setupDB(t)
	svc := transaction.NewService(db, zap.NewNop())
	sess := seedSession(t, db)
	ctx := context.Background()

	_, err := svc.BulkCreate(ctx, sess.ID, sampleTransactions())
	assert.NoError(t, err)

	count, err := svc.Clear(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), count)

	records, err := svc.ListBySession(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Empty(t, records)

	// Clearing an already-empty session deletes nothing
	count, err = svc.Clear(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_ListBySession_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := transaction.NewService(db, zap.NewNop())

	mock.ExpectQuery("SELECT \\* FROM `transactions`").
		WillReturnError(assert.AnError)

	_, err := svc.ListBySession(context.Background(), 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
