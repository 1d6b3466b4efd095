package transaction

import (
	"context"
	"fmt"

	"recon-service/feature/session/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxBulkTransactions caps a single bulk upload.
const MaxBulkTransactions = 10000

// Service handles transaction operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new transaction service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create stores a single transaction for a session.
func (s *Service) Create(ctx context.Context, sessionID uint, req CreateTransactionRequest) (*models.Transaction, error) {
	record := models.Transaction{
		TransactionID: req.TransactionID,
		SessionID:     sessionID,
		System:        req.System,
		Amount:        req.Amount,
		Metadata:      req.Metadata,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return &record, nil
}

// BulkCreate stores a batch of transactions for a session in one insert.
func (s *Service) BulkCreate(ctx context.Context, sessionID uint, reqs []CreateTransactionRequest) ([]models.Transaction, error) {
	if len(reqs) == 0 {
		return []models.Transaction{}, nil
	}

	records := make([]models.Transaction, 0, len(reqs))
	for _, req := range reqs {
		records = append(records, models.Transaction{
			TransactionID: req.TransactionID,
			SessionID:     sessionID,
			System:        req.System,
			Amount:        req.Amount,
			Metadata:      req.Metadata,
		})
	}

	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to bulk create transactions: %w", err)
	}

	s.logger.Info("Bulk uploaded transactions",
		zap.Uint("session_id", sessionID),
		zap.Int("count", len(records)),
	)
	return records, nil
}

// ListBySession returns all transactions for a session.
func (s *Service) ListBySession(ctx context.Context, sessionID uint) ([]models.Transaction, error) {
	var records []models.Transaction
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for session %d: %w", sessionID, err)
	}
	return records, nil
}

// ListBySystem returns the transactions reported by one system for a session.
func (s *Service) ListBySystem(ctx context.Context, sessionID uint, system models.System) ([]models.Transaction, error) {
	var records []models.Transaction
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND system = ?", sessionID, system).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s transactions for session %d: %w", system, sessionID, err)
	}
	return records, nil
}

// Clear deletes all transactions for a session and returns the deleted count.
func (s *Service) Clear(ctx context.Context, sessionID uint) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear transactions for session %d: %w", sessionID, result.Error)
	}
	return result.RowsAffected, nil
}
