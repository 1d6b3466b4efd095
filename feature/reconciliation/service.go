package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recon-service/core/engine"
	"recon-service/core/storage"
	"recon-service/feature/session"
	"recon-service/feature/session/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrSessionNotFound is returned when the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageDisabled is returned by Export when no object store is configured.
	ErrStorageDisabled = errors.New("object storage is not configured")
)

// Service runs the reconciliation engine against a session's stored
// transactions. The engine itself is pure; this layer owns the data loading
// and the report archive.
type Service struct {
	db       *gorm.DB
	sessions *session.Service
	storage  storage.Client
	bucket   string
	logger   *zap.Logger
}

// NewService creates a new reconciliation service. storageClient may be nil
// when archiving is disabled.
func NewService(db *gorm.DB, sessions *session.Service, storageClient storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		sessions: sessions,
		storage:  storageClient,
		bucket:   bucket,
		logger:   logger,
	}
}

// requireSession loads the session or returns ErrSessionNotFound.
func (s *Service) requireSession(ctx context.Context, sessionID uint) (*models.Session, error) {
	found, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("%w: id %d", ErrSessionNotFound, sessionID)
	}
	return found, nil
}

// loadRecords fetches one system's records for a session as engine input.
func (s *Service) loadRecords(ctx context.Context, sessionID uint, system models.System) ([]engine.Record, error) {
	var rows []models.Transaction
	err := s.db.WithContext(ctx).
		Select("transaction_id", "amount").
		Where("session_id = ? AND system = ?", sessionID, system).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load %s records for session %d: %w", system, sessionID, err)
	}

	records := make([]engine.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, engine.Record{ID: row.TransactionID, Amount: row.Amount})
	}
	return records, nil
}

// loadBothSystems fetches both record collections for a session.
func (s *Service) loadBothSystems(ctx context.Context, sessionID uint) ([]engine.Record, []engine.Record, error) {
	recordsA, err := s.loadRecords(ctx, sessionID, models.SystemA)
	if err != nil {
		return nil, nil, err
	}
	recordsB, err := s.loadRecords(ctx, sessionID, models.SystemB)
	if err != nil {
		return nil, nil, err
	}
	return recordsA, recordsB, nil
}

// Analyse reconciles the session's transaction identifiers with set operations.
func (s *Service) Analyse(ctx context.Context, sessionID uint) (*AnalysisResult, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	recordsA, recordsB, err := s.loadBothSystems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	matches := engine.Reconcile(recordIDs(recordsA), recordIDs(recordsB))

	return &AnalysisResult{
		SessionID:           sess.ID,
		SessionName:         sess.SessionName,
		SystemAName:         sess.SystemAName,
		SystemBName:         sess.SystemBName,
		TotalSystemA:        matches.TotalA,
		TotalSystemB:        matches.TotalB,
		MatchedCount:        len(matches.Matched),
		MatchedTransactions: matches.Matched,
		OnlyInSystemACount:  len(matches.OnlyA),
		OnlyInSystemA:       matches.OnlyA,
		OnlyInSystemBCount:  len(matches.OnlyB),
		OnlyInSystemB:       matches.OnlyB,
		MatchRate:           matches.MatchRate,
	}, nil
}

// Discrepancies finds matched transactions whose amounts disagree.
func (s *Service) Discrepancies(ctx context.Context, sessionID uint) (*DiscrepancyResult, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	recordsA, recordsB, err := s.loadBothSystems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := engine.FindDiscrepancies(recordsA, recordsB)

	details := make([]DiscrepancyDetail, 0, len(report.Discrepancies))
	for _, d := range report.Discrepancies {
		details = append(details, DiscrepancyDetail{
			TransactionID: d.ID,
			SystemAAmount: d.AmountA,
			SystemBAmount: d.AmountB,
			Difference:    d.Difference,
		})
	}

	return &DiscrepancyResult{
		SessionID:                     sess.ID,
		SessionName:                   sess.SessionName,
		TransactionsWithDiscrepancies: report.Count(),
		Discrepancies:                 details,
		TotalDiscrepancyAmount:        report.TotalDifference,
	}, nil
}

// Summary computes the session's aggregate statistics.
func (s *Service) Summary(ctx context.Context, sessionID uint) (*SummaryResult, error) {
	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	recordsA, recordsB, err := s.loadBothSystems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := engine.Summarize(recordsA, recordsB)

	return &SummaryResult{
		SessionID:          sess.ID,
		SessionName:        sess.SessionName,
		SystemAName:        sess.SystemAName,
		SystemBName:        sess.SystemBName,
		SystemACount:       summary.SystemACount,
		SystemBCount:       summary.SystemBCount,
		MatchedCount:       summary.MatchedCount,
		DiscrepancyCount:   summary.UnmatchedCount,
		MatchRate:          summary.MatchRate,
		SystemATotalAmount: summary.SystemATotal,
		SystemBTotalAmount: summary.SystemBTotal,
		AmountDifference:   summary.AmountDifference,
	}, nil
}

// Export runs all three analyses and archives them as one JSON object in the
// report bucket. Returns ErrStorageDisabled when no store is configured.
func (s *Service) Export(ctx context.Context, sessionID uint) (*ExportResult, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	sess, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	analysis, err := s.Analyse(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	discrepancies, err := s.Discrepancies(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary, err := s.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	envelope := ArchiveEnvelope{
		ExportedAt:    time.Now().UTC(),
		SessionID:     sess.ID,
		SessionName:   sess.SessionName,
		Analysis:      analysis,
		Discrepancies: discrepancies,
		Summary:       summary,
	}

	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report archive: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("%s/%s.json", sess.SessionName, envelope.ExportedAt.Format("20060102T150405Z"))
	info, err := s.storage.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to archive report %s: %w", objectName, err)
	}

	s.logger.Info("Archived reconciliation report",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int64("size", info.Size),
	)

	return &ExportResult{Bucket: s.bucket, Object: objectName, Size: info.Size}, nil
}

func (s *Service) ensureBucket(ctx context.Context) error {
	exists, err := s.storage.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check report bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.storage.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create report bucket %s: %w", s.bucket, err)
	}
	return nil
}

func recordIDs(records []engine.Record) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	return ids
}
