package session

import (
	"context"
	"errors"
	"fmt"

	"recon-service/feature/session/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDuplicateName is returned when a session with the requested name
// already exists.
var ErrDuplicateName = errors.New("session name already exists")

// Service handles reconciliation session operations.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new session service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create stores a new reconciliation session. Session names are unique.
func (s *Service) Create(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	existing, err := s.GetByName(ctx, req.SessionName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	session := models.Session{
		SessionName: req.SessionName,
		SystemAName: req.SystemAName,
		SystemBName: req.SystemBName,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// List returns all reconciliation sessions.
func (s *Service) List(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := s.db.WithContext(ctx).Order("id").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// GetByID returns the session with the given id, or (nil, nil) when it does
// not exist.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %d: %w", id, err)
	}
	return &session, nil
}

// GetByName returns the session with the given name, or (nil, nil) when it
// does not exist.
func (s *Service) GetByName(ctx context.Context, name string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("session_name = ?", name).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %q: %w", name, err)
	}
	return &session, nil
}

// Delete removes a session and all of its transactions. It reports whether
// a session was actually deleted.
func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	session, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, id).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete session %d: %w", id, err)
	}

	s.logger.Info("Deleted session", zap.Uint("session_id", id))
	return true, nil
}
