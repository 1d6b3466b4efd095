package reconciliation

import (
	"recon-service/core/storage"
	"recon-service/feature/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Reconciliation feature. storageClient may be nil
// when report archiving is disabled.
func NewFeature(db *gorm.DB, logger *zap.Logger, sessions *session.Service, storageClient storage.Client, bucket string) *Feature {
	svc := NewService(db, sessions, storageClient, bucket, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconciliation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for the assistant feature.
func (f *Feature) Service() *Service {
	return f.service
}
