package session

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Session feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(db, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "session"
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

// Service exposes the underlying service for features that need session
// lookups (transaction, reconciliation, assistant).
func (f *Feature) Service() *Service {
	return f.service
}
