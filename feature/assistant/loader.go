package assistant

import (
	"recon-service/core/audit"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"
	"recon-service/feature/transaction"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new Assistant feature.
func NewFeature(sessions *session.Service, transactions *transaction.Service, recon *reconciliation.Service, sink audit.Sink, logger *zap.Logger) *Feature {
	svc := NewService(sessions, transactions, recon, sink, logger)
	return &Feature{handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assistant"
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
