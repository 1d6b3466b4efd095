package reconciliation

import (
	"errors"
	"strconv"

	"recon-service/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation analyses.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliation")
	group.Get("/analyse/:session_id", h.HandleAnalyse)
	group.Get("/discrepancies/:session_id", h.HandleDiscrepancies)
	group.Get("/summary/:session_id", h.HandleSummary)
	group.Post("/export/:session_id", h.HandleExport)
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *fiber.Ctx, l *zap.Logger, action string, err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStorageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error(action+" failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func sessionIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("session_id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid session id")
	}
	return uint(id), nil
}

// HandleAnalyse runs the set-based reconciliation for a session.
// @Summary Reconcile Session
// @Description Reconcile transaction identifiers between the two systems using set operations.
// @Tags reconciliation
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} AnalysisResult "Reconciliation result"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/reconciliation/analyse/{session_id} [get]
func (h *Handler) HandleAnalyse(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Analyse(c.Context(), id)
	if err != nil {
		return respondError(c, l, "Reconciliation", err)
	}
	return c.JSON(result)
}

// HandleDiscrepancies finds amount discrepancies for a session.
// @Summary Find Amount Discrepancies
// @Description Find matched transactions whose reported amounts differ between the systems.
// @Tags reconciliation
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} DiscrepancyResult "Amount discrepancy result"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/reconciliation/discrepancies/{session_id} [get]
func (h *Handler) HandleDiscrepancies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Discrepancies(c.Context(), id)
	if err != nil {
		return respondError(c, l, "Discrepancy analysis", err)
	}
	return c.JSON(result)
}

// HandleSummary returns aggregate statistics for a session.
// @Summary Reconciliation Summary
// @Description Get summary statistics (counts, match rate, amount totals) for a session.
// @Tags reconciliation
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} SummaryResult "Summary statistics"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/reconciliation/summary/{session_id} [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Summary(c.Context(), id)
	if err != nil {
		return respondError(c, l, "Summary", err)
	}
	return c.JSON(result)
}

// HandleExport archives all three reports in the object store.
// @Summary Export Reports
// @Description Run all analyses and archive them as a JSON object in the report bucket.
// @Tags reconciliation
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 201 {object} ExportResult "Archive location"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /api/v1/reconciliation/export/{session_id} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := sessionIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Export(c.Context(), id)
	if err != nil {
		return respondError(c, l, "Export", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
