package transaction

import (
	"strconv"

	"recon-service/core/logger"
	"recon-service/feature/session"
	"recon-service/feature/session/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// CreateTransactionRequest is the body for a single transaction.
type CreateTransactionRequest struct {
	TransactionID string        `json:"transaction_id" validate:"required,max=255"`
	System        models.System `json:"system" validate:"required,oneof=system_a system_b"`
	Amount        float64       `json:"amount"`
	Metadata      string        `json:"metadata"`
}

// BulkUploadRequest is the body for a bulk transaction upload.
type BulkUploadRequest struct {
	SessionID    uint                       `json:"session_id" validate:"required"`
	Transactions []CreateTransactionRequest `json:"transactions" validate:"required,max=10000,dive"`
}

// Handler handles HTTP requests for transactions.
type Handler struct {
	service  *Service
	sessions *session.Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sessions *session.Service) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// RegisterRoutes registers the transaction routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/transactions")
	group.Post("/", h.HandleCreateTransaction)
	group.Post("/bulk", h.HandleBulkUpload)
	group.Get("/session/:id", h.HandleListBySession)
	group.Get("/session/:id/system/:system", h.HandleListBySystem)
	group.Delete("/session/:id", h.HandleClearTransactions)
}

// requireSession resolves the session or writes the 404 response.
func (h *Handler) requireSession(c *fiber.Ctx, id uint) (bool, error) {
	found, err := h.sessions.GetByID(c.Context(), id)
	if err != nil {
		return false, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if found == nil {
		return false, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session with id " + strconv.FormatUint(uint64(id), 10) + " not found",
		})
	}
	return true, nil
}

// HandleCreateTransaction creates a single transaction for a session.
// @Summary Create Transaction
// @Description Create a single transaction for a reconciliation session.
// @Tags transactions
// @Accept json
// @Produce json
// @Param session_id query int true "Session ID"
// @Param transaction body CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} models.Transaction "Created Transaction"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/transactions [post]
func (h *Handler) HandleCreateTransaction(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sessionID, err := strconv.ParseUint(c.Query("session_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid or missing session_id"})
	}

	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if ok, resp := h.requireSession(c, uint(sessionID)); !ok {
		return resp
	}

	record, err := h.service.Create(c.Context(), uint(sessionID), req)
	if err != nil {
		l.Error("Transaction creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// HandleBulkUpload bulk creates transactions for a session.
// @Summary Bulk Upload Transactions
// @Description Bulk upload transactions (max 10000 per request).
// @Tags transactions
// @Accept json
// @Produce json
// @Param upload body BulkUploadRequest true "Transactions to upload"
// @Success 201 {object} session.MessageResponse "Upload confirmation"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/transactions/bulk [post]
func (h *Handler) HandleBulkUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req BulkUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if ok, resp := h.requireSession(c, req.SessionID); !ok {
		return resp
	}

	records, err := h.service.BulkCreate(c.Context(), req.SessionID, req.Transactions)
	if err != nil {
		l.Error("Bulk upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(session.MessageResponse{
		Message: "Successfully uploaded " + strconv.Itoa(len(records)) + " transactions",
		Details: map[string]any{"count": len(records), "session_id": req.SessionID},
	})
}

// HandleListBySession returns all transactions for a session.
// @Summary List Transactions
// @Description Get all transactions for a specific reconciliation session.
// @Tags transactions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} models.Transaction "Transactions"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/transactions/session/{id} [get]
func (h *Handler) HandleListBySession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	if ok, resp := h.requireSession(c, uint(id)); !ok {
		return resp
	}

	records, err := h.service.ListBySession(c.Context(), uint(id))
	if err != nil {
		l.Error("Transaction listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}

// HandleListBySystem returns transactions reported by one system.
// @Summary List Transactions By System
// @Description Get transactions by system (system_a or system_b) for a session.
// @Tags transactions
// @Produce json
// @Param id path int true "Session ID"
// @Param system path string true "System tag (system_a, system_b)"
// @Success 200 {array} models.Transaction "Transactions"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/transactions/session/{id}/system/{system} [get]
func (h *Handler) HandleListBySystem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	system := models.System(c.Params("system"))
	if !system.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "system must be one of: system_a, system_b",
		})
	}

	if ok, resp := h.requireSession(c, uint(id)); !ok {
		return resp
	}

	records, err := h.service.ListBySystem(c.Context(), uint(id), system)
	if err != nil {
		l.Error("Transaction listing by system failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}

// HandleClearTransactions deletes all transactions for a session.
// @Summary Clear Transactions
// @Description Delete all transactions for a session (useful for testing/reset).
// @Tags transactions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} session.MessageResponse "Deletion confirmation"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/transactions/session/{id} [delete]
func (h *Handler) HandleClearTransactions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	if ok, resp := h.requireSession(c, uint(id)); !ok {
		return resp
	}

	count, err := h.service.Clear(c.Context(), uint(id))
	if err != nil {
		l.Error("Transaction clearing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(session.MessageResponse{
		Message: "Successfully deleted all transactions for session " + c.Params("id"),
		Details: map[string]any{"deleted_count": count, "session_id": id},
	})
}
