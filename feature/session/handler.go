package session

import (
	"errors"
	"strconv"

	"recon-service/core/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// CreateSessionRequest is the body for creating a reconciliation session.
type CreateSessionRequest struct {
	SessionName string `json:"session_name" validate:"required,max=255"`
	SystemAName string `json:"system_a_name" validate:"required,max=255"`
	SystemBName string `json:"system_b_name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// MessageResponse is a simple message envelope for mutations.
type MessageResponse struct {
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Handler handles HTTP requests for sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/", h.HandleCreateSession)
	group.Get("/", h.HandleListSessions)
	group.Get("/:id", h.HandleGetSession)
	group.Delete("/:id", h.HandleDeleteSession)
}

// HandleCreateSession creates a new reconciliation session.
// @Summary Create Session
// @Description Create a new reconciliation session for comparing two systems.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body CreateSessionRequest true "Session to create"
// @Success 201 {object} models.Session "Created Session"
// @Failure 400 {object} map[string]string "Validation or duplicate name error"
// @Router /api/v1/sessions [post]
func (h *Handler) HandleCreateSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session, err := h.service.Create(c.Context(), req)
	if errors.Is(err, ErrDuplicateName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session with name '" + req.SessionName + "' already exists",
		})
	}
	if err != nil {
		l.Error("Session creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleListSessions returns all reconciliation sessions.
// @Summary List Sessions
// @Description Get all reconciliation sessions.
// @Tags sessions
// @Produce json
// @Success 200 {array} models.Session "Sessions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/v1/sessions [get]
func (h *Handler) HandleListSessions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	sessions, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Session listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(sessions)
}

// HandleGetSession returns a single session by id.
// @Summary Get Session
// @Description Get a specific reconciliation session by ID.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} models.Session "Session"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	session, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		l.Error("Session lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session with id " + c.Params("id") + " not found",
		})
	}

	return c.JSON(session)
}

// HandleDeleteSession deletes a session and all its transactions.
// @Summary Delete Session
// @Description Delete a reconciliation session and all its transactions.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} MessageResponse "Deletion confirmation"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func (h *Handler) HandleDeleteSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session id"})
	}

	deleted, err := h.service.Delete(c.Context(), id)
	if err != nil {
		l.Error("Session deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "session with id " + c.Params("id") + " not found",
		})
	}

	return c.JSON(MessageResponse{
		Message: "Successfully deleted session " + c.Params("id"),
		Details: map[string]any{"session_id": id},
	})
}

// parseID parses a positive numeric route parameter.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
