package assistant

import (
	"errors"

	"recon-service/core/logger"
	"recon-service/feature/reconciliation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

// ChatRequest is the body for an assistant chat message.
type ChatRequest struct {
	Message  string         `json:"message" validate:"required,min=1,max=5000"`
	Metadata map[string]any `json:"metadata"`
}

// ExamplesResponse lists the prompts the assistant understands.
type ExamplesResponse struct {
	Examples []Example `json:"examples"`
}

// Handler handles HTTP requests for the assistant.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the assistant routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assistant")
	group.Post("/chat", h.HandleChat)
	group.Get("/examples", h.HandleExamples)
}

// HandleChat answers one chat message.
// @Summary Assistant Chat
// @Description Classify a chat message and run the matching reconciliation action.
// @Tags assistant
// @Accept json
// @Produce json
// @Param chat body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse "Assistant answer"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /api/v1/assistant/chat [post]
func (h *Handler) HandleChat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.service.Run(c.Context(), req.Message, req.Metadata)
	if err != nil {
		if errors.Is(err, reconciliation.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Assistant failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "assistant failed to process the request",
		})
	}

	return c.JSON(resp)
}

// HandleExamples lists supported prompts.
// @Summary Assistant Examples
// @Description List example prompts the assistant understands.
// @Tags assistant
// @Produce json
// @Success 200 {object} ExamplesResponse "Example prompts"
// @Router /api/v1/assistant/examples [get]
func (h *Handler) HandleExamples(c *fiber.Ctx) error {
	return c.JSON(ExamplesResponse{Examples: Examples()})
}
